// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"net/http"

	"bible_read_keep/internal/model"
)

// DecodeJSONBody 는 요청 바디를 디코딩합니다
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}
