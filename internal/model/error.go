// internal/model/error.go
package model

import "errors"

// 애플리케이션 공통 에러
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrUserNotFound   = errors.New("user not found or invalid")
	ErrConflict       = errors.New("resource conflict") // 중복 에러용
)

// ErrorDetail 은 클라이언트에 반환하는 에러 상세 정보입니다
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse 는 에러 응답의 최상위 구조체입니다
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError 는 에러 코드와 사용자용 메시지를 함께 담는 커스텀 에러입니다.
// 내부 원인 에러(Err)를 감싸서 webutil.MapErrorToStatusCode 가 상태 코드를 판정합니다.
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Message + ": " + e.Err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
