// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"bible_read_keep/internal/model"

	"github.com/go-playground/locales/ko" // 한국어 로케일
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// Validator 는 애플리케이션 전체가 공유하는 밸리데이터 인스턴스입니다.
var Validator *validator.Validate

// Trans 는 에러 메시지를 한국어로 렌더링하는 트랜슬레이터입니다.
var Trans ut.Translator

// json 태그 이름 → 한국어 필드명
var fieldNameTranslations = map[string]string{
	"name":      "이름",
	"email":     "이메일",
	"password":  "비밀번호",
	"completed": "완료 여부",
	"date":      "날짜",
	"year":      "연도",
}

func init() {
	Validator = validator.New()

	// 에러 메시지의 필드명은 json 태그를 사용
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	korean := ko.New()
	uni := ut.New(korean, korean)
	var found bool
	Trans, found = uni.GetTranslator("ko")
	if !found {
		log.Fatal("translator not found")
	}

	// 사용하는 태그에 대한 한국어 메시지 등록.
	// validator 의 기본 번역 패키지에 ko 가 없어서 직접 등록합니다.
	registerTranslation := func(tag, msg string, withParam bool) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			if translated, ok := fieldNameTranslations[fieldName]; ok {
				fieldName = translated
			}
			var t string
			if withParam {
				t, _ = ut.T(tag, fieldName, fe.Param())
			} else {
				t, _ = ut.T(tag, fieldName)
			}
			return t
		})
	}

	registerTranslation("required", "{0}은(는) 필수 항목입니다.", false)
	registerTranslation("email", "{0}이(가) 올바른 이메일 형식이 아닙니다.", false)
	registerTranslation("min", "{0}은(는) {1}자 이상이어야 합니다.", true)
	registerTranslation("max", "{0}은(는) {1}자 이하여야 합니다.", true)
}

// NewValidationErrorResponse 는 밸리데이션 에러 목록을 AppError 로 변환합니다
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	var fields []string
	var messages []string

	for _, err := range errs {
		fields = append(fields, err.Field())
		messages = append(messages, err.Translate(Trans))
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, " "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
