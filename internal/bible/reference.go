// internal/bible/reference.go
package bible

import (
	"strconv"
	"strings"
)

// Reference 는 "창세기 1장", "시편 119편 1~32절" 같은 구절 문자열을
// 파싱한 결과입니다. 단일 장이면 ChapterStart == ChapterEnd 입니다.
type Reference struct {
	Book         string
	ChapterStart int
	ChapterEnd   int
}

// ParseReference 는 구절 문자열에서 책 이름과 장(또는 장 범위)을 추출합니다.
// 형식이 맞지 않으면 ok=false 를 반환하고, 호출자는 해당 항목을 건너뜁니다.
func ParseReference(s string) (Reference, bool) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return Reference{}, false
	}

	book := parts[0]
	spec := parts[1]

	// "1장", "119편" 등 단위 표기 제거
	spec = strings.TrimSuffix(spec, "장")
	spec = strings.TrimSuffix(spec, "편")

	var startStr, endStr string
	switch {
	case strings.Contains(spec, "-"):
		seg := strings.SplitN(spec, "-", 2)
		startStr, endStr = seg[0], seg[1]
	case strings.Contains(spec, "~"):
		seg := strings.SplitN(spec, "~", 2)
		startStr, endStr = seg[0], seg[1]
	default:
		startStr, endStr = spec, spec
	}

	start, err := strconv.Atoi(leadingDigits(startStr))
	if err != nil {
		return Reference{}, false
	}
	end, err := strconv.Atoi(leadingDigits(endStr))
	if err != nil {
		// 범위 끝이 숫자가 아니면 단일 장으로 취급
		end = start
	}
	if end < start {
		end = start
	}

	return Reference{Book: book, ChapterStart: start, ChapterEnd: end}, true
}

// leadingDigits 는 문자열 앞부분의 연속된 숫자만 돌려줍니다.
func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}
