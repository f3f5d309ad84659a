// internal/bible/reference_test.go
package bible

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Reference
		wantOK bool
	}{
		{
			name:   "정상계: 단일 장",
			input:  "창세기 1장",
			want:   Reference{Book: "창세기", ChapterStart: 1, ChapterEnd: 1},
			wantOK: true,
		},
		{
			name:   "정상계: 하이픈 범위",
			input:  "창세기 1-3장",
			want:   Reference{Book: "창세기", ChapterStart: 1, ChapterEnd: 3},
			wantOK: true,
		},
		{
			name:   "정상계: 물결 범위",
			input:  "열왕기상 8~10장",
			want:   Reference{Book: "열왕기상", ChapterStart: 8, ChapterEnd: 10},
			wantOK: true,
		},
		{
			name:   "정상계: 편 단위 표기",
			input:  "시편 119편",
			want:   Reference{Book: "시편", ChapterStart: 119, ChapterEnd: 119},
			wantOK: true,
		},
		{
			name:   "정상계: 절 범위가 붙은 분할 읽기는 시작 장만 사용",
			input:  "시편 119편 1~32절",
			want:   Reference{Book: "시편", ChapterStart: 119, ChapterEnd: 119},
			wantOK: true,
		},
		{
			name:   "이상계: 토큰이 하나뿐",
			input:  "창세기",
			wantOK: false,
		},
		{
			name:   "이상계: 장 표기가 숫자가 아님",
			input:  "창세기 삼장",
			wantOK: false,
		},
		{
			name:   "이상계: 빈 문자열",
			input:  "",
			wantOK: false,
		},
		{
			name:   "경계: 범위 끝이 시작보다 작으면 단일 장으로 취급",
			input:  "이사야 5-3장",
			want:   Reference{Book: "이사야", ChapterStart: 5, ChapterEnd: 5},
			wantOK: true,
		},
		{
			name:   "경계: 범위 끝이 숫자가 아니면 단일 장으로 취급",
			input:  "창세기 1-끝장",
			want:   Reference{Book: "창세기", ChapterStart: 1, ChapterEnd: 1},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseReference(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
