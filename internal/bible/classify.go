// internal/bible/classify.go
package bible

import (
	"fmt"
	"math"
	"strings"
)

const (
	// 분류할 수 없을 때의 표기
	NoCategory = "분류 정보 없음"
	// 키워드를 하나도 찾지 못했을 때의 기본 해시태그
	DefaultSummary = "#말씀 #묵상"
	// 장당 기준 읽기 시간 (분)
	minutesPerChapter = 3.2
	// 요약 해시태그 최대 개수
	maxSummaryKeywords = 6
)

// Category 는 구절 목록에서 공식 분류를 추출합니다.
// 등장 순서를 유지한 소분류 집합을 " / " 로 이어 붙입니다.
// 모르는 책은 조용히 건너뛰고, 하나도 해석되지 않으면 NoCategory 를 반환합니다.
func Category(verses []string) string {
	seen := make(map[string]bool)
	var ordered []string

	for _, v := range verses {
		ref, ok := ParseReference(v)
		if !ok {
			continue
		}
		book, ok := LookupBook(ref.Book)
		if !ok {
			continue
		}
		if !seen[book.SubCategory] {
			seen[book.SubCategory] = true
			ordered = append(ordered, book.SubCategory)
		}
	}

	if len(ordered) == 0 {
		return NoCategory
	}
	return strings.Join(ordered, " / ")
}

// Keywords 는 구절 목록에서 요약 해시태그를 생성합니다.
// 장 단위 정밀 키워드를 우선 사용하고(범위면 시작 장 기준),
// 없으면 책 단위 키워드로 폴백합니다. 순서 유지 중복 제거 후 최대 6개.
func Keywords(verses []string) string {
	seen := make(map[string]bool)
	var ordered []string

	add := func(kws []string) {
		for _, k := range kws {
			if !seen[k] {
				seen[k] = true
				ordered = append(ordered, k)
			}
		}
	}

	for _, v := range verses {
		ref, ok := ParseReference(v)
		if !ok {
			continue
		}
		if kws, ok := lookupChapterKeywords(ref.Book, ref.ChapterStart); ok {
			add(kws)
			continue
		}
		if book, ok := LookupBook(ref.Book); ok {
			add(book.Keywords)
		}
	}

	if len(ordered) == 0 {
		return DefaultSummary
	}
	if len(ordered) > maxSummaryKeywords {
		ordered = ordered[:maxSummaryKeywords]
	}

	tags := make([]string, len(ordered))
	for i, k := range ordered {
		tags[i] = "#" + k
	}
	return strings.Join(tags, " ")
}

// ReadingTime 은 구절 분량으로 예상 읽기 시간을 계산합니다.
// 장당 기준 시간(3.2분) × 권별 가중치 × 장 수를 합산하고,
// 분 단위 반올림(최소 1분) 후 문장으로 렌더링합니다.
func ReadingTime(verses []string) string {
	var total float64

	for _, v := range verses {
		ref, ok := ParseReference(v)
		if !ok {
			continue
		}
		weight := 1.0
		if book, ok := LookupBook(ref.Book); ok {
			weight = book.Weight
		}
		count := ref.ChapterEnd - ref.ChapterStart + 1
		if count < 1 {
			count = 1
		}
		total += minutesPerChapter * weight * float64(count)
	}

	minutes := int(math.Round(total))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("오늘의 읽기, 약 %d분 소요", minutes)
}
