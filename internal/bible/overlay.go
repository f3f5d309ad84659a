// internal/bible/overlay.go
package bible

import "strings"

// 시편 119편 분할 읽기 보정 테이블.
// 시드 데이터에 시편 119편의 6일 분할이 누락된 일차들을 강제로 보정합니다.
// 원천 데이터가 수정되면 이 테이블만 비우면 되는 임시 데이터 패치입니다.
var psalm119Overlay = map[int]string{
	119: "시편 119편 1~32절", 274: "시편 119편 1~32절",
	120: "시편 119편 33-64절", 275: "시편 119편 33-64절",
	121: "시편 119편 65-96절", 276: "시편 119편 65-96절",
	122: "시편 119편 97-128절", 277: "시편 119편 97-128절",
	123: "시편 119편 129-152절", 278: "시편 119편 129-152절",
	124: "시편 119편 153-176절", 279: "시편 119편 153-176절",
}

const overlayMarker = "시편 119편"

// ApplyOverlay 는 해당 일차가 보정 대상이면 제목과 구절 목록에
// 분할 읽기 항목을 덧붙입니다. 제목에 이미 시편 119편이 들어 있으면
// 원천 데이터가 반영된 것으로 보고 제목과 구절 모두 손대지 않습니다.
// 따라서 여러 번 호출해도 결과가 변하지 않습니다.
// 분류/요약 계산 전에 호출해야 합니다.
func ApplyOverlay(dayOfYear int, title string, verses []string) (string, []string) {
	text, ok := psalm119Overlay[dayOfYear]
	if !ok {
		return title, verses
	}

	if strings.Contains(title, overlayMarker) {
		return title, verses
	}

	patched := make([]string, 0, len(verses)+1)
	patched = append(patched, verses...)
	patched = append(patched, text)
	return title + ", " + text, patched
}
