// internal/bible/books.go
package bible

// Testament 는 구약/신약 구분입니다
type Testament string

const (
	OldTestament Testament = "구약"
	NewTestament Testament = "신약"
)

// BookMeta 는 성경 각 권의 정적 메타데이터입니다.
// 프로세스 시작 시 한 번 인덱스를 구성하고 이후에는 변경하지 않습니다.
type BookMeta struct {
	Name        string
	Category    Testament
	SubCategory string
	Chapters    int
	Weight      float64 // 장당 분량 가중치 (기준 1.0)
	Keywords    []string
}

var books = []BookMeta{
	// 모세오경
	{Name: "창세기", Category: OldTestament, SubCategory: "모세오경", Chapters: 50, Weight: 1.0, Keywords: []string{"창조", "언약", "족장"}},
	{Name: "출애굽기", Category: OldTestament, SubCategory: "모세오경", Chapters: 40, Weight: 1.0, Keywords: []string{"출애굽", "십계명", "성막"}},
	{Name: "레위기", Category: OldTestament, SubCategory: "모세오경", Chapters: 27, Weight: 0.9, Keywords: []string{"제사", "거룩", "규례"}},
	{Name: "민수기", Category: OldTestament, SubCategory: "모세오경", Chapters: 36, Weight: 1.1, Keywords: []string{"광야", "인구조사", "불순종"}},
	{Name: "신명기", Category: OldTestament, SubCategory: "모세오경", Chapters: 34, Weight: 1.0, Keywords: []string{"율법", "순종", "모세의유언"}},
	// 역사서
	{Name: "여호수아", Category: OldTestament, SubCategory: "역사서", Chapters: 24, Weight: 0.9, Keywords: []string{"가나안정복", "믿음", "땅분배"}},
	{Name: "사사기", Category: OldTestament, SubCategory: "역사서", Chapters: 21, Weight: 1.0, Keywords: []string{"사사", "타락", "구원의반복"}},
	{Name: "룻기", Category: OldTestament, SubCategory: "역사서", Chapters: 4, Weight: 0.8, Keywords: []string{"룻", "기업무를자", "헌신"}},
	{Name: "사무엘상", Category: OldTestament, SubCategory: "역사서", Chapters: 31, Weight: 1.0, Keywords: []string{"사무엘", "사울", "다윗"}},
	{Name: "사무엘하", Category: OldTestament, SubCategory: "역사서", Chapters: 24, Weight: 0.9, Keywords: []string{"다윗왕국", "다윗의범죄", "회복"}},
	{Name: "열왕기상", Category: OldTestament, SubCategory: "역사서", Chapters: 22, Weight: 1.1, Keywords: []string{"솔로몬", "성전건축", "왕국분열"}},
	{Name: "열왕기하", Category: OldTestament, SubCategory: "역사서", Chapters: 25, Weight: 1.0, Keywords: []string{"엘리사", "멸망", "포로"}},
	{Name: "역대상", Category: OldTestament, SubCategory: "역사서", Chapters: 29, Weight: 1.0, Keywords: []string{"족보", "다윗", "성전준비"}},
	{Name: "역대하", Category: OldTestament, SubCategory: "역사서", Chapters: 36, Weight: 1.0, Keywords: []string{"성전", "부흥", "유다왕들"}},
	{Name: "에스라", Category: OldTestament, SubCategory: "역사서", Chapters: 10, Weight: 0.9, Keywords: []string{"귀환", "성전재건", "개혁"}},
	{Name: "느헤미야", Category: OldTestament, SubCategory: "역사서", Chapters: 13, Weight: 1.0, Keywords: []string{"성벽재건", "기도", "말씀회복"}},
	{Name: "에스더", Category: OldTestament, SubCategory: "역사서", Chapters: 10, Weight: 0.8, Keywords: []string{"에스더", "부림절", "섭리"}},
	// 시가서
	{Name: "욥기", Category: OldTestament, SubCategory: "시가서", Chapters: 42, Weight: 0.8, Keywords: []string{"고난", "욥", "하나님의주권"}},
	{Name: "시편", Category: OldTestament, SubCategory: "시가서", Chapters: 150, Weight: 0.6, Keywords: []string{"찬양", "기도", "묵상"}},
	{Name: "잠언", Category: OldTestament, SubCategory: "시가서", Chapters: 31, Weight: 0.9, Keywords: []string{"지혜", "훈계", "경외"}},
	{Name: "전도서", Category: OldTestament, SubCategory: "시가서", Chapters: 12, Weight: 0.8, Keywords: []string{"헛됨", "인생", "하나님경외"}},
	{Name: "아가", Category: OldTestament, SubCategory: "시가서", Chapters: 8, Weight: 0.6, Keywords: []string{"사랑", "신부", "연합"}},
	// 대선지서
	{Name: "이사야", Category: OldTestament, SubCategory: "대선지서", Chapters: 66, Weight: 0.9, Keywords: []string{"메시아예언", "심판", "위로"}},
	{Name: "예레미야", Category: OldTestament, SubCategory: "대선지서", Chapters: 52, Weight: 1.1, Keywords: []string{"눈물의선지자", "새언약", "경고"}},
	{Name: "예레미야애가", Category: OldTestament, SubCategory: "대선지서", Chapters: 5, Weight: 0.8, Keywords: []string{"애가", "탄식", "긍휼"}},
	{Name: "에스겔", Category: OldTestament, SubCategory: "대선지서", Chapters: 48, Weight: 1.1, Keywords: []string{"환상", "마른뼈", "새성전"}},
	{Name: "다니엘", Category: OldTestament, SubCategory: "대선지서", Chapters: 12, Weight: 1.0, Keywords: []string{"다니엘", "신앙의절개", "종말"}},
	// 소선지서
	{Name: "호세아", Category: OldTestament, SubCategory: "소선지서", Chapters: 14, Weight: 0.7, Keywords: []string{"고멜", "변함없는사랑", "회개"}},
	{Name: "요엘", Category: OldTestament, SubCategory: "소선지서", Chapters: 3, Weight: 0.7, Keywords: []string{"여호와의날", "성령", "회복"}},
	{Name: "아모스", Category: OldTestament, SubCategory: "소선지서", Chapters: 9, Weight: 0.8, Keywords: []string{"공의", "심판", "회복의약속"}},
	{Name: "오바댜", Category: OldTestament, SubCategory: "소선지서", Chapters: 1, Weight: 0.6, Keywords: []string{"에돔심판", "교만"}},
	{Name: "요나", Category: OldTestament, SubCategory: "소선지서", Chapters: 4, Weight: 0.6, Keywords: []string{"니느웨", "물고기", "긍휼"}},
	{Name: "미가", Category: OldTestament, SubCategory: "소선지서", Chapters: 7, Weight: 0.7, Keywords: []string{"베들레헴예언", "공의", "겸손"}},
	{Name: "나훔", Category: OldTestament, SubCategory: "소선지서", Chapters: 3, Weight: 0.6, Keywords: []string{"니느웨심판", "하나님의진노"}},
	{Name: "하박국", Category: OldTestament, SubCategory: "소선지서", Chapters: 3, Weight: 0.6, Keywords: []string{"믿음으로살리라", "질문", "찬양"}},
	{Name: "스바냐", Category: OldTestament, SubCategory: "소선지서", Chapters: 3, Weight: 0.6, Keywords: []string{"여호와의날", "남은자"}},
	{Name: "학개", Category: OldTestament, SubCategory: "소선지서", Chapters: 2, Weight: 0.6, Keywords: []string{"성전재건", "우선순위"}},
	{Name: "스가랴", Category: OldTestament, SubCategory: "소선지서", Chapters: 14, Weight: 0.8, Keywords: []string{"환상", "메시아예언", "회복"}},
	{Name: "말라기", Category: OldTestament, SubCategory: "소선지서", Chapters: 4, Weight: 0.7, Keywords: []string{"십일조", "엘리야약속", "돌이킴"}},
	// 복음서
	{Name: "마태복음", Category: NewTestament, SubCategory: "복음서", Chapters: 28, Weight: 1.2, Keywords: []string{"예수님", "천국복음", "왕"}},
	{Name: "마가복음", Category: NewTestament, SubCategory: "복음서", Chapters: 16, Weight: 1.1, Keywords: []string{"종", "섬김", "십자가"}},
	{Name: "누가복음", Category: NewTestament, SubCategory: "복음서", Chapters: 24, Weight: 1.3, Keywords: []string{"인자", "잃은자", "긍휼"}},
	{Name: "요한복음", Category: NewTestament, SubCategory: "복음서", Chapters: 21, Weight: 1.2, Keywords: []string{"말씀", "영생", "믿음"}},
	// 역사서 (신약)
	{Name: "사도행전", Category: NewTestament, SubCategory: "역사서", Chapters: 28, Weight: 1.2, Keywords: []string{"성령", "교회", "선교"}},
	// 바울서신
	{Name: "로마서", Category: NewTestament, SubCategory: "바울서신", Chapters: 16, Weight: 1.1, Keywords: []string{"이신칭의", "복음", "은혜"}},
	{Name: "고린도전서", Category: NewTestament, SubCategory: "바울서신", Chapters: 16, Weight: 1.0, Keywords: []string{"교회문제", "사랑", "부활"}},
	{Name: "고린도후서", Category: NewTestament, SubCategory: "바울서신", Chapters: 13, Weight: 0.9, Keywords: []string{"위로", "사도직", "연보"}},
	{Name: "갈라디아서", Category: NewTestament, SubCategory: "바울서신", Chapters: 6, Weight: 0.9, Keywords: []string{"자유", "율법과은혜", "성령의열매"}},
	{Name: "에베소서", Category: NewTestament, SubCategory: "바울서신", Chapters: 6, Weight: 0.9, Keywords: []string{"교회", "하나됨", "전신갑주"}},
	{Name: "빌립보서", Category: NewTestament, SubCategory: "바울서신", Chapters: 4, Weight: 0.8, Keywords: []string{"기쁨", "겸손", "자족"}},
	{Name: "골로새서", Category: NewTestament, SubCategory: "바울서신", Chapters: 4, Weight: 0.8, Keywords: []string{"그리스도의충만", "새사람"}},
	{Name: "데살로니가전서", Category: NewTestament, SubCategory: "바울서신", Chapters: 5, Weight: 0.8, Keywords: []string{"재림", "소망", "거룩한삶"}},
	{Name: "데살로니가후서", Category: NewTestament, SubCategory: "바울서신", Chapters: 3, Weight: 0.7, Keywords: []string{"재림", "인내", "근면"}},
	{Name: "디모데전서", Category: NewTestament, SubCategory: "바울서신", Chapters: 6, Weight: 0.8, Keywords: []string{"목회", "경건", "교회질서"}},
	{Name: "디모데후서", Category: NewTestament, SubCategory: "바울서신", Chapters: 4, Weight: 0.7, Keywords: []string{"선한싸움", "말씀", "유언"}},
	{Name: "디도서", Category: NewTestament, SubCategory: "바울서신", Chapters: 3, Weight: 0.7, Keywords: []string{"선한일", "건전한교훈"}},
	{Name: "빌레몬서", Category: NewTestament, SubCategory: "바울서신", Chapters: 1, Weight: 0.5, Keywords: []string{"용서", "형제사랑"}},
	// 일반서신
	{Name: "히브리서", Category: NewTestament, SubCategory: "일반서신", Chapters: 13, Weight: 1.0, Keywords: []string{"대제사장", "믿음", "더좋은언약"}},
	{Name: "야고보서", Category: NewTestament, SubCategory: "일반서신", Chapters: 5, Weight: 0.8, Keywords: []string{"행함", "시험", "혀"}},
	{Name: "베드로전서", Category: NewTestament, SubCategory: "일반서신", Chapters: 5, Weight: 0.8, Keywords: []string{"고난", "소망", "나그네"}},
	{Name: "베드로후서", Category: NewTestament, SubCategory: "일반서신", Chapters: 3, Weight: 0.7, Keywords: []string{"거짓교사경계", "주의날"}},
	{Name: "요한일서", Category: NewTestament, SubCategory: "일반서신", Chapters: 5, Weight: 0.8, Keywords: []string{"사랑", "빛", "영생의확신"}},
	{Name: "요한이서", Category: NewTestament, SubCategory: "일반서신", Chapters: 1, Weight: 0.4, Keywords: []string{"진리", "사랑안의행함"}},
	{Name: "요한삼서", Category: NewTestament, SubCategory: "일반서신", Chapters: 1, Weight: 0.4, Keywords: []string{"영혼의형통", "선대"}},
	{Name: "유다서", Category: NewTestament, SubCategory: "일반서신", Chapters: 1, Weight: 0.6, Keywords: []string{"믿음의도", "경건"}},
	// 예언서
	{Name: "요한계시록", Category: NewTestament, SubCategory: "예언서", Chapters: 22, Weight: 1.0, Keywords: []string{"재림", "새하늘과새땅", "어린양"}},
}

// 책 이름 → 메타데이터 인덱스. init 에서 한 번만 구성합니다.
var bookIndex map[string]*BookMeta

func init() {
	bookIndex = make(map[string]*BookMeta, len(books))
	for i := range books {
		bookIndex[books[i].Name] = &books[i]
	}
}

// LookupBook 은 책 이름으로 메타데이터를 찾습니다. 모르는 이름이면 ok=false.
func LookupBook(name string) (*BookMeta, bool) {
	b, ok := bookIndex[name]
	return b, ok
}

// chapterKeywords 는 장 단위 정밀 키워드 테이블입니다.
// 등록되지 않은 장은 책 단위 키워드로 폴백합니다.
var chapterKeywords = map[string]map[int][]string{
	"창세기": {
		1:  {"천지창조"},
		2:  {"에덴동산"},
		3:  {"아담과하와", "타락"},
		4:  {"가인과아벨"},
		5:  {"족보"},
		6:  {"노아의방주"},
		7:  {"대홍수"},
		8:  {"하나님의기억"},
		9:  {"무지개언약", "노아의실수"},
		10: {"열방의족보"},
		11: {"바벨탑"},
		12: {"아브람의부르심"},
		15: {"횃불언약"},
		22: {"모리아산", "여호와이레"},
		28: {"벧엘", "야곱의사다리"},
		37: {"요셉의꿈"},
		41: {"애굽의총리"},
		50: {"하나님의선하심"},
	},
	"출애굽기": {
		3:  {"불타는떨기나무"},
		12: {"유월절"},
		14: {"홍해"},
		16: {"만나"},
		20: {"십계명"},
		32: {"금송아지"},
		40: {"성막완성"},
	},
	"시편": {
		1:   {"복있는사람"},
		23:  {"여호와는나의목자"},
		51:  {"참회의기도"},
		90:  {"인생의날수"},
		103: {"송축"},
		119: {"말씀사랑", "율법묵상"},
		150: {"할렐루야"},
	},
	"이사야": {
		6:  {"거룩하다", "소명"},
		53: {"고난받는종"},
	},
	"마태복음": {
		1:  {"예수님의계보", "임마누엘"},
		2:  {"동방박사", "애굽피신"},
		3:  {"세례요한", "회개"},
		4:  {"광야시험"},
		5:  {"팔복", "산상수훈"},
		6:  {"주기도문"},
		7:  {"좁은문"},
		28: {"부활", "지상명령"},
	},
	"요한복음": {
		1:  {"말씀이육신이되어"},
		3:  {"거듭남", "하나님의사랑"},
		15: {"포도나무"},
	},
	"사도행전": {
		1: {"승천", "증인"},
		2: {"오순절", "성령강림"},
	},
	"요한계시록": {
		1:  {"알파와오메가"},
		21: {"새하늘과새땅"},
		22: {"주예수여오시옵소서"},
	},
}

func lookupChapterKeywords(book string, chapter int) ([]string, bool) {
	chapters, ok := chapterKeywords[book]
	if !ok {
		return nil, false
	}
	kws, ok := chapters[chapter]
	return kws, ok
}
