// internal/config/constants.go
package config

// 애플리케이션 정보
const (
	AppName    = "BibleReadKeep"
	AppVersion = "1.0.0"
)

// 기본 설정값
const (
	DefaultServerPort            = ":8080"
	DefaultLogLevel              = "info"
	DefaultJWTExpiresHours       = 72
	DefaultPlaylistCacheTTLHours = 7 * 24 // 재생목록 캐시 유지 기간
	// 본교회 성경 통독 유튜브 재생목록
	DefaultPlaylistID = "PLVcVykBcFZTR4Q6cvmybjPgCklZlv-Ghj"
)
