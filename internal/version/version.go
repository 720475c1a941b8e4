package version

import "fmt"

// Заполняются линкером при сборке:
//
//	go build -ldflags "-X tabletop-server/internal/version.Version=... \
//	  -X tabletop-server/internal/version.Commit=... \
//	  -X tabletop-server/internal/version.BuildDate=..."
var (
	Version   string
	Commit    string
	BuildDate string // YYYY-MM-DD (UTC)
)

// VersionInfo описывает метаданные сборки в структурированном виде.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
}

// Info возвращает метаданные сборки. Безопасна в любой момент.
func Info() VersionInfo {
	return VersionInfo{
		Version:   coalesce(Version, "dev"),
		Commit:    coalesce(Commit, "unknown"),
		BuildDate: coalesce(BuildDate, "unknown"),
	}
}

// String возвращает человекочитаемую строку сборки.
func String() string {
	info := Info()
	return fmt.Sprintf("tabletop-server %s commit[%s] built[%s]",
		info.Version, info.Commit, info.BuildDate)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
