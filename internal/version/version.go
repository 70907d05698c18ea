package version

import (
	"fmt"
	"time"
)

// Заполняются линкером через -ldflags "-X overworld/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// Номер сборки считается в днях от первой выкладки проекта.
var buildEpoch = time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)

// Info содержит метаданные сборки в структурированном виде.
type Info struct {
	BuildID   int
	BuildDate string
	Commit    string
}

// Get возвращает метаданные сборки. Безопасно вызывать в любой момент.
func Get() Info {
	info := Info{BuildDate: BuildDate, Commit: BuildCommit}

	if BuildDate == "" {
		return info
	}
	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil || t.Before(buildEpoch) {
		return info
	}
	// Часы вместо суток напрямую - чтобы не зависеть от DST.
	info.BuildID = int(t.Sub(buildEpoch).Hours() / 24)
	return info
}

// String возвращает человекочитаемую строку сборки для лога старта.
func String() string {
	info := Get()
	if info.BuildDate == "" {
		return "dev build"
	}
	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("build %d (%s) commit[%s]", info.BuildID, info.BuildDate, commit)
}
