package systems

import (
	"os"
	"testing"

	"overworld/pkg/logger"
)

func TestMain(m *testing.M) {
	// Глобальный логгер нужен до первого отказа в Start.
	logger.Init()
	os.Exit(m.Run())
}
