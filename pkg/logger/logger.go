package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - глобальный логгер приложения. Инициализируется один раз в main.
var Log *logrus.Logger

// Init настраивает глобальный логгер из переменных окружения.
//
// LOG_LEVEL: trace/debug/info/warn/error (по умолчанию info).
// LOG_FORMAT: "json" для прода и сбора логов, всё остальное - цветной текст.
func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}
}

// WithComponent возвращает entry с полем component,
// чтобы логи подсистем (session, autotile, client) можно было фильтровать.
func WithComponent(name string) *logrus.Entry {
	return Log.WithField("component", name)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
