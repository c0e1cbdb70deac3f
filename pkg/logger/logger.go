package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const appName = "hospital_surge_system"

// appHook добавляет имя приложения в каждую запись
type appHook struct{}

func (appHook) Levels() []logrus.Level { return logrus.AllLevels }

func (appHook) Fire(entry *logrus.Entry) error {
	entry.Data["app"] = appName
	return nil
}

func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})
	log.AddHook(appHook{})

	log.SetOutput(os.Stdout)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
