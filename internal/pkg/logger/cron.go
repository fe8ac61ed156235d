package logger

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CronLogger routes cron's own messages to zap. Cron logs every schedule
// tick at info, so those go to debug.
type CronLogger struct {
	log *zap.SugaredLogger
}

var _ cron.Logger = CronLogger{}

func NewCronLogger(log *zap.Logger) CronLogger {
	return CronLogger{log: log.Sugar()}
}

func (l CronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l CronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
