package logx

import (
	"fmt"
	"log"

	"GaltonBoardController/internal/simclock"
)

type Logger struct {
	id    string
	clock *simclock.Clock
}

func New(id string, clock *simclock.Clock) *Logger {
	return &Logger{id: id, clock: clock}
}

func (l *Logger) with(level string, msg string) string {
	ts := l.clock.Stamp()
	return fmt.Sprintf("[%s] [%s] [%s] %s", ts, l.id, level, msg)
}

func (l *Logger) Infof(f string, a ...any)  { log.Println(l.with("INFO", fmt.Sprintf(f, a...))) }
func (l *Logger) Warnf(f string, a ...any)  { log.Println(l.with("WARN", fmt.Sprintf(f, a...))) }
func (l *Logger) Errorf(f string, a ...any) { log.Println(l.with("ERROR", fmt.Sprintf(f, a...))) }
