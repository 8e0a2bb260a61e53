package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// ConsoleHook mirrors formatted entries to a console stream while the main output goes to a file.
type ConsoleHook struct {
	out    io.Writer
	levels []logrus.Level
}

func NewConsoleHook() *ConsoleHook {
	return &ConsoleHook{out: os.Stdout, levels: logrus.AllLevels}
}

func (h *ConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(h.out, string(line))
	return err
}

func (h *ConsoleHook) Levels() []logrus.Level {
	return h.levels
}
