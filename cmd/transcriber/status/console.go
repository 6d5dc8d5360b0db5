package status

import (
	"fmt"
	"log/slog"
	"os"
)

// Console renders status events for terminal use: log lines go to stdout,
// everything else through slog. It keeps no synchronization of its own and
// is meant to be driven from a single goroutine, typically behind an Async.
type Console struct {
	total int
}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) SetStatus(text string) {
	slog.Info(text)
}

func (c *Console) Log(line string) {
	fmt.Fprintln(os.Stdout, line)
}

func (c *Console) SetProgressBounds(maxValue int) {
	c.total = max(1, maxValue)
}

func (c *Console) SetProgressValue(value int) {
	slog.Info("progress", slog.Int("done", value), slog.Int("total", c.total))
}

func (c *Console) SwitchToDeterminate() {}

func (c *Console) ReportError(title, message string) {
	slog.Error(title, slog.String("err", message))
}

func (c *Console) ReportInfo(title, message string) {
	slog.Info(title, slog.String("msg", message))
}

func (c *Console) SetBusy(busy bool) {
	slog.Debug("busy state changed", slog.Bool("busy", busy))
}
