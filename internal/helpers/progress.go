package helpers

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

type ProgressBar struct {
	Set   func(int)
	Add   func(int)
	Close func()
}

// CreateProgressBar draws on stderr, or returns SilentProgressBar when stderr is not a
// terminal (pipes, CI logs).
func CreateProgressBar(total int, label string) ProgressBar {
	return createProgressBar(total, label, term.IsTerminal(int(os.Stderr.Fd())))
}

func createProgressBar(total int, label string, interactive bool) ProgressBar {
	if !interactive {
		return SilentProgressBar
	}
	p := progressbar.Default(int64(total), label)
	return ProgressBar{
		func(i int) {
			_ = p.Set(i)
		}, func(i int) {
			_ = p.Add(i)
		}, func() {
			_ = p.Finish()
		},
	}
}

// SilentProgressBar discards all updates.
var SilentProgressBar = ProgressBar{
	func(int) {}, func(int) {}, func() {},
}
