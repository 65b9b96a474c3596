package batch

import (
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// progress wraps an optional terminal progress bar. It is a no-op when
// stderr is not a TTY or progress was disabled, so slog output stays clean
// in pipes and tests.
type progress struct {
	container *mpb.Progress
	bar       *mpb.Bar
}

func newProgress(total int, enabled bool) *progress {
	if !enabled || !isTTY(os.Stderr) {
		return &progress{}
	}

	container := mpb.New(
		mpb.WithOutput(os.Stderr),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	bar := container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("transcribing "),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncSpace),
		),
	)

	return &progress{container: container, bar: bar}
}

func (p *progress) increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *progress) wait() {
	if p.container == nil {
		return
	}
	// A cancelled run leaves the bar incomplete; abort it so Wait returns.
	if !p.bar.Completed() {
		p.bar.Abort(true)
	}
	p.container.Wait()
}

func isTTY(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
