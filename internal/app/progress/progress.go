package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type Config struct {
	Enabled bool
	Writer  io.Writer
}

// Steps shows a single bar that advances once per named step. A disabled
// Steps is a no-op so callers never branch on TTY detection.
type Steps struct {
	container *mpb.Progress
	bar       *mpb.Bar
	mu        sync.Mutex
	current   string
}

func NewSteps(config Config, total int, description string) *Steps {
	if !config.Enabled {
		return &Steps{}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	s := &Steps{}
	s.container = mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	s.bar = s.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.Any(func(decor.Statistics) string {
				s.mu.Lock()
				defer s.mu.Unlock()
				return s.current
			}, decor.WCSyncSpaceR),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
			decor.OnComplete(decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace), " ✓"),
		),
	)
	return s
}

// Start marks step as running, completing the previous one.
func (s *Steps) Start(step string) {
	if s.bar == nil {
		return
	}
	s.mu.Lock()
	previous := s.current
	s.current = step
	s.mu.Unlock()
	if previous != "" {
		s.bar.Increment()
	}
}

// Finish completes the bar. With ok=false the bar is aborted in place.
func (s *Steps) Finish(ok bool) {
	if s.bar == nil {
		return
	}
	if ok {
		s.bar.SetTotal(s.bar.Current()+1, true)
	} else {
		s.bar.Abort(false)
	}
	s.container.Wait()
}

// IsTTY reports whether writer is a terminal
func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}
