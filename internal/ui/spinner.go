package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// Spinner animates a single status line while a one-shot command waits on
// the network. The label can change while it spins; Success and Fail
// replace the line with a final mark and the elapsed time.
type Spinner struct {
	mu      sync.Mutex
	w       io.Writer
	label   string
	style   spinner.Spinner
	frame   int
	drawn   int // printable width of the line on screen
	started time.Time
	stop    chan struct{}
	done    chan struct{}
}

// NewSpinner returns a stopped spinner that writes to stderr.
func NewSpinner(label string) *Spinner {
	return &Spinner{w: os.Stderr, label: label, style: spinner.MiniDot}
}

// SetWriter redirects output. Call it before Start.
func (s *Spinner) SetWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

// SetLabel swaps the label. A running spinner picks it up on its next
// frame; the final line always uses the latest label.
func (s *Spinner) SetLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.label = label
}

// Start draws the first frame and animates until Success or Fail.
// Starting a running spinner does nothing.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.started = time.Now()
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.draw()
	go s.animate(s.stop, s.done)
}

// Success ends the spinner with a check mark.
func (s *Spinner) Success() {
	s.finish(SuccessStyle().Render(SymbolSuccess))
}

// Fail ends the spinner with a cross.
func (s *Spinner) Fail() {
	s.finish(ErrorStyle().Render(SymbolFail))
}

func (s *Spinner) animate(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.style.FPS)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(s.style.Frames)
			s.draw()
			s.mu.Unlock()
		}
	}
}

func (s *Spinner) finish(mark string) {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop = nil
	s.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
	var elapsed time.Duration
	if !s.started.IsZero() {
		elapsed = time.Since(s.started)
	}
	fmt.Fprintf(s.w, "%s %s %s\n", mark, s.label, MutedStyle().Render(formatElapsed(elapsed)))
}

// draw and clear expect s.mu to be held.
func (s *Spinner) draw() {
	s.clear()
	tint := GradientColors[(s.frame/2)%len(GradientColors)]
	line := lipgloss.NewStyle().Foreground(tint).Render(s.style.Frames[s.frame]) + " " + s.label + "..."
	fmt.Fprint(s.w, "\r"+line)
	s.drawn = lipgloss.Width(line)
}

func (s *Spinner) clear() {
	if s.drawn == 0 {
		return
	}
	fmt.Fprint(s.w, "\r"+strings.Repeat(" ", s.drawn)+"\r")
	s.drawn = 0
}

// formatElapsed rounds to centiseconds: "0s", "50ms", "1.23s".
func formatElapsed(d time.Duration) string {
	return d.Round(10 * time.Millisecond).String()
}
