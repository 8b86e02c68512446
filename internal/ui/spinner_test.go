package ui

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards a builder shared with the animation goroutine.
type syncBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

// finalLine returns what is left on screen after the last carriage return.
func finalLine(out string) string {
	return out[strings.LastIndex(out, "\r")+1:]
}

func TestSpinner_Finish(t *testing.T) {
	tests := []struct {
		name     string
		finish   func(*Spinner)
		wantMark string
	}{
		{name: "success", finish: (*Spinner).Success, wantMark: SymbolSuccess},
		{name: "fail", finish: (*Spinner).Fail, wantMark: SymbolFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf syncBuffer
			s := NewSpinner("Fetching stats")
			s.SetWriter(&buf)
			s.Start()
			tt.finish(s)

			out := buf.String()
			assert.Contains(t, out, "Fetching stats...", "spinning frame")
			last := finalLine(out)
			assert.Contains(t, last, tt.wantMark)
			assert.Contains(t, last, "Fetching stats")
			assert.NotContains(t, last, "...")
			assert.True(t, strings.HasSuffix(out, "\n"))
		})
	}
}

func TestSpinner_SetLabelWhileRunning(t *testing.T) {
	var buf syncBuffer
	s := NewSpinner("Fetching stats")
	s.SetWriter(&buf)
	s.Start()
	s.SetLabel("Fetched 3 hosts")
	s.Success()

	last := finalLine(buf.String())
	assert.Contains(t, last, "Fetched 3 hosts")
	assert.NotContains(t, last, "Fetching stats")
}

func TestSpinner_AnimatesUntilStopped(t *testing.T) {
	var buf syncBuffer
	s := NewSpinner("Waiting")
	s.SetWriter(&buf)
	s.Start()
	s.Start()

	require.Eventually(t, func() bool {
		return strings.Count(buf.String(), "Waiting...") >= 3
	}, 2*time.Second, 10*time.Millisecond)

	s.Fail()
	after := buf.String()
	time.Sleep(3 * s.style.FPS)
	assert.Equal(t, after, buf.String(), "no frames after Fail")
	assert.Equal(t, 1, strings.Count(after, "\n"))
}

func TestSpinner_FinishWithoutStart(t *testing.T) {
	var buf syncBuffer
	s := NewSpinner("Idle")
	s.SetWriter(&buf)
	s.Fail()

	last := finalLine(buf.String())
	assert.Contains(t, last, "Idle ")
	assert.Contains(t, last, "0s")
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{50 * time.Millisecond, "50ms"},
		{1234 * time.Millisecond, "1.23s"},
		{90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatElapsed(tt.d))
		})
	}
}
