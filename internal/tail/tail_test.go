package tail

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
)

func info(title, state string, pos, dur int) *core.MediaInfo {
	m := &core.MediaInfo{State: &state, Position: &pos, Duration: &dur}
	if title != "" {
		m.Title = &title
	}
	return m
}

func types(events []Event) []EventType {
	out := make([]EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func equalTypes(a, b []EventType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDiffStates(t *testing.T) {
	vol1, vol2 := 256.0, 128.0
	rate := 1.5

	tests := []struct {
		name string
		prev *core.MediaInfo
		curr *core.MediaInfo
		want []EventType
	}{
		{"nil current", info("A", "playing", 0, 100), nil, nil},
		{"first poll playing", nil, info("A", "playing", 0, 100), []EventType{EventMediaChange}},
		{"first poll idle", nil, info("", "stopped", 0, 0), nil},
		{"no change", info("A", "playing", 1, 100), info("A", "playing", 2, 100), nil},
		{"completed", info("A", "playing", 98, 100), info("B", "playing", 0, 50), []EventType{EventMediaComplete, EventMediaChange}},
		{"skipped", info("A", "playing", 10, 100), info("B", "playing", 0, 50), []EventType{EventMediaSkip, EventMediaChange}},
		{"pause", info("A", "playing", 10, 100), info("A", "paused", 10, 100), []EventType{EventPause}},
		{"resume", info("A", "paused", 10, 100), info("A", "playing", 11, 100), []EventType{EventResume}},
		{"stop", info("A", "playing", 10, 100), info("", "stopped", 0, 0), []EventType{EventMediaSkip, EventStop}},
		{"volume", &core.MediaInfo{Volume: &vol1}, &core.MediaInfo{Volume: &vol2}, []EventType{EventVolumeChange}},
		{"rate", &core.MediaInfo{}, &core.MediaInfo{Rate: &rate}, []EventType{EventRateChange}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := types(diffStates(tt.prev, tt.curr, time.Now()))
			if !equalTypes(got, tt.want) {
				t.Errorf("diffStates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatter(t *testing.T) {
	artist := "Mann"
	curr := info("Heat", "playing", 0, 100)
	curr.Artist = &artist
	e := Event{Type: EventMediaChange, Timestamp: time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC), Current: curr}

	if got := NewFormatter().Format(e); got != "🎬 Now playing: Mann - Heat" {
		t.Errorf("Format() = %q", got)
	}
	if got := NewFormatter(WithEmoji(false), WithTimestamp(true)).Format(e); got != "12:30:00 Now playing: Mann - Heat" {
		t.Errorf("Format() = %q", got)
	}
	if got := NewFormatter(WithTemplate("{{.Type}}|{{.Title}}|{{.State}}")).Format(e); got != "media_change|Heat|playing" {
		t.Errorf("Format() = %q", got)
	}
	// Invalid templates fall back to the line format
	if got := NewFormatter(WithTemplate("{{.Nope")).Format(e); !strings.Contains(got, "Now playing") {
		t.Errorf("Format() = %q", got)
	}

	vol := 128.0
	v := Event{Type: EventVolumeChange, Current: &core.MediaInfo{Volume: &vol}}
	if got := NewFormatter(WithEmoji(false)).Format(v); got != "Volume: 50%" {
		t.Errorf("Format() = %q", got)
	}
}

// scriptedSource returns one scripted result per poll, then repeats the last.
type scriptedSource struct {
	mu    sync.Mutex
	polls []*core.MediaInfo
	errs  []error
	n     int
}

func (s *scriptedSource) MediaInfo(context.Context) (*core.MediaInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := min(s.n, len(s.polls)-1)
	s.n++
	return s.polls[i], s.errs[i]
}

func TestWatcher(t *testing.T) {
	src := &scriptedSource{
		polls: []*core.MediaInfo{
			info("A", "playing", 0, 100),
			nil,
			info("A", "paused", 1, 100),
		},
		errs: []error{nil, errors.New("timeout"), nil},
	}

	w := NewWatcher(src, 5*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()

	select {
	case e := <-w.Events():
		if e.Type != EventPause {
			t.Errorf("first event = %v, want pause", e.Type)
		}
	case <-ctx.Done():
		t.Fatal("no event before timeout")
	}

	w.Stop()
	if err := <-errCh; err != nil {
		t.Errorf("Start() = %v, want nil after Stop", err)
	}
}
