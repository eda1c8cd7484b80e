// Package tail polls VLC and turns status differences into playback events.
package tail

import (
	"context"
	"time"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
)

// EventType represents the type of playback event.
type EventType int

const (
	EventMediaChange EventType = iota
	EventMediaComplete
	EventMediaSkip
	EventPause
	EventResume
	EventStop
	EventVolumeChange
	EventRateChange
)

// Event represents a playback state change.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Previous  *core.MediaInfo
	Current   *core.MediaInfo
}

// Source is what the watcher polls.
type Source interface {
	MediaInfo(ctx context.Context) (*core.MediaInfo, error)
}

// Watcher polls a player for state changes and emits events.
type Watcher struct {
	source   Source
	interval time.Duration
	events   chan Event
	done     chan struct{}
}

// NewWatcher creates a new state watcher.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	if interval == 0 {
		interval = time.Second
	}
	return &Watcher{
		source:   source,
		interval: interval,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}
}

// Events returns the channel of playback events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start polls until ctx is cancelled or Stop is called. Poll errors are
// skipped; the next successful poll is compared with the last good one.
func (w *Watcher) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.events)

	prev, err := w.source.MediaInfo(ctx)
	if err != nil {
		prev = nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case <-ticker.C:
			curr, err := w.source.MediaInfo(ctx)
			if err != nil {
				continue
			}

			for _, e := range diffStates(prev, curr, time.Now()) {
				select {
				case w.events <- e:
				default:
					// Drop event if channel is full
				}
			}

			prev = curr
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
}

// diffStates compares two polls and returns detected events.
func diffStates(prev, curr *core.MediaInfo, now time.Time) []Event {
	if curr == nil {
		return nil
	}

	event := func(t EventType) Event {
		return Event{Type: t, Timestamp: now, Previous: prev, Current: curr}
	}

	if prev == nil {
		if curr.DisplayTitle() != "" {
			return []Event{event(EventMediaChange)}
		}
		return nil
	}

	var events []Event

	if prev.DisplayTitle() != curr.DisplayTitle() {
		if prev.DisplayTitle() != "" {
			if wasCompleted(prev) {
				events = append(events, event(EventMediaComplete))
			} else {
				events = append(events, event(EventMediaSkip))
			}
		}
		if curr.DisplayTitle() != "" {
			events = append(events, event(EventMediaChange))
		}
	}

	prevState, currState := stateOf(prev), stateOf(curr)
	if prevState != currState {
		switch currState {
		case core.StatePaused:
			events = append(events, event(EventPause))
		case core.StatePlaying:
			if prevState == core.StatePaused {
				events = append(events, event(EventResume))
			}
		case core.StateStopped:
			events = append(events, event(EventStop))
		}
	}

	if !sameFloat(prev.Volume, curr.Volume) {
		events = append(events, event(EventVolumeChange))
	}
	if !sameFloat(prev.Rate, curr.Rate) {
		events = append(events, event(EventRateChange))
	}

	return events
}

func stateOf(m *core.MediaInfo) string {
	if m.State == nil {
		return ""
	}
	return *m.State
}

func sameFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// wasCompleted returns true if the item likely played to the end.
func wasCompleted(m *core.MediaInfo) bool {
	if m.Duration == nil || m.Position == nil || *m.Duration == 0 {
		return false
	}
	// Consider completed if position is >= 95% of duration
	return float64(*m.Position) >= float64(*m.Duration)*0.95
}
