package core

// StatusPayload is the decoded JSON body of VLC's status.json endpoint.
// Its schema belongs to VLC; known keys are length, time, state, rate,
// volume and information.category.meta.
type StatusPayload map[string]any

// MediaInfo is a flat view of what VLC is currently playing.
// Nil fields were absent from the status payload.
type MediaInfo struct {
	Title    *string  `json:"title,omitempty"`
	Artist   *string  `json:"artist,omitempty"`
	Album    *string  `json:"album,omitempty"`
	Filename *string  `json:"filename,omitempty"`
	Duration *int     `json:"duration,omitempty"`
	Position *int     `json:"position,omitempty"`
	State    *string  `json:"state,omitempty"`
	Rate     *float64 `json:"rate,omitempty"`
	Volume   *float64 `json:"volume,omitempty"`
}

// Playback states reported by VLC.
const (
	StatePlaying = "playing"
	StatePaused  = "paused"
	StateStopped = "stopped"
)

// IsPlaying reports whether VLC said it is playing.
func (m *MediaInfo) IsPlaying() bool {
	return m != nil && m.State != nil && *m.State == StatePlaying
}

// DisplayTitle picks the best available label for the current item.
func (m *MediaInfo) DisplayTitle() string {
	if m == nil {
		return ""
	}
	if m.Title != nil && *m.Title != "" {
		return *m.Title
	}
	if m.Filename != nil {
		return *m.Filename
	}
	return ""
}

// ProgressPercent returns playback progress as a percentage (0-100).
func (m *MediaInfo) ProgressPercent() float64 {
	if m == nil || m.Duration == nil || m.Position == nil || *m.Duration <= 0 {
		return 0
	}
	p := float64(*m.Position) / float64(*m.Duration) * 100
	if p > 100 {
		return 100
	}
	return p
}
