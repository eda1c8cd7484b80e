package tail

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Formatter formats events for output.
type Formatter struct {
	showEmoji     bool
	showTimestamp bool
	template      *template.Template
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithEmoji enables emoji output.
func WithEmoji(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showEmoji = enabled
	}
}

// WithTimestamp enables timestamp output.
func WithTimestamp(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showTimestamp = enabled
	}
}

// WithTemplate sets a custom format template. An invalid template is ignored.
func WithTemplate(tmpl string) FormatterOption {
	return func(f *Formatter) {
		if tmpl != "" {
			t, err := template.New("format").Parse(tmpl)
			if err == nil {
				f.template = t
			}
		}
	}
}

// NewFormatter creates a new formatter with the given options.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		showEmoji: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format formats an event as a string.
func (f *Formatter) Format(e Event) string {
	if f.template != nil {
		return f.formatTemplate(e)
	}
	return f.formatLine(e)
}

func (f *Formatter) formatLine(e Event) string {
	var parts []string

	if f.showTimestamp {
		parts = append(parts, e.Timestamp.Format("15:04:05"))
	}
	if f.showEmoji {
		parts = append(parts, eventEmoji(e.Type))
	}
	parts = append(parts, eventDescription(e))

	return strings.Join(parts, " ")
}

func (f *Formatter) formatTemplate(e Event) string {
	data := templateData{
		Type:      eventTypeName(e.Type),
		Emoji:     eventEmoji(e.Type),
		Timestamp: e.Timestamp,
		Time:      e.Timestamp.Format("15:04:05"),
	}

	if c := e.Current; c != nil {
		data.Title = c.DisplayTitle()
		if c.Artist != nil {
			data.Artist = *c.Artist
		}
		if c.Album != nil {
			data.Album = *c.Album
		}
		if c.State != nil {
			data.State = *c.State
		}
		if c.Volume != nil {
			data.Volume = *c.Volume
		}
	}

	var buf bytes.Buffer
	if err := f.template.Execute(&buf, data); err != nil {
		return f.formatLine(e)
	}
	return buf.String()
}

type templateData struct {
	Type      string
	Emoji     string
	Timestamp time.Time
	Time      string
	Title     string
	Artist    string
	Album     string
	State     string
	Volume    float64
}

func eventDescription(e Event) string {
	switch e.Type {
	case EventMediaChange:
		return "Now playing: " + describe(e.Current.DisplayTitle(), e.Current.Artist)
	case EventMediaComplete:
		return "Finished: " + describe(e.Previous.DisplayTitle(), e.Previous.Artist)
	case EventMediaSkip:
		return "Skipped: " + describe(e.Previous.DisplayTitle(), e.Previous.Artist)
	case EventPause:
		return "Paused"
	case EventResume:
		return "Resumed"
	case EventStop:
		return "Stopped"
	case EventVolumeChange:
		if e.Current != nil && e.Current.Volume != nil {
			return fmt.Sprintf("Volume: %d%%", int(*e.Current.Volume*100/256+0.5))
		}
		return "Volume changed"
	case EventRateChange:
		if e.Current != nil && e.Current.Rate != nil {
			return fmt.Sprintf("Rate: %gx", *e.Current.Rate)
		}
		return "Rate changed"
	default:
		return "Unknown event"
	}
}

func describe(title string, artist *string) string {
	if title == "" {
		title = "unknown"
	}
	if artist != nil && *artist != "" {
		return *artist + " - " + title
	}
	return title
}

func eventEmoji(t EventType) string {
	switch t {
	case EventMediaChange:
		return "🎬"
	case EventMediaComplete:
		return "✅"
	case EventMediaSkip:
		return "⏭️"
	case EventPause:
		return "⏸️"
	case EventResume:
		return "▶️"
	case EventStop:
		return "⏹️"
	case EventVolumeChange:
		return "🔊"
	case EventRateChange:
		return "⏩"
	default:
		return "❓"
	}
}

func eventTypeName(t EventType) string {
	switch t {
	case EventMediaChange:
		return "media_change"
	case EventMediaComplete:
		return "media_complete"
	case EventMediaSkip:
		return "media_skip"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventStop:
		return "stop"
	case EventVolumeChange:
		return "volume_change"
	case EventRateChange:
		return "rate_change"
	default:
		return "unknown"
	}
}
