package vlc

import (
	"net/url"
	"strconv"
	"strings"
)

// Commands understood by VLC's http status.json endpoint.
const (
	CmdPlay        = "in_play"
	CmdPause       = "pl_pause"
	CmdStop        = "pl_stop"
	CmdSeek        = "seek"
	CmdVolume      = "volume"
	CmdQuit        = "quit"
	CmdStatus      = ""
	CmdBrightness  = "brightness"
	CmdAspectRatio = "aspect-ratio"
	CmdCrop        = "crop"
	CmdFullscreen  = "fullscreen"
	CmdSnapshot    = "snapshot"
	CmdRate        = "rate"
	CmdAudioDevice = "adev"
)

// Request is one query-command call: a command name plus its parameters.
type Request struct {
	Command string
	Params  map[string]string
}

// Query encodes the request as status.json query parameters.
// A status fetch carries no command parameter at all.
func (r Request) Query() url.Values {
	q := url.Values{}
	for k, v := range r.Params {
		q.Set(k, v)
	}
	if r.Command != CmdStatus {
		q.Set("command", r.Command)
	}
	return q
}

func withVal(command, val string) Request {
	return Request{Command: command, Params: map[string]string{"val": val}}
}

// PlayRequest starts playback of a local file.
func PlayRequest(path string) Request {
	return Request{Command: CmdPlay, Params: map[string]string{"input": FileURI(path)}}
}

// PauseRequest toggles between playing and paused.
func PauseRequest() Request { return Request{Command: CmdPause} }

// StopRequest stops playback.
func StopRequest() Request { return Request{Command: CmdStop} }

// QuitRequest asks VLC to exit.
func QuitRequest() Request { return Request{Command: CmdQuit} }

// StatusRequest fetches status without changing anything.
func StatusRequest() Request { return Request{Command: CmdStatus} }

// SeekRequest seeks relative to the current position.
func SeekRequest(seconds int) Request { return withVal(CmdSeek, SeekValue(seconds)) }

// VolumeRequest sets the absolute volume on VLC's 0-512 scale.
func VolumeRequest(level int) Request { return withVal(CmdVolume, strconv.Itoa(level)) }

// MuteRequest sets the volume to zero. VLC's http interface has no mute toggle.
func MuteRequest() Request { return VolumeRequest(0) }

// BrightnessRequest sets the video brightness filter value.
func BrightnessRequest(value float64) Request {
	return withVal(CmdBrightness, formatFloat(value))
}

// AspectRatioRequest forces a display aspect ratio such as "16:9".
func AspectRatioRequest(ratio string) Request { return withVal(CmdAspectRatio, ratio) }

// CropRequest sets the crop geometry.
func CropRequest(geometry string) Request { return withVal(CmdCrop, geometry) }

// RateRequest sets the playback speed multiplier.
func RateRequest(rate float64) Request { return withVal(CmdRate, formatFloat(rate)) }

// AudioDeviceRequest switches the audio output device.
func AudioDeviceRequest(device string) Request { return withVal(CmdAudioDevice, device) }

// FullscreenRequest toggles fullscreen.
func FullscreenRequest() Request { return Request{Command: CmdFullscreen} }

// SnapshotRequest saves a video snapshot.
func SnapshotRequest() Request { return Request{Command: CmdSnapshot} }

// SeekValue renders a relative seek. Negative numbers already carry their sign.
func SeekValue(seconds int) string {
	if seconds < 0 {
		return strconv.Itoa(seconds) + "s"
	}
	return "+" + strconv.Itoa(seconds) + "s"
}

// FileURI converts a local path (Windows or POSIX) to a file:/// URI.
// Every byte except unreserved characters, '/' and ':' is percent-encoded.
// UNC paths (\\server\share) keep their host as file://///server/share.
func FileURI(path string) string {
	p := strings.ReplaceAll(path, `\`, "/")
	prefix := "file:///"
	if strings.HasPrefix(p, "//") && len(strings.TrimLeft(p, "/")) > 0 {
		prefix += "//"
	}
	p = strings.TrimLeft(p, "/")
	return prefix + quotePath(p)
}

func quotePath(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if keepInPath(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func keepInPath(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '~', '/', ':':
		return true
	}
	return false
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
