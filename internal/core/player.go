package core

import "context"

// Player defines the remote-control surface of a running VLC instance.
type Player interface {
	// Lifecycle
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
	Running() bool

	// Playback control
	Play(ctx context.Context, path string) (StatusPayload, error)
	Pause(ctx context.Context) (StatusPayload, error)
	Stop(ctx context.Context) error
	Seek(ctx context.Context, seconds int) (StatusPayload, error)
	Rate(ctx context.Context, rate float64) (StatusPayload, error)

	// Volume control
	Volume(ctx context.Context, level int) (StatusPayload, error)
	Mute(ctx context.Context) (StatusPayload, error)

	// Video adjustments
	Fullscreen(ctx context.Context) (StatusPayload, error)
	Snapshot(ctx context.Context) (StatusPayload, error)
	Brightness(ctx context.Context, value float64) (StatusPayload, error)
	AspectRatio(ctx context.Context, ratio string) (StatusPayload, error)
	Crop(ctx context.Context, geometry string) (StatusPayload, error)

	// Outputs
	SetAudioDevice(ctx context.Context, device string) (StatusPayload, error)
	Outputs(ctx context.Context, kind OutputKind) ([]string, error)

	// State queries
	Status(ctx context.Context) (StatusPayload, error)
	MediaInfo(ctx context.Context) (*MediaInfo, error)
}

// Library lists the movies available for playback.
type Library interface {
	ListMovies(refresh bool) *MovieCache
}
