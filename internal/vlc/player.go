package vlc

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
	gerrors "github.com/codeesasi/Ai-Media-Guardian/internal/errors"
)

// Controller implements core.Player for a local VLC instance.
// Every operation other than Start fails with ErrNotRunning, without any
// network I/O, while the supervisor does not consider VLC running.
type Controller struct {
	sup    *Supervisor
	client *Client
	logger *zap.Logger
}

// NewController creates a controller.
func NewController(sup *Supervisor, client *Client, logger *zap.Logger) *Controller {
	return &Controller{
		sup:    sup,
		client: client,
		logger: logger,
	}
}

// Start launches VLC unless it is already running.
func (c *Controller) Start(ctx context.Context) error {
	return c.sup.Start(ctx)
}

// Attach treats an already running VLC as ours to control.
func (c *Controller) Attach() {
	c.sup.Attach()
}

// Running reports whether VLC is considered running.
func (c *Controller) Running() bool {
	return c.sup.Running()
}

// Shutdown sends quit and marks VLC stopped, even if the quit request failed.
func (c *Controller) Shutdown(ctx context.Context) error {
	if err := c.ensureRunning(); err != nil {
		return err
	}
	err := c.client.Quit(ctx)
	c.sup.MarkStopped()
	if err != nil {
		c.logger.Warn("quit request failed", zap.Error(err))
		return err
	}
	c.logger.Info("vlc shut down")
	return nil
}

func (c *Controller) ensureRunning() error {
	if !c.sup.Running() {
		return gerrors.ErrNotRunning
	}
	return nil
}

func (c *Controller) do(ctx context.Context, req Request) (core.StatusPayload, error) {
	if err := c.ensureRunning(); err != nil {
		return nil, err
	}
	return c.client.Do(ctx, req)
}

// Play starts playback of a local file.
func (c *Controller) Play(ctx context.Context, path string) (core.StatusPayload, error) {
	if strings.TrimSpace(path) == "" {
		return nil, gerrors.Missing("path")
	}
	return c.do(ctx, PlayRequest(path))
}

// Pause toggles between paused and playing.
func (c *Controller) Pause(ctx context.Context) (core.StatusPayload, error) {
	return c.do(ctx, PauseRequest())
}

// Stop stops playback.
func (c *Controller) Stop(ctx context.Context) error {
	_, err := c.do(ctx, StopRequest())
	return err
}

// Seek moves the playhead by seconds; negative values seek backwards.
func (c *Controller) Seek(ctx context.Context, seconds int) (core.StatusPayload, error) {
	return c.do(ctx, SeekRequest(seconds))
}

// Rate sets the playback speed.
func (c *Controller) Rate(ctx context.Context, rate float64) (core.StatusPayload, error) {
	return c.do(ctx, RateRequest(rate))
}

// Volume sets the absolute volume (VLC scale, 256 = 100%).
func (c *Controller) Volume(ctx context.Context, level int) (core.StatusPayload, error) {
	return c.do(ctx, VolumeRequest(level))
}

// Mute sets the volume to zero.
func (c *Controller) Mute(ctx context.Context) (core.StatusPayload, error) {
	return c.do(ctx, MuteRequest())
}

// Fullscreen toggles fullscreen.
func (c *Controller) Fullscreen(ctx context.Context) (core.StatusPayload, error) {
	return c.do(ctx, FullscreenRequest())
}

// Snapshot takes a video snapshot.
func (c *Controller) Snapshot(ctx context.Context) (core.StatusPayload, error) {
	return c.do(ctx, SnapshotRequest())
}

// Brightness sets the brightness filter value.
func (c *Controller) Brightness(ctx context.Context, value float64) (core.StatusPayload, error) {
	return c.do(ctx, BrightnessRequest(value))
}

// AspectRatio forces the display aspect ratio.
func (c *Controller) AspectRatio(ctx context.Context, ratio string) (core.StatusPayload, error) {
	if strings.TrimSpace(ratio) == "" {
		return nil, gerrors.Missing("ratio")
	}
	return c.do(ctx, AspectRatioRequest(ratio))
}

// Crop sets the crop geometry.
func (c *Controller) Crop(ctx context.Context, geometry string) (core.StatusPayload, error) {
	if strings.TrimSpace(geometry) == "" {
		return nil, gerrors.Missing("crop")
	}
	return c.do(ctx, CropRequest(geometry))
}

// SetAudioDevice switches the audio output device.
func (c *Controller) SetAudioDevice(ctx context.Context, device string) (core.StatusPayload, error) {
	if strings.TrimSpace(device) == "" {
		return nil, gerrors.Missing("device")
	}
	return c.do(ctx, AudioDeviceRequest(device))
}

// Outputs lists the active entries of an rc device/output listing.
func (c *Controller) Outputs(ctx context.Context, kind core.OutputKind) ([]string, error) {
	if err := c.ensureRunning(); err != nil {
		return nil, err
	}
	return c.client.Outputs(ctx, kind)
}

// Status returns the raw status payload.
func (c *Controller) Status(ctx context.Context) (core.StatusPayload, error) {
	return c.do(ctx, StatusRequest())
}

// MediaInfo returns the projected view of what is playing.
func (c *Controller) MediaInfo(ctx context.Context) (*core.MediaInfo, error) {
	payload, err := c.Status(ctx)
	if err != nil {
		return nil, err
	}
	return ProjectMediaInfo(payload), nil
}

// Ensure Controller implements core.Player
var _ core.Player = (*Controller)(nil)
