// Package tools exposes the player controller and the movie library as MCP tools.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
	gerrors "github.com/codeesasi/Ai-Media-Guardian/internal/errors"
)

const (
	ServerName = "vlc-mcp-controller"
)

// Tools holds the handlers behind every registered tool.
type Tools struct {
	player  core.Player
	library core.Library
	logger  *zap.Logger
}

// New creates the tool handlers.
func New(player core.Player, library core.Library, logger *zap.Logger) *Tools {
	return &Tools{
		player:  player,
		library: library,
		logger:  logger,
	}
}

// NewServer builds an MCP server with every tool registered.
func NewServer(t *Tools, version string) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	t.Register(s)
	return s
}

// Register adds all tools to s.
func (t *Tools) Register(s *server.MCPServer) {
	for _, tool := range t.definitions() {
		s.AddTool(tool.Tool, t.logged(tool.Tool.Name, tool.Handler))
	}
}

func (t *Tools) definitions() []server.ServerTool {
	return []server.ServerTool{
		{Tool: mcp.NewTool("start_player",
			mcp.WithDescription("Launch VLC with its http and rc control interfaces enabled"),
		), Handler: t.startPlayer},
		{Tool: mcp.NewTool("shutdown_player",
			mcp.WithDescription("Ask VLC to quit"),
		), Handler: t.shutdownPlayer},
		{Tool: mcp.NewTool("play_video",
			mcp.WithDescription("Play a local video file in VLC"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Absolute path to the video file")),
		), Handler: t.playVideo},
		{Tool: mcp.NewTool("pause",
			mcp.WithDescription("Pause or resume VLC playback"),
		), Handler: t.pause},
		{Tool: mcp.NewTool("stop",
			mcp.WithDescription("Stop VLC playback"),
		), Handler: t.stop},
		{Tool: mcp.NewTool("seek",
			mcp.WithDescription("Seek playback by seconds"),
			mcp.WithNumber("seconds", mcp.Required(), mcp.Description("Seconds to seek (+forward, -backward)")),
		), Handler: t.seek},
		{Tool: mcp.NewTool("set_volume",
			mcp.WithDescription("Set the VLC volume (0-512, 256 is 100%)"),
			mcp.WithNumber("level", mcp.Required(), mcp.Description("Volume level")),
		), Handler: t.setVolume},
		{Tool: mcp.NewTool("mute",
			mcp.WithDescription("Mute VLC by setting the volume to zero"),
		), Handler: t.mute},
		{Tool: mcp.NewTool("status",
			mcp.WithDescription("Get the raw VLC playback status"),
		), Handler: t.status},
		{Tool: mcp.NewTool("media_info",
			mcp.WithDescription("Get title, artist, album, position and state of the current media"),
		), Handler: t.mediaInfo},
		{Tool: mcp.NewTool("fullscreen",
			mcp.WithDescription("Toggle fullscreen"),
		), Handler: t.fullscreen},
		{Tool: mcp.NewTool("snapshot",
			mcp.WithDescription("Take a video snapshot"),
		), Handler: t.snapshot},
		{Tool: mcp.NewTool("set_brightness",
			mcp.WithDescription("Set video brightness"),
			mcp.WithNumber("value", mcp.Required(), mcp.Description("Brightness value, 1.0 is neutral")),
		), Handler: t.setBrightness},
		{Tool: mcp.NewTool("set_aspect_ratio",
			mcp.WithDescription("Force a display aspect ratio"),
			mcp.WithString("ratio", mcp.Required(), mcp.Description("Aspect ratio such as 16:9 or 4:3")),
		), Handler: t.setAspectRatio},
		{Tool: mcp.NewTool("set_crop",
			mcp.WithDescription("Set video crop geometry"),
			mcp.WithString("crop", mcp.Required(), mcp.Description("Crop geometry such as 16:9")),
		), Handler: t.setCrop},
		{Tool: mcp.NewTool("set_rate",
			mcp.WithDescription("Set playback speed"),
			mcp.WithNumber("rate", mcp.Required(), mcp.Description("Speed multiplier, 1.0 is normal")),
		), Handler: t.setRate},
		{Tool: mcp.NewTool("set_audio_device",
			mcp.WithDescription("Switch the audio output device"),
			mcp.WithString("device", mcp.Required(), mcp.Description("Device identifier from list_audio_devices")),
		), Handler: t.setAudioDevice},
		{Tool: mcp.NewTool("list_audio_devices",
			mcp.WithDescription("List active audio devices"),
		), Handler: t.listOutputs(core.OutputAudioDevices)},
		{Tool: mcp.NewTool("list_audio_outputs",
			mcp.WithDescription("List active audio output modules"),
		), Handler: t.listOutputs(core.OutputAudioModules)},
		{Tool: mcp.NewTool("list_video_outputs",
			mcp.WithDescription("List active video output modules"),
		), Handler: t.listOutputs(core.OutputVideoModules)},
		{Tool: mcp.NewTool("list_movies",
			mcp.WithDescription("List movies in the configured library folder"),
			mcp.WithBoolean("refresh", mcp.Description("Rescan the folder instead of using the cached listing")),
		), Handler: t.listMovies},
	}
}

// logged records each call and its outcome.
func (t *Tools) logged(name string, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		t.logger.Debug("tool called", zap.String("tool", name))
		res, err := h(ctx, req)
		switch {
		case err != nil:
			t.logger.Warn("tool failed", zap.String("tool", name), zap.Error(err))
		case res != nil && res.IsError:
			t.logger.Info("tool rejected", zap.String("tool", name))
		}
		return res, err
	}
}

// failure turns validation and not-running errors into error results the
// caller can read. Transport and socket errors are returned unchanged.
func failure(err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, gerrors.ErrNotRunning) || errors.Is(err, gerrors.ErrMissingInput) {
		return mcp.NewToolResultError(gerrors.Format(err)), nil
	}
	return nil, err
}

func missing(field string) (*mcp.CallToolResult, error) {
	return failure(gerrors.Missing(field))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (t *Tools) startPlayer(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.player.Running() {
		return mcp.NewToolResultText("VLC is already running"), nil
	}
	if err := t.player.Start(ctx); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText("VLC started"), nil
}

func (t *Tools) shutdownPlayer(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.player.Shutdown(ctx); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText("VLC shut down"), nil
}

func (t *Tools) playVideo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := req.GetString("path", "")
	if path == "" {
		return missing("path")
	}
	if _, err := t.player.Play(ctx, path); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Playing video: %s", path)), nil
}

func (t *Tools) pause(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := t.player.Pause(ctx); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText("Playback toggled"), nil
}

func (t *Tools) stop(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.player.Stop(ctx); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText("Playback stopped"), nil
}

func (t *Tools) seek(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seconds, err := req.RequireInt("seconds")
	if err != nil {
		return missing("seconds")
	}
	if _, err := t.player.Seek(ctx, seconds); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Seeked %d seconds", seconds)), nil
}

func (t *Tools) setVolume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	level, err := req.RequireInt("level")
	if err != nil {
		return missing("level")
	}
	if _, err := t.player.Volume(ctx, level); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Volume set to %d", level)), nil
}

func (t *Tools) mute(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := t.player.Mute(ctx); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText("Muted"), nil
}

func (t *Tools) status(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := t.player.Status(ctx)
	if err != nil {
		return failure(err)
	}
	return jsonResult(payload)
}

func (t *Tools) mediaInfo(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := t.player.MediaInfo(ctx)
	if err != nil {
		return failure(err)
	}
	return jsonResult(info)
}

func (t *Tools) fullscreen(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := t.player.Fullscreen(ctx); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText("Fullscreen toggled"), nil
}

func (t *Tools) snapshot(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := t.player.Snapshot(ctx); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText("Snapshot taken"), nil
}

func (t *Tools) setBrightness(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := req.RequireFloat("value")
	if err != nil {
		return missing("value")
	}
	if _, err := t.player.Brightness(ctx, value); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Brightness set to %g", value)), nil
}

func (t *Tools) setAspectRatio(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ratio := req.GetString("ratio", "")
	if _, err := t.player.AspectRatio(ctx, ratio); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Aspect ratio set to %s", ratio)), nil
}

func (t *Tools) setCrop(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	crop := req.GetString("crop", "")
	if _, err := t.player.Crop(ctx, crop); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Crop set to %s", crop)), nil
}

func (t *Tools) setRate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rate, err := req.RequireFloat("rate")
	if err != nil {
		return missing("rate")
	}
	if _, err := t.player.Rate(ctx, rate); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Playback rate set to %g", rate)), nil
}

func (t *Tools) setAudioDevice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	device := req.GetString("device", "")
	if _, err := t.player.SetAudioDevice(ctx, device); err != nil {
		return failure(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Audio device set to %s", device)), nil
}

func (t *Tools) listOutputs(kind core.OutputKind) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := t.player.Outputs(ctx, kind)
		if err != nil {
			return failure(err)
		}
		return jsonResult(list)
	}
}

func (t *Tools) listMovies(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.library.ListMovies(req.GetBool("refresh", false)))
}
