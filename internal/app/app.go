// Package app wires the long-running tool server with fx.
package app

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/codeesasi/Ai-Media-Guardian/internal/config"
	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
	"github.com/codeesasi/Ai-Media-Guardian/internal/library"
	"github.com/codeesasi/Ai-Media-Guardian/internal/logging"
	"github.com/codeesasi/Ai-Media-Guardian/internal/tools"
	"github.com/codeesasi/Ai-Media-Guardian/internal/vlc"
)

// Params are the process-level inputs of the serve command.
type Params struct {
	Version string
	// AutoStart launches VLC before the tool server accepts calls.
	AutoStart bool
	In        io.Reader
	Out       io.Writer
}

// Options returns the dependency graph for serving tools over stdio.
func Options(cfg *config.Config, p Params) fx.Option {
	return fx.Options(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Supply(cfg, p),
		fx.Provide(
			newLogger,
			newCommander,
			newLineSender,
			newSupervisor,
			vlc.NewClient,
			vlc.NewController,
			newScanner,
			newTools,
			newMCPServer,
		),
		fx.Invoke(registerHooks),
	)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Log)
}

func newCommander(cfg *config.Config, logger *zap.Logger) vlc.Commander {
	return vlc.NewHTTPClient(cfg.Player.StatusURL(), cfg.Player.Password, cfg.Player.Timeout(), logger)
}

func newLineSender(cfg *config.Config, logger *zap.Logger) vlc.LineSender {
	return vlc.NewRCClient(cfg.RC.Address, cfg.RC.ReadTimeout(), logger)
}

func newSupervisor(cfg *config.Config, logger *zap.Logger) *vlc.Supervisor {
	return vlc.NewSupervisor(cfg.Player, cfg.RC, logger)
}

func newScanner(cfg *config.Config, logger *zap.Logger) *library.Scanner {
	return library.NewScanner(cfg.Library, logger)
}

func newTools(c *vlc.Controller, s *library.Scanner, logger *zap.Logger) *tools.Tools {
	var player core.Player = c
	var lib core.Library = s
	return tools.New(player, lib, logger)
}

func newMCPServer(t *tools.Tools, p Params) *server.MCPServer {
	return tools.NewServer(t, p.Version)
}

// registerHooks starts VLC and the stdio loop, and quits VLC on stop.
// The app shuts itself down when the client closes stdin.
func registerHooks(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	p Params,
	c *vlc.Controller,
	s *server.MCPServer,
	logger *zap.Logger,
) {
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if p.AutoStart {
				if err := c.Start(ctx); err != nil {
					cancel()
					return err
				}
			}

			stdio := server.NewStdioServer(s)
			stdio.SetErrorLogger(zap.NewStdLog(logger.Named("stdio")))

			go func() {
				defer close(done)
				logger.Info("tool server listening on stdio")
				if err := stdio.Listen(runCtx, p.In, p.Out); err != nil && runCtx.Err() == nil {
					logger.Warn("stdio loop ended", zap.Error(err))
				}
				if runCtx.Err() == nil {
					if err := sd.Shutdown(); err != nil {
						logger.Debug("shutdown request ignored", zap.Error(err))
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			if c.Running() {
				if err := c.Shutdown(ctx); err != nil {
					logger.Warn("vlc did not quit cleanly", zap.Error(err))
				}
			}
			select {
			case <-done:
			case <-ctx.Done():
			}
			logger.Info("tool server stopped")
			return nil
		},
	})
}
