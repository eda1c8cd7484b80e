package vlc

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/codeesasi/Ai-Media-Guardian/internal/config"
	gerrors "github.com/codeesasi/Ai-Media-Guardian/internal/errors"
)

// launchFunc starts the player. wait blocks until it exits; kill terminates it.
type launchFunc func(path string, args []string) (wait, kill func() error, err error)

// Supervisor launches VLC and tracks whether it is considered running.
// Start does not probe the http interface; it only waits a fixed delay.
type Supervisor struct {
	logger *zap.Logger
	cfg    config.PlayerConfig
	rcAddr string

	launch launchFunc
	sleep  func(ctx context.Context, d time.Duration) error

	mu         sync.Mutex
	running    bool
	generation int
}

// NewSupervisor creates a supervisor for the configured VLC binary.
func NewSupervisor(cfg config.PlayerConfig, rc config.RCConfig, logger *zap.Logger) *Supervisor {
	return &Supervisor{
		logger: logger,
		cfg:    cfg,
		rcAddr: rc.Address,
		launch: execLaunch,
		sleep:  sleepContext,
	}
}

// Args returns the command line flags that enable VLC's control interfaces.
func (s *Supervisor) Args() []string {
	args := []string{
		"--extraintf", "http:rc",
		"--http-host", s.cfg.Host,
		"--http-port", strconv.Itoa(s.cfg.Port),
		"--http-password", s.cfg.Password,
	}
	if s.rcAddr != "" {
		args = append(args, "--rc-host", s.rcAddr)
	}
	return append(args, s.cfg.ExtraArgs...)
}

// Start launches VLC and waits the startup delay. It is a no-op when VLC is
// already considered running. If ctx ends during the startup wait the child is
// killed and the flag cleared, so a later Start launches again.
func (s *Supervisor) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Debug("vlc already running, start ignored")
		return nil
	}

	wait, kill, err := s.launch(s.cfg.Path, s.Args())
	if err != nil {
		s.mu.Unlock()
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", gerrors.ErrPlayerNotFound, s.cfg.Path)
		}
		return fmt.Errorf("launch vlc: %w", err)
	}
	s.running = true
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	s.logger.Info("vlc launched",
		zap.String("path", s.cfg.Path),
		zap.String("host", s.cfg.Host),
		zap.Int("port", s.cfg.Port),
		zap.Duration("startup_wait", s.cfg.StartupDelay()))

	go s.watch(gen, wait)

	if err := s.sleep(ctx, s.cfg.StartupDelay()); err != nil {
		s.MarkStopped()
		if kerr := kill(); kerr != nil {
			s.logger.Warn("kill vlc after aborted start", zap.Error(kerr))
		}
		return err
	}
	return nil
}

// watch clears the running flag when the process this supervisor launched exits.
func (s *Supervisor) watch(gen int, wait func() error) {
	err := wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return
	}
	s.running = false
	if err != nil {
		s.logger.Warn("vlc exited", zap.Error(err))
		return
	}
	s.logger.Info("vlc exited")
}

// Attach marks a VLC instance started elsewhere as running.
func (s *Supervisor) Attach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		s.running = true
		s.generation++
	}
}

// MarkStopped records that VLC was asked to quit.
func (s *Supervisor) MarkStopped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.generation++
}

// Running reports whether VLC is considered running.
func (s *Supervisor) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func execLaunch(path string, args []string) (func() error, func() error, error) {
	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return nil, nil, err
	}
	return cmd.Wait, cmd.Process.Kill, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
