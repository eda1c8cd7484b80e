package vlc

import (
	"context"
	"fmt"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
)

// Client maps operations onto VLC's two control protocols. Control and
// status go over http; output listings are only available on the rc socket.
type Client struct {
	cmd Commander
	rc  LineSender
}

// NewClient creates a client from the two transport backends.
func NewClient(cmd Commander, rc LineSender) *Client {
	return &Client{
		cmd: cmd,
		rc:  rc,
	}
}

// Do sends a query-command request.
func (c *Client) Do(ctx context.Context, req Request) (core.StatusPayload, error) {
	payload, err := c.cmd.Command(ctx, req)
	if err != nil {
		name := req.Command
		if name == CmdStatus {
			name = "status"
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return payload, nil
}

// Quit asks VLC to exit.
func (c *Client) Quit(ctx context.Context) error {
	_, err := c.Do(ctx, QuitRequest())
	return err
}

// Outputs lists device or output module names marked active by VLC.
func (c *Client) Outputs(ctx context.Context, kind core.OutputKind) ([]string, error) {
	reply, err := c.rc.SendLine(ctx, string(kind))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return ParseMarkedLines(reply), nil
}
