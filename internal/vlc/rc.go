package vlc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	gerrors "github.com/codeesasi/Ai-Media-Guardian/internal/errors"
)

// ActiveMarker prefixes the selected entry in rc listings.
const ActiveMarker = "*"

// LineSender sends a single command line to VLC's rc socket and returns the raw reply.
type LineSender interface {
	SendLine(ctx context.Context, line string) (string, error)
}

// RCClient speaks VLC's line-oriented remote control protocol over TCP.
// Each call opens a fresh connection and closes it when the reply is read.
type RCClient struct {
	address string
	timeout time.Duration
	idle    time.Duration
	logger  *zap.Logger
}

// NewRCClient creates an rc client for address (host:port).
// timeout bounds the whole exchange.
func NewRCClient(address string, timeout time.Duration, logger *zap.Logger) *RCClient {
	idle := timeout / 4
	if idle <= 0 {
		idle = 250 * time.Millisecond
	}
	return &RCClient{
		address: address,
		timeout: timeout,
		idle:    idle,
		logger:  logger,
	}
}

var _ LineSender = (*RCClient)(nil)

// SendLine writes line plus a newline and reads until the peer closes the
// connection or stays quiet for the idle window. VLC keeps rc sessions open,
// so a quiet socket after some output is treated as the end of the reply.
func (c *RCClient) SendLine(ctx context.Context, line string) (string, error) {
	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return "", fmt.Errorf("%w: %v", gerrors.ErrSocket, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return "", fmt.Errorf("%w: set deadline: %v", gerrors.ErrSocket, err)
	}

	c.logger.Debug("vlc rc command", zap.String("line", line), zap.String("address", c.address))

	if _, err := io.WriteString(conn, strings.TrimRight(line, "\r\n")+"\n"); err != nil {
		return "", fmt.Errorf("%w: write: %v", gerrors.ErrSocket, err)
	}

	var reply strings.Builder
	buf := make([]byte, 4096)
	for {
		if reply.Len() > 0 {
			idleDeadline := time.Now().Add(c.idle)
			if idleDeadline.Before(deadline) {
				_ = conn.SetReadDeadline(idleDeadline)
			}
		}
		n, err := conn.Read(buf)
		reply.Write(buf[:n])
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, os.ErrDeadlineExceeded) && reply.Len() > 0 {
			break
		}
		return "", fmt.Errorf("%w: read: %v", gerrors.ErrSocket, err)
	}

	return reply.String(), nil
}

// ParseMarkedLines returns the entries of an rc listing that carry the
// active marker, with the marker and surrounding whitespace removed.
func ParseMarkedLines(reply string) []string {
	out := []string{}
	scanner := bufio.NewScanner(strings.NewReader(reply))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, ActiveMarker) {
			continue
		}
		entry := strings.TrimSpace(strings.TrimPrefix(line, ActiveMarker))
		if entry == "" {
			continue
		}
		out = append(out, entry)
	}
	return out
}
