package vlc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/codeesasi/Ai-Media-Guardian/internal/core"
	gerrors "github.com/codeesasi/Ai-Media-Guardian/internal/errors"
)

//go:generate mockgen -destination=mocks/mock_transport.go -package=mocks . Commander,LineSender

// Commander sends query-command requests to VLC's http interface.
type Commander interface {
	Command(ctx context.Context, req Request) (core.StatusPayload, error)
}

// HTTPClient talks to VLC's status.json endpoint with basic auth.
type HTTPClient struct {
	httpClient *http.Client
	statusURL  string
	password   string
	logger     *zap.Logger
}

// NewHTTPClient creates a client for statusURL. VLC's http interface uses an
// empty username and the configured password.
func NewHTTPClient(statusURL, password string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		statusURL: statusURL,
		password:  password,
		logger:    logger,
	}
}

var _ Commander = (*HTTPClient)(nil)

// Command issues one GET against status.json and decodes the JSON reply.
// There are no retries; failures are wrapped with ErrTransport.
func (c *HTTPClient) Command(ctx context.Context, r Request) (core.StatusPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.statusURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", gerrors.ErrTransport, err)
	}
	req.URL.RawQuery = r.Query().Encode()
	req.SetBasicAuth("", c.password)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("vlc http command",
		zap.String("command", r.Command),
		zap.Any("params", r.Params))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gerrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", gerrors.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", gerrors.ErrTransport, resp.StatusCode, truncate(string(body), 200))
	}

	payload := core.StatusPayload{}
	if len(body) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", gerrors.ErrTransport, err)
	}
	return payload, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
