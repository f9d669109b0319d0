package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shimmeringbee/logwrap"
)

const DefaultTimeout = 30 * time.Second

// SessionCookieName is the name of the access token cookie set by the
// server on login and refresh.
const SessionCookieName = "accessToken"

type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  logwrap.Logger

	// OnSessionExpired fires when a 401 could not be recovered by the single
	// permitted refresh attempt. Typically wired to the session manager.
	OnSessionExpired func()
}

// Client talks to the dashboard server. The session is carried entirely in
// server-set cookies held by the client's jar; callers never see tokens.
type Client struct {
	base   *url.URL
	http   *http.Client
	jar    *cookiejar.Jar
	logger logwrap.Logger

	refresh          *refreshGroup
	onSessionExpired func()
}

func New(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to construct cookie jar: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		base:             base,
		http:             &http.Client{Jar: jar, Timeout: timeout},
		jar:              jar,
		logger:           cfg.Logger,
		refresh:          &refreshGroup{},
		onSessionExpired: cfg.OnSessionExpired,
	}, nil
}

// SessionCookie exposes the access token cookie, if one is held, so the
// session manager can check freshness without a network round trip.
func (c *Client) SessionCookie() (*http.Cookie, bool) {
	for _, cookie := range c.jar.Cookies(c.base) {
		if cookie.Name == SessionCookieName {
			return cookie, true
		}
	}

	return nil, false
}

func (c *Client) call(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	var payload []byte

	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	resp, data, err := c.roundTrip(ctx, method, path, query, payload)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.refresh.Do(ctx, c.performRefresh); err != nil {
			c.expireSession(ctx)
			return ErrSessionExpired
		}

		if resp, data, err = c.roundTrip(ctx, method, path, query, payload); err != nil {
			return err
		}

		if resp.StatusCode == http.StatusUnauthorized {
			// The refresh succeeded but the server still refuses the
			// original request; the session is unusable.
			c.expireSession(ctx)
			return ErrSessionExpired
		}
	}

	return decodeResponse(resp.StatusCode, data, out)
}

func (c *Client) roundTrip(ctx context.Context, method string, path string, query url.Values, payload []byte) (*http.Response, []byte, error) {
	target := c.base.JoinPath(path)

	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to construct request: %w", err)
	}

	requestId := uuid.New().String()
	req.Header.Set("X-Request-Id", requestId)
	req.Header.Set("Accept", "application/json")

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.LogWarn(ctx, "Request to server failed.", logwrap.Datum("method", method), logwrap.Datum("path", path), logwrap.Datum("requestId", requestId), logwrap.Err(err))
		return nil, nil, TransportError{Err: err}
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, TransportError{Err: err}
	}

	c.logger.LogDebug(ctx, "Completed request to server.", logwrap.Datum("method", method), logwrap.Datum("path", path), logwrap.Datum("requestId", requestId), logwrap.Datum("status", resp.StatusCode))

	return resp, data, nil
}

func (c *Client) expireSession(ctx context.Context) {
	c.logger.LogInfo(ctx, "Session could not be recovered by refresh, treating as expired.")

	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

func decodeResponse(statusCode int, data []byte, out any) error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		if out == nil || len(data) == 0 {
			return nil
		}

		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}

		return nil
	case statusCode >= 400 && statusCode < 500:
		return BusinessError{StatusCode: statusCode, Message: messageFromBody(statusCode, data)}
	default:
		return ServerError{StatusCode: statusCode}
	}
}
