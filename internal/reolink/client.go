// Package reolink implements the camera's HTTP control protocol: batches of
// JSON commands POSTed to a single api.cgi endpoint, authenticated through
// query-string parameters (a session token, or raw credentials while no
// token is held).
package reolink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
)

const defaultHTTPPort = 80

// Client issues command batches to one camera. It holds the credentials but
// no token; the session usecase decides which auth mode decorates each call.
type Client struct {
	host     string
	port     int
	username string
	password string
	channel  int
	http     *http.Client
	log      logger.Interface
}

// NewClient -.
func NewClient(cam entity.Camera, httpClient *http.Client, log logger.Interface) *Client {
	port := cam.HTTPPort
	if port == 0 {
		port = defaultHTTPPort
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		host:     cam.Host,
		port:     port,
		username: cam.Username,
		password: cam.Password,
		channel:  cam.Channel,
		http:     httpClient,
		log:      log,
	}
}

// Channel returns the camera channel the client addresses.
func (c *Client) Channel() int {
	return c.channel
}

// Endpoint returns the base URL command batches are posted to.
func (c *Client) Endpoint() string {
	return fmt.Sprintf("http://%s:%d/api.cgi", c.host, c.port)
}

// cgiEndpoint is the base URL for query-style calls (Snap); the device
// serves those under cgi-bin rather than the batch endpoint.
func (c *Client) cgiEndpoint() string {
	return fmt.Sprintf("http://%s:%d/cgi-bin/api.cgi", c.host, c.port)
}

// Do posts a command batch. An empty token selects credential auth; auth is
// carried as query parameters in both modes, never in the body. Per-command
// errors are logged and left in the results for the caller to inspect by
// command name; only network and decode failures abort the batch.
func (c *Client) Do(ctx context.Context, cmds []Command, token string) (Results, error) {
	body, err := json.Marshal(cmds)
	if err != nil {
		return nil, TransportError{Cam: ErrReolinkClient}.Wrap("Do", "json.Marshal", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(c.Endpoint(), nil, token), bytes.NewReader(body))
	if err != nil {
		return nil, TransportError{Cam: ErrReolinkClient}.Wrap("Do", "http.NewRequestWithContext", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, TransportError{Cam: ErrReolinkClient}.Wrap("Do", "http.Do", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, TransportError{Cam: ErrReolinkClient}.Wrap("Do", "http.Do", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var results Results
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, TransportError{Cam: ErrReolinkClient}.Wrap("Do", "json.Decode", err)
	}

	for _, r := range results {
		if r.Error != nil {
			c.log.Warn("reolink - %s:%d - command %s failed: %s", c.host, c.port, r.Cmd, r.Error.Error())
		}
	}

	return results, nil
}

// Get issues a query-only call (used by Snap) and returns the raw body.
func (c *Client) Get(ctx context.Context, query url.Values, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(c.cgiEndpoint(), query, token), http.NoBody)
	if err != nil {
		return nil, TransportError{Cam: ErrReolinkClient}.Wrap("Get", "http.NewRequestWithContext", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, TransportError{Cam: ErrReolinkClient}.Wrap("Get", "http.Do", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, TransportError{Cam: ErrReolinkClient}.Wrap("Get", "http.Do", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, TransportError{Cam: ErrReolinkClient}.Wrap("Get", "io.ReadAll", err)
	}

	return data, nil
}

func (c *Client) requestURL(base string, query url.Values, token string) string {
	params := url.Values{}
	for k, vs := range query {
		params[k] = vs
	}

	if token != "" {
		params.Set("token", token)
	} else {
		params.Set("username", c.username)
		params.Set("password", c.password)
	}

	return base + "?" + params.Encode()
}

// ClipURLs builds the playback and download URLs for a recorded clip path.
// The device authorizes these by the same session token.
type ClipURLs struct {
	FileName              string
	FileNameWithExtension string
	DownloadPath          string
	PlaybackPath          string
	DownloadURL           string
	PlaybackURL           string
}

// VideoClipURLs -.
func (c *Client) VideoClipURLs(clipPath, token string) ClipURLs {
	fileNameWithExtension := clipPath
	if idx := strings.LastIndexByte(clipPath, '/'); idx >= 0 {
		fileNameWithExtension = clipPath[idx+1:]
	}

	fileName := fileNameWithExtension
	if idx := strings.IndexByte(fileNameWithExtension, '.'); idx >= 0 {
		fileName = fileNameWithExtension[:idx]
	}

	q := url.Values{}
	q.Set("source", clipPath)
	q.Set("output", fileNameWithExtension)
	q.Set("token", token)

	downloadPath := "api.cgi?cmd=" + CmdDownload + "&" + q.Encode()
	playbackPath := "cgi-bin/api.cgi?cmd=" + CmdPlayback + "&" + q.Encode()
	base := fmt.Sprintf("http://%s:%d/", c.host, c.port)

	return ClipURLs{
		FileName:              fileName,
		FileNameWithExtension: fileNameWithExtension,
		DownloadPath:          downloadPath,
		PlaybackPath:          playbackPath,
		DownloadURL:           base + downloadPath,
		PlaybackURL:           base + playbackPath,
	}
}

// Snap fetches a JPEG snapshot. The rs parameter is a cache-busting nonce.
func (c *Client) Snap(ctx context.Context, token string, rs string) ([]byte, error) {
	q := url.Values{}
	q.Set("cmd", CmdSnap)
	q.Set("channel", strconv.Itoa(c.channel))
	q.Set("rs", rs)

	return c.Get(ctx, q, token)
}

const (
	CmdDownload = "Download"
	CmdPlayback = "Playback"
)
