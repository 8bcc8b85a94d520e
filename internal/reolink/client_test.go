package reolink_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
	"github.com/apocaliss92/reolink-osd-sync/internal/reolink"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*reolink.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	cam := entity.Camera{
		ID:       "cam-1",
		Host:     u.Hostname(),
		HTTPPort: port,
		Username: "admin",
		Password: "pass123",
		Channel:  0,
	}

	return reolink.NewClient(cam, srv.Client(), logger.New("error")), srv
}

func TestDoCredentialAuthRidesQueryString(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api.cgi", r.URL.Path)

		q := r.URL.Query()
		require.Equal(t, "admin", q.Get("username"))
		require.Equal(t, "pass123", q.Get("password"))
		require.Empty(t, q.Get("token"))

		var cmds []reolink.Command

		require.NoError(t, json.NewDecoder(r.Body).Decode(&cmds))
		require.Len(t, cmds, 1)
		require.Equal(t, reolink.CmdLogin, cmds[0].Cmd)

		// Credentials never appear in the body.
		require.Nil(t, cmds[0].Param)

		_ = json.NewEncoder(w).Encode([]reolink.Result{{
			Cmd:   reolink.CmdLogin,
			Code:  0,
			Value: json.RawMessage(`{"Token":{"name":"tok-1","leaseTime":3600}}`),
		}})
	})

	results, err := client.Do(context.Background(), []reolink.Command{{Cmd: reolink.CmdLogin}}, "")
	require.NoError(t, err)

	res, ok := results.Find(reolink.CmdLogin)
	require.True(t, ok)
	require.NoError(t, res.Err())
}

func TestDoTokenAuthReplacesCredentials(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "tok-1", q.Get("token"))
		require.Empty(t, q.Get("username"))
		require.Empty(t, q.Get("password"))

		_ = json.NewEncoder(w).Encode([]reolink.Result{{Cmd: reolink.CmdGetOsd, Code: 0, Value: json.RawMessage(`{}`)}})
	})

	_, err := client.Do(context.Background(), []reolink.Command{{Cmd: reolink.CmdGetOsd, Action: 1}}, "tok-1")
	require.NoError(t, err)
}

func TestDoPerCommandErrorDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]reolink.Result{
			{Cmd: reolink.CmdGetOsd, Code: 0, Value: json.RawMessage(`{"Osd":{}}`)},
			{Cmd: reolink.CmdGetBatteryInfo, Code: 1, Error: &reolink.CmdError{RspCode: -9, Detail: "not support"}},
		})
	})

	results, err := client.Do(context.Background(), []reolink.Command{
		{Cmd: reolink.CmdGetOsd, Action: 1},
		{Cmd: reolink.CmdGetBatteryInfo},
	}, "tok")
	require.NoError(t, err)

	osd, ok := results.Find(reolink.CmdGetOsd)
	require.True(t, ok)
	require.NoError(t, osd.Err())

	battery, ok := results.Find(reolink.CmdGetBatteryInfo)
	require.True(t, ok)
	require.Error(t, battery.Err())
}

func TestDoUnexpectedStatusIsTransportError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Do(context.Background(), []reolink.Command{{Cmd: reolink.CmdGetOsd}}, "tok")
	require.Error(t, err)

	var transportErr reolink.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestDoUnreachableHostIsTransportError(t *testing.T) {
	t.Parallel()

	client, srv := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {})
	srv.Close()

	_, err := client.Do(context.Background(), []reolink.Command{{Cmd: reolink.CmdGetOsd}}, "tok")
	require.Error(t, err)

	var transportErr reolink.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestDoUndecodableBodyIsTransportError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.Do(context.Background(), []reolink.Command{{Cmd: reolink.CmdGetOsd}}, "tok")
	require.Error(t, err)

	var transportErr reolink.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestSnapCarriesNonceAndToken(t *testing.T) {
	t.Parallel()

	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cgi-bin/api.cgi", r.URL.Path)

		q := r.URL.Query()
		require.Equal(t, "Snap", q.Get("cmd"))
		require.Equal(t, "0", q.Get("channel"))
		require.Equal(t, "12345", q.Get("rs"))
		require.Equal(t, "tok", q.Get("token"))

		_, _ = w.Write(jpeg)
	})

	data, err := client.Snap(context.Background(), "tok", "12345")
	require.NoError(t, err)
	require.Equal(t, jpeg, data)
}

func TestVideoClipURLs(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {})

	urls := client.VideoClipURLs("/mnt/sd/Mp4Record/2026-08-28/RecM01_20260828_101500.mp4", "tok")

	require.Equal(t, "RecM01_20260828_101500", urls.FileName)
	require.Equal(t, "RecM01_20260828_101500.mp4", urls.FileNameWithExtension)

	require.Contains(t, urls.DownloadPath, "cmd=Download")
	require.Contains(t, urls.PlaybackPath, "cmd=Playback")
	require.Contains(t, urls.DownloadURL, "token=tok")
	require.Contains(t, urls.PlaybackURL, "token=tok")
	require.Contains(t, urls.DownloadURL, client.Endpoint())
}
