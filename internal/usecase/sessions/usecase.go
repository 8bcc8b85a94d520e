// Package sessions owns the authentication lease against one camera: login,
// logout, single-flight token renewal and the defensive keepalive cycle.
package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
	"github.com/apocaliss92/reolink-osd-sync/internal/reolink"
	"github.com/apocaliss92/reolink-osd-sync/pkg/camerrors"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
)

// Transport issues raw command batches; an empty token selects credential
// auth. Implemented by the reolink client.
type Transport interface {
	Do(ctx context.Context, cmds []reolink.Command, token string) (reolink.Results, error)
	Get(ctx context.Context, query url.Values, token string) ([]byte, error)
}

var (
	ErrSessionsUseCase = camerrors.CreateCameraError("SessionsUseCase")

	errMissingLoginResult = errors.New("login response missing Login result")
	errMalformedLogin     = errors.New("login response carries no token lease")
)

// AuthError covers rejected credentials and malformed handshake responses.
type AuthError struct {
	Cam camerrors.InternalError
}

func (e AuthError) Error() string {
	return e.Cam.Error()
}

func (e AuthError) Wrap(call, function string, err error) error {
	_ = e.Cam.Wrap(call, function, err)
	e.Cam.Message = "camera authentication failed"

	return e
}

// loginCall is one in-flight login shared by every concurrent caller.
type loginCall struct {
	done  chan struct{}
	token string
	err   error
}

// UseCase -.
type UseCase struct {
	transport Transport
	cameraID  string
	log       logger.Interface

	mu       sync.Mutex
	session  entity.Session
	inflight *loginCall

	stopKeepalive chan struct{}
	keepaliveOnce sync.Once
	wg            sync.WaitGroup
}

// New -.
func New(transport Transport, cameraID string, log logger.Interface) *UseCase {
	return &UseCase{
		transport:     transport,
		cameraID:      cameraID,
		log:           log,
		stopKeepalive: make(chan struct{}),
	}
}

// EnsureValidAuth returns a token usable for the next request. A held,
// unexpired token is returned as-is and never traded for a fresh login.
// While a login is in flight, callers block on that attempt and share its
// outcome rather than issuing a second one.
func (uc *UseCase) EnsureValidAuth(ctx context.Context) (string, error) {
	uc.mu.Lock()

	if uc.session.TokenValid(time.Now()) {
		token := uc.session.Token
		uc.mu.Unlock()

		return token, nil
	}

	if uc.inflight != nil {
		call := uc.inflight
		uc.mu.Unlock()

		select {
		case <-call.done:
			return call.token, call.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	call := &loginCall{done: make(chan struct{})}
	uc.inflight = call
	uc.mu.Unlock()

	token, err := uc.login(ctx)

	call.token, call.err = token, err
	close(call.done)

	uc.mu.Lock()
	uc.inflight = nil
	uc.mu.Unlock()

	return token, err
}

// login exchanges credentials for a token lease in a single request.
func (uc *UseCase) login(ctx context.Context) (string, error) {
	// Credentials ride the query string (token absent), never the body.
	cmds := []reolink.Command{{Cmd: reolink.CmdLogin, Action: 0}}

	results, err := uc.transport.Do(ctx, cmds, "")
	if err != nil {
		loginFailures.WithLabelValues(uc.cameraID).Inc()

		return "", err
	}

	res, ok := results.Find(reolink.CmdLogin)
	if !ok {
		loginFailures.WithLabelValues(uc.cameraID).Inc()

		return "", AuthError{Cam: ErrSessionsUseCase}.Wrap("login", "results.Find", errMissingLoginResult)
	}

	if cmdErr := res.Err(); cmdErr != nil {
		loginFailures.WithLabelValues(uc.cameraID).Inc()

		return "", AuthError{Cam: ErrSessionsUseCase}.Wrap("login", "device.Login", cmdErr)
	}

	var value reolink.TokenValue
	if err := json.Unmarshal(res.Value, &value); err != nil {
		loginFailures.WithLabelValues(uc.cameraID).Inc()

		return "", AuthError{Cam: ErrSessionsUseCase}.Wrap("login", "json.Unmarshal", err)
	}

	if value.Token.Name == "" || value.Token.LeaseTime <= 0 {
		loginFailures.WithLabelValues(uc.cameraID).Inc()

		return "", AuthError{Cam: ErrSessionsUseCase}.Wrap("login", "token lease", errMalformedLogin)
	}

	uc.mu.Lock()
	uc.session = entity.Session{
		Token:       value.Token.Name,
		LeaseExpiry: time.Now().Add(time.Duration(value.Token.LeaseTime) * time.Second),
	}
	uc.mu.Unlock()

	logins.WithLabelValues(uc.cameraID).Inc()

	return value.Token.Name, nil
}

// Logout invalidates the token server-side, best effort. Local state is
// always cleared: the caller must never keep a token it no longer trusts.
func (uc *UseCase) Logout(ctx context.Context) error {
	uc.mu.Lock()
	token := uc.session.Token
	uc.session = entity.Session{}
	uc.mu.Unlock()

	if token == "" {
		return nil
	}

	cmds := []reolink.Command{{Cmd: reolink.CmdLogout, Action: 0}}

	_, err := uc.transport.Do(ctx, cmds, token)

	return err
}

// Do sends a command batch decorated with the current auth. Errors from
// EnsureValidAuth propagate to the caller; this is the synchronous request
// path, not the keepalive boundary.
func (uc *UseCase) Do(ctx context.Context, cmds []reolink.Command) (reolink.Results, error) {
	token, err := uc.EnsureValidAuth(ctx)
	if err != nil {
		return nil, err
	}

	return uc.transport.Do(ctx, cmds, token)
}

// Get sends a query-only call decorated with the current auth.
func (uc *UseCase) Get(ctx context.Context, query url.Values) ([]byte, error) {
	token, err := uc.EnsureValidAuth(ctx)
	if err != nil {
		return nil, err
	}

	return uc.transport.Get(ctx, query, token)
}

// Token returns the current token after ensuring it is valid; used when a
// URL has to embed the token rather than pass it per-request.
func (uc *UseCase) Token(ctx context.Context) (string, error) {
	return uc.EnsureValidAuth(ctx)
}

// StartKeepalive launches the defensive refresh cycle: every interval the
// session is logged out and back in unconditionally, because devices may
// silently invalidate tokens server-side before lease expiry. Errors here
// are logged and swallowed; the next cycle retries.
func (uc *UseCase) StartKeepalive(interval time.Duration) {
	uc.wg.Add(1)

	go func() {
		defer uc.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-uc.stopKeepalive:
				return
			case <-ticker.C:
				uc.refresh()
			}
		}
	}()
}

func (uc *UseCase) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), keepaliveTimeout)
	defer cancel()

	if err := uc.Logout(ctx); err != nil {
		uc.log.Warn("sessions - %s - keepalive logout: %s", uc.cameraID, err.Error())
	}

	if _, err := uc.EnsureValidAuth(ctx); err != nil {
		uc.log.Warn("sessions - %s - keepalive login: %s", uc.cameraID, err.Error())
	}
}

// StopKeepalive stops the refresh cycle and waits for it to exit.
func (uc *UseCase) StopKeepalive() {
	uc.keepaliveOnce.Do(func() {
		close(uc.stopKeepalive)
	})
	uc.wg.Wait()
}

const keepaliveTimeout = 30 * time.Second
