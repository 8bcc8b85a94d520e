package sessions_test

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/apocaliss92/reolink-osd-sync/internal/mocks"
	"github.com/apocaliss92/reolink-osd-sync/internal/reolink"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/sessions"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
)

func initSessionsTest(t *testing.T) (*sessions.UseCase, *mocks.MockTransport) {
	t.Helper()

	mockCtl := gomock.NewController(t)
	transport := mocks.NewMockTransport(mockCtl)
	uc := sessions.New(transport, "cam-1", logger.New("error"))

	return uc, transport
}

func loginResults(token string, leaseTime int) reolink.Results {
	value, _ := json.Marshal(reolink.TokenValue{
		Token: reolink.TokenInfo{Name: token, LeaseTime: leaseTime},
	})

	return reolink.Results{{Cmd: reolink.CmdLogin, Code: 0, Value: value}}
}

func TestEnsureValidAuthSingleFlight(t *testing.T) {
	t.Parallel()

	uc, transport := initSessionsTest(t)

	var loginCount int32

	// Concurrent callers must share one login, never start their own.
	transport.EXPECT().
		Do(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _ []reolink.Command, _ string) (reolink.Results, error) {
			atomic.AddInt32(&loginCount, 1)
			time.Sleep(50 * time.Millisecond)

			return loginResults("tok-1", 3600), nil
		}).
		Times(1)

	const callers = 10

	var wg sync.WaitGroup

	tokens := make([]string, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			tokens[i], errs[i] = uc.EnsureValidAuth(context.Background())
		}(i)
	}

	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, "tok-1", tokens[i])
	}

	require.Equal(t, int32(1), atomic.LoadInt32(&loginCount))
}

func TestEnsureValidAuthReusesHeldToken(t *testing.T) {
	t.Parallel()

	uc, transport := initSessionsTest(t)

	transport.EXPECT().
		Do(gomock.Any(), gomock.Any(), "").
		Return(loginResults("tok-1", 3600), nil).
		Times(1)

	token, err := uc.EnsureValidAuth(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)

	// A held, unexpired token is never traded for a fresh login.
	token, err = uc.EnsureValidAuth(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
}

func TestLogoutClearsSessionAndNotifiesDevice(t *testing.T) {
	t.Parallel()

	uc, transport := initSessionsTest(t)

	gomock.InOrder(
		transport.EXPECT().
			Do(gomock.Any(), gomock.Any(), "").
			Return(loginResults("tok-1", 3600), nil),
		transport.EXPECT().
			Do(gomock.Any(), gomock.Any(), "tok-1").
			DoAndReturn(func(_ context.Context, cmds []reolink.Command, _ string) (reolink.Results, error) {
				require.Len(t, cmds, 1)
				require.Equal(t, reolink.CmdLogout, cmds[0].Cmd)

				return reolink.Results{{Cmd: reolink.CmdLogout, Code: 0}}, nil
			}),
		transport.EXPECT().
			Do(gomock.Any(), gomock.Any(), "").
			Return(loginResults("tok-2", 3600), nil),
	)

	_, err := uc.EnsureValidAuth(context.Background())
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background()))

	// The cleared session forces a fresh login on next use.
	token, err := uc.EnsureValidAuth(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok-2", token)
}

func TestLogoutWithoutSessionIsNoop(t *testing.T) {
	t.Parallel()

	uc, _ := initSessionsTest(t)

	// No transport expectations: nothing to invalidate.
	require.NoError(t, uc.Logout(context.Background()))
}

func TestLoginRejectsMalformedResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		results reolink.Results
	}{
		{
			name:    "missing Login result",
			results: reolink.Results{{Cmd: reolink.CmdGetOsd, Code: 0}},
		},
		{
			name: "device rejects credentials",
			results: reolink.Results{{
				Cmd:   reolink.CmdLogin,
				Code:  1,
				Error: &reolink.CmdError{RspCode: -7, Detail: "login failed"},
			}},
		},
		{
			name:    "unparseable token payload",
			results: reolink.Results{{Cmd: reolink.CmdLogin, Code: 0, Value: json.RawMessage(`"nope"`)}},
		},
		{
			name:    "empty token lease",
			results: loginResults("", 0),
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc, transport := initSessionsTest(t)

			transport.EXPECT().
				Do(gomock.Any(), gomock.Any(), "").
				Return(tc.results, nil)

			_, err := uc.EnsureValidAuth(context.Background())
			require.Error(t, err)

			var authErr sessions.AuthError
			require.ErrorAs(t, err, &authErr)
		})
	}
}

func TestDoDecoratesBatchWithToken(t *testing.T) {
	t.Parallel()

	uc, transport := initSessionsTest(t)

	cmds := []reolink.Command{{Cmd: reolink.CmdGetOsd, Action: 1}}

	gomock.InOrder(
		transport.EXPECT().
			Do(gomock.Any(), gomock.Any(), "").
			Return(loginResults("tok-1", 3600), nil),
		transport.EXPECT().
			Do(gomock.Any(), cmds, "tok-1").
			Return(reolink.Results{{Cmd: reolink.CmdGetOsd, Code: 0, Value: json.RawMessage(`{}`)}}, nil),
	)

	results, err := uc.Do(context.Background(), cmds)
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestKeepaliveCyclesLogoutAndLogin(t *testing.T) {
	t.Parallel()

	uc, transport := initSessionsTest(t)

	var logins, logouts int32

	transport.EXPECT().
		Do(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmds []reolink.Command, _ string) (reolink.Results, error) {
			switch cmds[0].Cmd {
			case reolink.CmdLogin:
				atomic.AddInt32(&logins, 1)

				return loginResults("tok", 3600), nil
			case reolink.CmdLogout:
				atomic.AddInt32(&logouts, 1)

				return reolink.Results{{Cmd: reolink.CmdLogout, Code: 0}}, nil
			default:
				return reolink.Results{}, nil
			}
		}).
		AnyTimes()

	// Seed a session so the first keepalive cycle has a token to revoke.
	_, err := uc.EnsureValidAuth(context.Background())
	require.NoError(t, err)

	uc.StartKeepalive(20 * time.Millisecond)

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&logouts) >= 2 && atomic.LoadInt32(&logins) >= 3
	}, time.Second, 5*time.Millisecond)

	uc.StopKeepalive()

	// Stop is idempotent and halts the cycle.
	uc.StopKeepalive()

	settledLogins := atomic.LoadInt32(&logins)

	time.Sleep(60 * time.Millisecond)
	require.Equal(t, settledLogins, atomic.LoadInt32(&logins))
}
