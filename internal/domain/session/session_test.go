package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"managesalary/internal/infrastructure/api"
)

type mockRefresher struct {
	token string
	err   error
	calls int
}

func (m *mockRefresher) RefreshToken(ctx context.Context) (string, error) {
	m.calls++
	return m.token, m.err
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.False(t, store.IsLogged(), "fresh store must be logged out")

	require.NoError(t, store.SetToken("tok-123"))
	require.True(t, store.IsLogged())

	// A second store over the same file sees the persisted token.
	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	require.Equal(t, "tok-123", reloaded.Token())

	require.NoError(t, store.Logout())
	require.Equal(t, "", store.Token())

	reloaded, err = NewFileStore(path)
	require.NoError(t, err)
	require.False(t, reloaded.IsLogged(), "logout must persist")
}

func TestManager_RefreshReplacesToken(t *testing.T) {
	store := NewMemoryStore("old-token")
	refresher := &mockRefresher{token: "new-token"}

	NewManager(store, refresher, quietLogger()).Refresh(context.Background())

	require.Equal(t, 1, refresher.calls)
	require.Equal(t, "new-token", store.Token())
}

func TestManager_SkipsWhenLoggedOut(t *testing.T) {
	store := NewMemoryStore("")
	refresher := &mockRefresher{token: "unused"}

	NewManager(store, refresher, quietLogger()).Refresh(context.Background())

	require.Equal(t, 0, refresher.calls, "no refresh without a session")
	require.False(t, store.IsLogged())
}

func TestManager_UnauthorizedClearsSession(t *testing.T) {
	store := NewMemoryStore("dead-token")
	refresher := &mockRefresher{err: &api.StatusError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Error fetching: token expired",
	}}

	NewManager(store, refresher, quietLogger()).Refresh(context.Background())

	require.False(t, store.IsLogged(), "401 on refresh must log out")
}

func TestManager_TransportFailureKeepsToken(t *testing.T) {
	store := NewMemoryStore("maybe-valid")
	refresher := &mockRefresher{err: context.DeadlineExceeded}

	NewManager(store, refresher, quietLogger()).Refresh(context.Background())

	require.Equal(t, "maybe-valid", store.Token(), "network failure must not destroy the session")
}

func TestManager_ServerErrorKeepsToken(t *testing.T) {
	store := NewMemoryStore("maybe-valid")
	refresher := &mockRefresher{err: &api.StatusError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Error fetching: boom",
	}}

	NewManager(store, refresher, quietLogger()).Refresh(context.Background())

	require.True(t, store.IsLogged(), "a 500 is not evidence the token is dead")
}

func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func TestParseClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	token := makeToken(t, map[string]any{
		"sub":   "user-1",
		"email": "a@b.test",
		"exp":   exp,
	})

	claims, err := ParseClaims(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "a@b.test", claims.Email)
	require.Equal(t, exp, claims.ExpiresAt.Unix())
}

func TestParseClaims_Empty(t *testing.T) {
	_, err := ParseClaims("")
	require.Error(t, err)
}

func TestParseClaims_Garbage(t *testing.T) {
	_, err := ParseClaims("not-a-jwt")
	require.Error(t, err)
}
