package session

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-client/internal/api"
	clienterrors "ats-client/internal/common/errors"
	"ats-client/internal/common/httpclient"
	"ats-client/internal/common/logger"
	"ats-client/internal/models"
)

const identityBody = `{"id": 7, "email": "jane@example.com", "full_name": "Jane Doe", "role": "candidate"}`

func createTestStore(t *testing.T, handler http.Handler) *Store {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logger.NewTestLogger(t)
	transport := httpclient.NewClient(server.URL, 5*time.Second, log)
	return NewStore(api.NewClient(transport, log), log)
}

func TestStore_StartsAbsent(t *testing.T) {
	store := createTestStore(t, http.NotFoundHandler())

	state, identity := store.Snapshot()
	assert.Equal(t, StateAbsent, state)
	assert.Nil(t, identity)
}

func TestStore_Login_Success(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"access_token": "tok-abc", "token_type": "bearer", "user": %s}`, identityBody)
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, identityBody)
	})
	store := createTestStore(t, mux)

	require.NoError(t, store.Login(context.Background(), "jane@example.com", "secret"))

	state, identity := store.Snapshot()
	assert.Equal(t, StateReady, state)
	require.NotNil(t, identity)
	assert.Equal(t, models.RoleCandidate, identity.Role)
	assert.Equal(t, "Jane Doe", identity.FullName)

	// Subsequent calls carry the token issued at login.
	require.NoError(t, store.Resume(context.Background()))
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestStore_Login_Failure(t *testing.T) {
	store := createTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail": "Incorrect email or password"}`)
	}))

	err := store.Login(context.Background(), "jane@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, clienterrors.HasCode(err, clienterrors.ErrCodeAuthentication))

	state, identity := store.Snapshot()
	assert.Equal(t, StateAbsent, state)
	assert.Nil(t, identity)
}

func TestStore_Login_InvalidCredentialsStayLocal(t *testing.T) {
	hits := 0
	store := createTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))

	err := store.Login(context.Background(), "not-an-email", "")
	require.Error(t, err)
	assert.True(t, clienterrors.HasCode(err, clienterrors.ErrCodeValidation))
	assert.Zero(t, hits)

	state, _ := store.Snapshot()
	assert.Equal(t, StateAbsent, state)
}

func TestStore_Logout(t *testing.T) {
	var lastAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"access_token": "tok-abc", "token_type": "bearer", "user": %s}`, identityBody)
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, identityBody)
	})
	store := createTestStore(t, mux)

	require.NoError(t, store.Login(context.Background(), "jane@example.com", "secret"))
	store.Logout()

	state, identity := store.Snapshot()
	assert.Equal(t, StateAbsent, state)
	assert.Nil(t, identity)

	// The transport token is gone too.
	_ = store.Resume(context.Background())
	assert.Empty(t, lastAuth)
}

func TestStore_Resume(t *testing.T) {
	t.Run("valid token restores identity", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, identityBody)
		})
		store := createTestStore(t, mux)

		require.NoError(t, store.Resume(context.Background()))
		state, identity := store.Snapshot()
		assert.Equal(t, StateReady, state)
		require.NotNil(t, identity)
		assert.Equal(t, 7, identity.ID)
	})

	t.Run("rejected token leaves the store absent", func(t *testing.T) {
		store := createTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"detail": "Could not validate credentials"}`)
		}))

		err := store.Resume(context.Background())
		require.Error(t, err)

		state, identity := store.Snapshot()
		assert.Equal(t, StateAbsent, state)
		assert.Nil(t, identity)
	})
}

func TestStore_ReloginReplacesIdentity(t *testing.T) {
	logins := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		logins++
		fmt.Fprintf(w, `{"access_token": "tok-%d", "token_type": "bearer",
			"user": {"id": %d, "email": "u%d@example.com", "full_name": "User %d", "role": "recruiter"}}`,
			logins, logins, logins, logins)
	})
	store := createTestStore(t, mux)

	require.NoError(t, store.Login(context.Background(), "u1@example.com", "secret"))
	_, first := store.Snapshot()

	require.NoError(t, store.Login(context.Background(), "u2@example.com", "secret"))
	_, second := store.Snapshot()

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, first.ID, "published identity must not be mutated by a later login")
}
