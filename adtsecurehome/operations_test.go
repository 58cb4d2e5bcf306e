package adtsecurehome

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture records what the mock server saw for one request.
type capture struct {
	method string
	path   string
	query  url.Values
}

// newCaptureServer responds with body and records every request.
func newCaptureServer(body string) (*httptest.Server, *[]capture) {
	var captures []capture

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captures = append(captures, capture{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
		})
		w.Write([]byte(body))
	}))

	return server, &captures
}

func TestLogin(t *testing.T) {
	t.Run("stores the issued token", func(t *testing.T) {
		server, captures := newCaptureServer(`{"status":"SUCCESS","token":"abc123"}`)
		defer server.Close()

		client := newTestClient(t, server.URL)

		result, err := client.Login(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "abc123", client.Token())
		assert.Equal(t, "abc123", result.Token())
		assert.Equal(t, "SUCCESS", result.Status())

		require.Len(t, *captures, 1)
		got := (*captures)[0]
		assert.Equal(t, http.MethodGet, got.method)
		assert.Equal(t, "/auth/login", got.path)
		assert.Equal(t, "user@example.com", got.query.Get("email"))
		assert.Equal(t, "hunter2", got.query.Get("password"))
	})

	t.Run("sends the standard parameters", func(t *testing.T) {
		server, captures := newCaptureServer(`{"status":"SUCCESS","token":"abc123"}`)
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.Login(context.Background())
		require.NoError(t, err)

		got := (*captures)[0].query
		for key, want := range stdParams {
			assert.Equal(t, want, got.Get(key), "standard parameter %q", key)
		}
	})

	t.Run("missing token is an error", func(t *testing.T) {
		server, _ := newCaptureServer(`{"status":"SUCCESS"}`)
		defer server.Close()

		client := newTestClient(t, server.URL)
		client.SetToken("")

		_, err := client.Login(context.Background())
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Contains(t, err.Error(), "token")
		assert.Empty(t, client.Token(), "a failed login must not store a token")
	})

	t.Run("rejected login does not store a token", func(t *testing.T) {
		server, _ := newCaptureServer(`{"status":"FAILED","token":"should-not-be-kept"}`)
		defer server.Close()

		client := newTestClient(t, server.URL)
		client.SetToken("")

		_, err := client.Login(context.Background())
		require.Error(t, err)
		assert.Empty(t, client.Token())
	})
}

func TestAuthenticatedGets(t *testing.T) {
	tests := []struct {
		name     string
		call     func(*Client, context.Context) (APIResponse, error)
		wantPath string
	}{
		{
			name:     "site notifications",
			call:     (*Client).SiteNotifications,
			wantPath: "/device/getSiteNotifications",
		},
		{
			name:     "sync info",
			call:     (*Client).GetSyncInfo,
			wantPath: "/device/getSyncInfo",
		},
		{
			name:     "state info",
			call:     (*Client).GetStateInfo,
			wantPath: "/device/getStateInfo",
		},
		{
			name:     "notification subscriptions",
			call:     (*Client).GetNotificationSubscriptions,
			wantPath: "/device/getNotificationSubscriptions",
		},
		{
			name:     "user preferences",
			call:     (*Client).GetUserPreferences,
			wantPath: "/user/getUserPreferences",
		},
		{
			name:     "security companies",
			call:     (*Client).GetSecurityCompanies,
			wantPath: "/security-companies/list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, captures := newCaptureServer(successBody)
			defer server.Close()

			client := newTestClient(t, server.URL)

			_, err := tt.call(client, context.Background())
			require.NoError(t, err)

			require.Len(t, *captures, 1)
			got := (*captures)[0]
			assert.Equal(t, http.MethodGet, got.method)
			assert.Equal(t, tt.wantPath, got.path)
			assert.Equal(t, "test-token", got.query.Get("token"))
		})
	}
}

func TestCheckAppVersion(t *testing.T) {
	server, captures := newCaptureServer(successBody)
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.CheckAppVersion(context.Background())
	require.NoError(t, err)

	got := (*captures)[0]
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/auth/checkAppVersion", got.path)
	assert.Equal(t, "test-token", got.query.Get("token"))
	assert.Equal(t, stdParams["imei"], got.query.Get("clientImei"))
}

func TestStoreGCMRegistrationID(t *testing.T) {
	server, captures := newCaptureServer(successBody)
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.StoreGCMRegistrationID(context.Background(), "gcm-registration-id")
	require.NoError(t, err)

	got := (*captures)[0]
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/user/storeGcmRegistrationId", got.path)
	assert.Equal(t, "gcm-registration-id", got.query.Get("gcmId"))
	assert.Equal(t, "test-token", got.query.Get("token"))
}

func TestSetUserPreference(t *testing.T) {
	t.Run("composes the preference name", func(t *testing.T) {
		server, captures := newCaptureServer(successBody)
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.SetUserPreference(context.Background(), "1", "2", 1234, StoreForArm)
		require.NoError(t, err)

		got := (*captures)[0]
		assert.Equal(t, http.MethodPost, got.method)
		assert.Equal(t, "/user/setUserPreference", got.path)
		assert.Equal(t, "site.1.partition.2.storeForArm", got.query.Get("name"))
		assert.Equal(t, "1", got.query.Get("siteId"))
		assert.Equal(t, "1234", got.query.Get("preference_value"))
		assert.Equal(t, "test-token", got.query.Get("token"))
	})

	t.Run("bypass selection", func(t *testing.T) {
		server, captures := newCaptureServer(successBody)
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.SetUserPreference(context.Background(), "17", "3", 9999, StoreForBypass)
		require.NoError(t, err)

		got := (*captures)[0]
		assert.Equal(t, "site.17.partition.3.storeForBypass", got.query.Get("name"))
	})

	t.Run("invalid selection fails before any request", func(t *testing.T) {
		server, captures := newCaptureServer(successBody)
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.SetUserPreference(context.Background(), "1", "2", 1234, StoreFor("Invalid"))
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Contains(t, err.Error(), "Arm or Bypass")
		assert.Empty(t, *captures, "invalid input must not produce an HTTP call")
	})
}

func TestArmSite(t *testing.T) {
	tests := []struct {
		name    string
		arm     bool
		wantArm string
	}{
		{name: "arm", arm: true, wantArm: "true"},
		{name: "disarm", arm: false, wantArm: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, captures := newCaptureServer(successBody)
			defer server.Close()

			client := newTestClient(t, server.URL)

			_, err := client.ArmSite(context.Background(), tt.arm, 1234, "2", "17")
			require.NoError(t, err)

			got := (*captures)[0]
			assert.Equal(t, http.MethodGet, got.method)
			assert.Equal(t, "/device/armSite", got.path)
			assert.Equal(t, tt.wantArm, got.query.Get("arm"))
			assert.Equal(t, "1234", got.query.Get("pin"))
			assert.Equal(t, "2", got.query.Get("partitionId"))
			assert.Equal(t, "17", got.query.Get("siteId"))
			assert.Equal(t, "test-token", got.query.Get("token"))
		})
	}
}

func TestNoParameterLeakageBetweenCalls(t *testing.T) {
	server, captures := newCaptureServer(successBody)
	defer server.Close()

	client := newTestClient(t, server.URL)

	// First call carries arm-specific parameters.
	_, err := client.ArmSite(context.Background(), true, 1234, "2", "17")
	require.NoError(t, err)

	// The follow-up call must not inherit any of them.
	_, err = client.SiteNotifications(context.Background())
	require.NoError(t, err)

	require.Len(t, *captures, 2)
	second := (*captures)[1].query
	for _, leaked := range []string{"arm", "pin", "partitionId", "siteId"} {
		assert.False(t, second.Has(leaked), "parameter %q leaked into the next call", leaked)
	}

	// The standard parameters are still present on both calls.
	for key := range stdParams {
		assert.True(t, second.Has(key), "standard parameter %q missing", key)
	}
}

func TestLoginTokenUsedBySubsequentCalls(t *testing.T) {
	server, captures := newCaptureServer(`{"status":"SUCCESS","token":"fresh-token"}`)
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.SetToken("")

	_, err := client.Login(context.Background())
	require.NoError(t, err)

	_, err = client.GetStateInfo(context.Background())
	require.NoError(t, err)

	require.Len(t, *captures, 2)
	assert.False(t, (*captures)[0].query.Has("token"), "login must not send a token")
	assert.Equal(t, "fresh-token", (*captures)[1].query.Get("token"))
}
