package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRTDB mimics the Realtime Database REST surface over a flat node map.
func fakeRTDB(t *testing.T, nodes map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		switch r.Method {
		case http.MethodGet:
			if body, ok := nodes[path]; ok {
				_, _ = w.Write([]byte(body))
				return
			}
			_, _ = w.Write([]byte("null"))
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"name":"-generated-key"}`))
		case http.MethodPatch:
			_, _ = w.Write([]byte(`{}`))
		case http.MethodDelete:
			_, _ = w.Write([]byte("null"))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
}

func TestRTDBFetchAll(t *testing.T) {
	srv := fakeRTDB(t, map[string]string{
		"/users.json": `{"k1":{"full_name":"Amina"},"k2":{"full_name":"Omar"}}`,
	})
	defer srv.Close()

	client, err := NewRTDB(srv.URL)
	require.NoError(t, err)

	records, err := client.FetchAll(context.Background(), "users")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	var record map[string]string
	require.NoError(t, json.Unmarshal(records["k1"], &record))
	assert.Equal(t, "Amina", record["full_name"])
}

func TestRTDBFetchAllEmptySubtree(t *testing.T) {
	srv := fakeRTDB(t, nil)
	defer srv.Close()

	client, err := NewRTDB(srv.URL)
	require.NoError(t, err)

	records, err := client.FetchAll(context.Background(), "users")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestRTDBFetchOneAbsent(t *testing.T) {
	srv := fakeRTDB(t, nil)
	defer srv.Close()

	client, err := NewRTDB(srv.URL)
	require.NoError(t, err)

	raw, err := client.FetchOne(context.Background(), "users/missing")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestRTDBCreate(t *testing.T) {
	srv := fakeRTDB(t, nil)
	defer srv.Close()

	client, err := NewRTDB(srv.URL)
	require.NoError(t, err)

	key, err := client.Create(context.Background(), "users", map[string]string{"full_name": "Amina"})
	require.NoError(t, err)
	assert.Equal(t, "-generated-key", key)
}

func TestRTDBCreateUnserializable(t *testing.T) {
	srv := fakeRTDB(t, nil)
	defer srv.Close()

	client, err := NewRTDB(srv.URL)
	require.NoError(t, err)

	_, err = client.Create(context.Background(), "users", map[string]any{"bad": func() {}})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestRTDBUpdateChecksExistence(t *testing.T) {
	srv := fakeRTDB(t, map[string]string{
		"/users/k1.json": `{"status":"Pending"}`,
	})
	defer srv.Close()

	client, err := NewRTDB(srv.URL)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, client.Update(ctx, "users/k1", map[string]any{"status": "Approved"}))

	err = client.Update(ctx, "users/absent", map[string]any{"status": "Approved"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRTDBDeleteIdempotent(t *testing.T) {
	srv := fakeRTDB(t, nil)
	defer srv.Close()

	client, err := NewRTDB(srv.URL)
	require.NoError(t, err)

	// The path never existed; delete still succeeds.
	assert.NoError(t, client.Delete(context.Background(), "users/never-there"))
}

func TestRTDBUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewRTDB(srv.URL)
	require.NoError(t, err)

	_, err = client.FetchAll(context.Background(), "users")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRTDBUnreachableHost(t *testing.T) {
	// A server that is already closed refuses connections.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, err := NewRTDB(url)
	require.NoError(t, err)

	_, err = client.FetchAll(context.Background(), "users")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewRTDBInvalidURL(t *testing.T) {
	_, err := NewRTDB("not a url")
	assert.Error(t, err)

	_, err = NewRTDB("")
	assert.Error(t, err)
}

func TestRTDBAuthToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.URL.Query().Get("auth")
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	client, err := NewRTDB(srv.URL, WithAuthToken("secret-token"))
	require.NoError(t, err)

	_, err = client.FetchAll(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, "secret-token", gotAuth)
}
