package api

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/golog"
	"github.com/stretchr/testify/assert"
)

func discardLogger() logwrap.Logger {
	return logwrap.New(golog.Wrap(log.New(io.Discard, "", 0)))
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{BaseURL: server.URL, Logger: discardLogger()})
	assert.NoError(t, err)

	return client, server
}

func TestClient_Call(t *testing.T) {
	t.Run("a successful response is decoded into the output value", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"greeting":"hello"}`))
		}))

		out := struct {
			Greeting string `json:"greeting"`
		}{}

		assert.NoError(t, client.call(context.Background(), http.MethodGet, "/", nil, nil, &out))
		assert.Equal(t, "hello", out.Greeting)
	})

	t.Run("every request carries an X-Request-Id and a JSON accept header", func(t *testing.T) {
		var requestId string
		var accept string

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestId = r.Header.Get("X-Request-Id")
			accept = r.Header.Get("Accept")
		}))

		assert.NoError(t, client.call(context.Background(), http.MethodGet, "/", nil, nil, nil))

		_, err := uuid.Parse(requestId)
		assert.NoError(t, err)
		assert.Equal(t, "application/json", accept)
	})

	t.Run("a 4xx rejection surfaces the server's message verbatim", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message":"home name already taken"}`))
		}))

		err := client.call(context.Background(), http.MethodPost, "/", nil, nil, nil)

		businessErr := BusinessError{}
		assert.ErrorAs(t, err, &businessErr)
		assert.Equal(t, http.StatusConflict, businessErr.StatusCode)
		assert.Equal(t, "home name already taken", businessErr.Message)
	})

	t.Run("a 4xx without a message falls back to the status text", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))

		err := client.call(context.Background(), http.MethodGet, "/", nil, nil, nil)

		businessErr := BusinessError{}
		assert.ErrorAs(t, err, &businessErr)
		assert.Equal(t, http.StatusText(http.StatusForbidden), businessErr.Message)
	})

	t.Run("a 5xx response carries no message and no retry", func(t *testing.T) {
		calls := 0

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadGateway)
		}))

		err := client.call(context.Background(), http.MethodGet, "/", nil, nil, nil)

		serverErr := ServerError{}
		assert.ErrorAs(t, err, &serverErr)
		assert.Equal(t, http.StatusBadGateway, serverErr.StatusCode)
		assert.Equal(t, 1, calls)
	})

	t.Run("an unreachable server yields a transport error", func(t *testing.T) {
		client, server := newTestClient(t, http.NewServeMux())
		server.Close()

		err := client.call(context.Background(), http.MethodGet, "/", nil, nil, nil)

		transportErr := TransportError{}
		assert.ErrorAs(t, err, &transportErr)
		assert.Error(t, transportErr.Unwrap())
	})
}

func TestClient_SessionCookie(t *testing.T) {
	t.Run("reports the access token cookie once the server has set one", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: "opaque", Path: "/"})
		}))

		_, found := client.SessionCookie()
		assert.False(t, found)

		assert.NoError(t, client.call(context.Background(), http.MethodPost, "/auth/login", nil, nil, nil))

		cookie, found := client.SessionCookie()
		assert.True(t, found)
		assert.Equal(t, "opaque", cookie.Value)
	})
}
