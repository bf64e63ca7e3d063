package httpserver_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juristech/lexkit/pkg/httpserver"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServer(t *testing.T) {
	t.Parallel()

	t.Run("serves requests and stops on context cancel", func(t *testing.T) {
		t.Parallel()

		addr := freeAddr(t)
		srv := httpserver.New(httpserver.Config{Addr: addr, ShutdownTimeout: time.Second})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "ok")
			}))
		}()

		var resp *http.Response
		require.Eventually(t, func() bool {
			var err error
			resp, err = http.Get("http://" + addr + "/")
			return err == nil
		}, 2*time.Second, 20*time.Millisecond)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, "ok", string(body))

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("server did not stop after context cancel")
		}
	})

	t.Run("returns error when address is taken", func(t *testing.T) {
		t.Parallel()

		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer l.Close()

		srv := httpserver.New(httpserver.Config{Addr: l.Addr().String()})
		err = srv.Run(context.Background(), nil)
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})
}
