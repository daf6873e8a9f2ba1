package pprofserver_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/myrjola/wellcheck/internal/pprofserver"
	"github.com/myrjola/wellcheck/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	mux := http.NewServeMux()
	pprofserver.Handle(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "goroutine")
}

func TestLaunch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, pprofserver.Launch(ctx, "", testhelpers.NewLogger(io.Discard)), "empty addr disables")

	var logs bytes.Buffer
	require.NoError(t, pprofserver.Launch(ctx, "127.0.0.1:0", testhelpers.NewLogger(&logs)))
	match := regexp.MustCompile(`pprof_addr=(\S+)`).FindStringSubmatch(logs.String())
	require.Len(t, match, 2)

	client := http.Client{Timeout: time.Second}
	resp, err := client.Get("http://" + match[1] + "/debug/pprof/cmdline")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
