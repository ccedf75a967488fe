package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/niwa/internal/core"
)

func TestObserve(t *testing.T) {
	r := New()
	r.Observe(
		core.Event{Kind: core.EventMoved},
		core.Event{Kind: core.EventMoved},
		core.Event{Kind: core.EventMoveRejected, Detail: "north"},
		core.Event{Kind: core.EventCast, Detail: "absorbed"},
		core.Event{Kind: core.EventCast, Detail: "edge"},
		core.Event{Kind: core.EventCleared, Detail: "01-first-light"},
		core.Event{Kind: core.EventLevelLoaded, Detail: "02-stepping-stones"},
	)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.moves.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.moves.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.casts.WithLabelValues("absorbed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.casts.WithLabelValues("edge")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.cleared.WithLabelValues("01-first-light")))
}

func TestSessions(t *testing.T) {
	r := New()
	r.SessionStarted()
	r.SessionStarted()
	r.SessionEnded()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.sessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.active))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.SessionStarted()
		r.Observe(core.Event{Kind: core.EventMoved})
		r.SessionEnded()
	})
}

func TestHandler(t *testing.T) {
	r := New()
	r.Observe(core.Event{Kind: core.EventCast, Detail: "terrain"})

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `niwa_casts_total{outcome="terrain"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestServeStopsOnCancel(t *testing.T) {
	r := New()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- r.Serve(ctx, "127.0.0.1:0", log.New(io.Discard))
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServeBadAddress(t *testing.T) {
	r := New()
	err := r.Serve(context.Background(), "not-an-address", log.New(io.Discard))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not-an-address"))
}
