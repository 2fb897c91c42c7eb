package telemetry

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/threat-shooter/config"
	"github.com/lixenwraith/threat-shooter/event"
)

func TestInfluxRecorder_WritesSessionPoint(t *testing.T) {
	var mu sync.Mutex
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v2/write" {
			b, _ := io.ReadAll(r.Body)
			mu.Lock()
			bodies = append(bodies, string(b))
			mu.Unlock()
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := influxdb2.NewClientWithOptions(srv.URL, "token", influxdb2.DefaultOptions().SetBatchSize(1))
	rec := newInfluxRecorder(client, "org", "sessions", zerolog.Nop())
	rec.Record(&event.GameOverPayload{
		UserID:     "u1",
		Time:       65 * time.Second,
		Kills:      3,
		Difficulty: 2,
		Speed:      4,
	})
	rec.Record(nil)
	rec.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, bodies, 1)
	line := strings.TrimSpace(bodies[0])
	assert.True(t, strings.HasPrefix(line, "session,"), line)
	assert.Contains(t, line, "user=u1")
	assert.Contains(t, line, "difficulty=2")
	assert.Contains(t, line, "kills=3i")
	assert.Contains(t, line, "time_ms=65000i")
}

func TestNewInfluxRecorder_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewInfluxRecorder(config.InfluxConfig{URL: srv.URL, Org: "o", Bucket: "b"}, zerolog.Nop())
	assert.Error(t, err)
}

func TestNopRecorder(t *testing.T) {
	var r SessionRecorder = NopRecorder{}
	r.Record(&event.GameOverPayload{})
	r.Close()
}
