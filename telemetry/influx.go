package telemetry

import (
	"context"
	"fmt"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxdb2_api "github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/threat-shooter/config"
	"github.com/lixenwraith/threat-shooter/core"
	"github.com/lixenwraith/threat-shooter/event"
)

// SessionRecorder stores finished session summaries
type SessionRecorder interface {
	Record(summary *event.GameOverPayload)
	Close()
}

// NopRecorder discards summaries
type NopRecorder struct{}

func (NopRecorder) Record(*event.GameOverPayload) {}
func (NopRecorder) Close()                        {}

// InfluxRecorder writes one "session" point per finished game through a non-blocking WriteAPI
type InfluxRecorder struct {
	client influxdb2.Client
	writer influxdb2_api.WriteAPI
	log    zerolog.Logger
}

// NewInfluxRecorder connects to InfluxDB and validates the connection health
func NewInfluxRecorder(cfg config.InfluxConfig, log zerolog.Logger) (*InfluxRecorder, error) {
	client := influxdb2.NewClientWithOptions(
		cfg.URL,
		cfg.Token,
		influxdb2.DefaultOptions().
			SetBatchSize(20).
			SetFlushInterval(1000),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	running, err := client.Ping(ctx)
	if err != nil || !running {
		client.Close()
		if err == nil {
			err = fmt.Errorf("server not ready")
		}
		return nil, fmt.Errorf("failed to reach influxdb at %s: %w", cfg.URL, err)
	}

	return newInfluxRecorder(client, cfg.Org, cfg.Bucket, log), nil
}

func newInfluxRecorder(client influxdb2.Client, org, bucket string, log zerolog.Logger) *InfluxRecorder {
	r := &InfluxRecorder{
		client: client,
		writer: client.WriteAPI(org, bucket),
		log:    log.With().Str("component", "influx").Logger(),
	}

	errorsCh := r.writer.Errors()
	core.Go(func() {
		for writeErr := range errorsCh {
			r.log.Error().Err(writeErr).Msg("error sending data to influxdb")
		}
	})
	return r
}

// Record queues a session point
func (r *InfluxRecorder) Record(s *event.GameOverPayload) {
	if s == nil {
		return
	}
	user := s.UserID
	if user == "" {
		user = "anonymous"
	}
	p := influxdb2.NewPointWithMeasurement("session").
		AddTag("user", user).
		AddTag("difficulty", strconv.FormatFloat(s.Difficulty, 'f', -1, 64)).
		AddField("time_ms", s.Time.Milliseconds()).
		AddField("kills", s.Kills).
		AddField("speed", s.Speed).
		SetTime(time.Now())
	r.writer.WritePoint(p)
	r.log.Debug().Str("user", user).Int("kills", s.Kills).Msg("session queued")
}

// Close flushes pending points and closes the client
func (r *InfluxRecorder) Close() {
	r.writer.Flush()
	r.client.Close()
}
