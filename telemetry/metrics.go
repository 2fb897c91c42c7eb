// Package telemetry exports game metrics over OpenTelemetry and session results to InfluxDB
package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/threat-shooter/status"
)

const instrumentationName = "github.com/lixenwraith/threat-shooter/telemetry"

// Meter returns the meter from the global OTel provider (no-op if not configured)
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// RegisterMetrics exposes every status registry value as an observable gauge
// Integers and booleans share one gauge, floats another, distinguished by the "metric" attribute
func RegisterMetrics(m metric.Meter, reg *status.Registry) (metric.Registration, error) {
	ints, err := m.Int64ObservableGauge(
		"shooter.status.int",
		metric.WithDescription("Integer and boolean game metrics"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating int gauge: %w", err)
	}

	floats, err := m.Float64ObservableGauge(
		"shooter.status.float",
		metric.WithDescription("Floating point game metrics"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating float gauge: %w", err)
	}

	registration, err := m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			reg.Ints.Range(func(k string, v *atomic.Int64) {
				o.ObserveInt64(ints, v.Load(), metric.WithAttributes(attribute.String("metric", k)))
			})
			reg.Bools.Range(func(k string, v *atomic.Bool) {
				var n int64
				if v.Load() {
					n = 1
				}
				o.ObserveInt64(ints, n, metric.WithAttributes(attribute.String("metric", k)))
			})
			reg.Floats.Range(func(k string, v *status.AtomicFloat) {
				o.ObserveFloat64(floats, v.Get(), metric.WithAttributes(attribute.String("metric", k)))
			})
			return nil
		},
		ints, floats,
	)
	if err != nil {
		return nil, fmt.Errorf("registering status callback: %w", err)
	}
	return registration, nil
}
