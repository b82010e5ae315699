package session

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const (
	meterName = "github.com/yaklabco/srcedit/pkg/session"

	metricSessionsTotal   = "srcedit.sessions.total"
	metricEditsApplied    = "srcedit.edits.applied.total"
	metricSessionDuration = "srcedit.session.duration.seconds"

	attrOutcome = "outcome"
)

// Session outcomes recorded on the sessions counter.
const (
	OutcomeChanged = "changed"
	OutcomeNoop    = "noop"
	OutcomeSkipped = "skipped"
	OutcomeError   = "error"
)

var durationBucketBoundaries = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// Metrics holds the OTel instruments for file sessions.
// A nil *Metrics records nothing.
type Metrics struct {
	sessionsTotal   metric.Int64Counter
	editsApplied    metric.Int64Counter
	sessionDuration metric.Float64Histogram
}

// NewMetrics creates session instruments from the given meter.
func NewMetrics(mt metric.Meter) (*Metrics, error) {
	sessions, err := mt.Int64Counter(metricSessionsTotal,
		metric.WithDescription("File sessions by outcome"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricSessionsTotal, err)
	}

	edits, err := mt.Int64Counter(metricEditsApplied,
		metric.WithDescription("Edits applied to source text"),
		metric.WithUnit("{edit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricEditsApplied, err)
	}

	duration, err := mt.Float64Histogram(metricSessionDuration,
		metric.WithDescription("File session duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricSessionDuration, err)
	}

	return &Metrics{
		sessionsTotal:   sessions,
		editsApplied:    edits,
		sessionDuration: duration,
	}, nil
}

// Record adds one finished session.
func (m *Metrics) Record(ctx context.Context, outcome string, applied int, duration time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String(attrOutcome, outcome))

	m.sessionsTotal.Add(ctx, 1, attrs)
	m.sessionDuration.Record(ctx, duration.Seconds(), attrs)
	if applied > 0 {
		m.editsApplied.Add(ctx, int64(applied))
	}
}

// Snapshot is a reading of the session instruments, cumulative since the
// collector was created.
type Snapshot struct {
	Sessions        map[string]int64 `json:"sessions"`
	EditsApplied    int64            `json:"editsApplied"`
	DurationSeconds float64          `json:"durationSeconds"`
}

// Total returns the number of sessions across all outcomes.
func (s Snapshot) Total() int64 {
	var n int64
	for _, v := range s.Sessions {
		n += v
	}
	return n
}

// Collector is an in-process meter provider with a manual reader, for
// reading the session instruments back at the end of a run.
type Collector struct {
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
	metrics  *Metrics
}

// NewCollector creates a collector and its instruments.
func NewCollector() (*Collector, error) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := NewMetrics(provider.Meter(meterName))
	if err != nil {
		return nil, err
	}
	return &Collector{reader: reader, provider: provider, metrics: m}, nil
}

// Metrics returns the instruments to install on a Session.
func (c *Collector) Metrics() *Metrics {
	return c.metrics
}

// Snapshot collects the current totals.
func (c *Collector) Snapshot(ctx context.Context) (Snapshot, error) {
	var rm metricdata.ResourceMetrics
	if err := c.reader.Collect(ctx, &rm); err != nil {
		return Snapshot{}, fmt.Errorf("collect metrics: %w", err)
	}

	snap := Snapshot{Sessions: make(map[string]int64)}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					switch m.Name {
					case metricSessionsTotal:
						outcome, _ := dp.Attributes.Value(attrOutcome)
						snap.Sessions[outcome.AsString()] += dp.Value
					case metricEditsApplied:
						snap.EditsApplied += dp.Value
					}
				}
			case metricdata.Histogram[float64]:
				if m.Name != metricSessionDuration {
					continue
				}
				for _, dp := range data.DataPoints {
					snap.DurationSeconds += dp.Sum
				}
			}
		}
	}
	return snap, nil
}

// Shutdown releases the meter provider.
func (c *Collector) Shutdown(ctx context.Context) error {
	if err := c.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown meter provider: %w", err)
	}
	return nil
}
