package telemetry_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/go-item-tracker/internal/platform/telemetry"
)

// newRecorder returns metrics backed by a manual reader and a function that
// collects the int64 sum named name.
func newRecorder(t *testing.T) (*telemetry.Metrics, func(name string) []metricdata.DataPoint[int64]) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "item-tracker")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	collect := func(name string) []metricdata.DataPoint[int64] {
		t.Helper()

		var rm metricdata.ResourceMetrics
		if err := reader.Collect(context.Background(), &rm); err != nil {
			t.Fatalf("Collect() error = %v", err)
		}
		for _, sm := range rm.ScopeMetrics {
			for _, m := range sm.Metrics {
				if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == name {
					return sum.DataPoints
				}
			}
		}
		return nil
	}
	return metrics, collect
}

func attr(dp metricdata.DataPoint[int64], key attribute.Key) string {
	v, _ := dp.Attributes.Value(key)
	return v.Emit()
}

func TestMetrics_NilReceiver(t *testing.T) {
	t.Parallel()

	var metrics *telemetry.Metrics
	metrics.RecordItemWarning(context.Background(), "note")
	metrics.RecordItemRejected(context.Background())
	metrics.RecordServerRequest(context.Background(), "GET", "/health/live", 200, time.Millisecond)
}

func TestMetrics_RecordServerRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status     int
		wantResult string
	}{
		{status: 200, wantResult: "success"},
		{status: 304, wantResult: "success"},
		{status: 404, wantResult: "error"},
		{status: 502, wantResult: "error"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			t.Parallel()

			metrics, collect := newRecorder(t)
			metrics.RecordServerRequest(context.Background(), "GET", "/api/admin/items/{id}", tt.status, 20*time.Millisecond)

			points := collect("http.server.request.total")
			if len(points) != 1 || points[0].Value != 1 {
				t.Fatalf("http.server.request.total = %+v, want one point of 1", points)
			}
			if got := attr(points[0], telemetry.AttrHTTPRoute); got != "/api/admin/items/{id}" {
				t.Errorf("route = %q, want the pattern", got)
			}
			if got := attr(points[0], telemetry.AttrResult); got != tt.wantResult {
				t.Errorf("result = %q, want %q", got, tt.wantResult)
			}
		})
	}
}

func TestMetrics_ItemCounters(t *testing.T) {
	t.Parallel()

	metrics, collect := newRecorder(t)
	ctx := context.Background()

	metrics.RecordItemWarning(ctx, "daily_price")
	metrics.RecordItemWarning(ctx, "daily_price")
	metrics.RecordItemWarning(ctx, "note")
	metrics.RecordItemRejected(ctx)

	byField := map[string]int64{}
	for _, dp := range collect("item.projection.warnings") {
		byField[attr(dp, telemetry.AttrItemField)] = dp.Value
	}
	if byField["daily_price"] != 2 || byField["note"] != 1 {
		t.Errorf("warnings by field = %v, want daily_price:2 note:1", byField)
	}

	rejected := collect("item.projection.rejected")
	if len(rejected) != 1 || rejected[0].Value != 1 {
		t.Errorf("item.projection.rejected = %+v, want one point of 1", rejected)
	}
}
