package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrItemField   = attribute.Key("item.field")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// ItemWarnings counts non-fatal field problems found while projecting
	// items, labeled by item field.
	ItemWarnings metric.Int64Counter
	// ItemRejected counts items dropped from a listing because a required
	// field was missing or malformed.
	ItemRejected metric.Int64Counter
}

// RecordServerRequest records the duration and outcome of an inbound request.
// route is the matched route pattern so that item IDs do not become label
// values. Safe to call on a nil receiver.
func (m *Metrics) RecordServerRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}

	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatus.Int(status),
		AttrResult.String(result),
	)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}

// RecordItemWarning increments the warning counter for field. Safe to call
// on a nil receiver.
func (m *Metrics) RecordItemWarning(ctx context.Context, field string) {
	if m == nil || m.ItemWarnings == nil {
		return
	}
	m.ItemWarnings.Add(ctx, 1, metric.WithAttributes(AttrItemField.String(field)))
}

// RecordItemRejected increments the rejected item counter. Safe to call on a
// nil receiver.
func (m *Metrics) RecordItemRejected(ctx context.Context) {
	if m == nil || m.ItemRejected == nil {
		return
	}
	m.ItemRejected.Add(ctx, 1)
}

// NewMetrics registers the service's instruments on a meter named
// serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	b := &instruments{meter: mp.Meter(serviceName)}

	m := &Metrics{
		ServerRequestDuration: b.seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    b.counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: b.seconds("http.client.request.duration", "Duration of calls to the Notion API"),
		ClientRequestTotal:    b.counter("http.client.request.total", "Calls to the Notion API", "{request}"),
		ItemWarnings:          b.counter("item.projection.warnings", "Non-fatal field problems found while projecting items", "{warning}"),
		ItemRejected:          b.counter("item.projection.rejected", "Items dropped because a required field was invalid", "{item}"),
	}
	if b.err != nil {
		return nil, b.err
	}
	return m, nil
}

// instruments creates instruments on meter and collects every failure.
type instruments struct {
	meter metric.Meter
	err   error
}

func (b *instruments) seconds(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

func (b *instruments) counter(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}
