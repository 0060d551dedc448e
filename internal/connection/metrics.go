package connection

import (
	"log/slog"

	"github.com/hashicorp/go-metrics"
)

var (
	MetricConnectCount        = []string{"mcpi", "connection", "established", "count"}
	MetricConnectErrorCount   = []string{"mcpi", "connection", "error", "count"}
	MetricRequestCount        = []string{"mcpi", "request", "count"}
	MetricRequestFailedCount  = []string{"mcpi", "request", "failed", "count"}
	MetricRequestLatency      = []string{"mcpi", "request", "latency", "ms"}
	MetricTransportErrorCount = []string{"mcpi", "transport", "error", "count"}
	MetricBytesOut            = []string{"mcpi", "transport", "out", "bytes"}
	MetricBytesIn             = []string{"mcpi", "transport", "in", "bytes"}
	// MetricDrainedBytes counts stray bytes discarded before a request.
	MetricDrainedBytes = []string{"mcpi", "transport", "drained", "bytes"}
)

// TelemetryLabel is a key shared by log attributes and metric labels.
type TelemetryLabel string

var (
	LabelAddr    TelemetryLabel = "addr"
	LabelCommand TelemetryLabel = "command"
	LabelDrained TelemetryLabel = "drained"
	LabelError   TelemetryLabel = "error"
	LabelOp      TelemetryLabel = "op"
	LabelReply   TelemetryLabel = "reply"
	LabelRequest TelemetryLabel = "request"
)

// M returns the label as a metric label.
func (lab TelemetryLabel) M(val string) metrics.Label {
	return metrics.Label{Name: string(lab), Value: val}
}

// L returns the label as a log attribute.
func (lab TelemetryLabel) L(val any) slog.Attr {
	return slog.Attr{
		Key:   string(lab),
		Value: slog.AnyValue(val),
	}
}
