package sparkline

import (
	"fmt"

	"github.com/prometheus/common/model"
)

// sampleValue and pairValue are the accessors for Prometheus result types.
func sampleValue(s *model.Sample) float64  { return float64(s.Value) }
func pairValue(p model.SamplePair) float64 { return float64(p.Value) }

// VectorSparkline renders the sample values of an instant-query vector as a
// sparkline, in vector order.
func VectorSparkline(vector model.Vector, opts SparklineOptions) (string, error) {
	return SparklineSeries(vector, sampleValue, opts)
}

// StreamSparkline renders the samples of a single range-query stream as a
// sparkline.
func StreamSparkline(stream *model.SampleStream, opts SparklineOptions) (string, error) {
	if stream == nil {
		return "", fmt.Errorf("sparkline: nil stream: %w", ErrEmptySeries)
	}
	return SparklineSeries(stream.Values, pairValue, opts)
}

// StreamTimeLabels formats each sample timestamp of stream at granularity g,
// suitable for ChartOptions.XLabels.
func StreamTimeLabels(stream *model.SampleStream, g Granularity) []string {
	if stream == nil {
		return nil
	}
	labels := make([]string, len(stream.Values))
	for i, p := range stream.Values {
		labels[i] = FormatComponent(p.Timestamp.Time(), g)
	}
	return labels
}

// StreamChart renders a single range-query stream as a chart. Unless
// opts.XLabels is already set, the x axis is labeled with each sample's
// timestamp component at granularity g.
func StreamChart(stream *model.SampleStream, g Granularity, opts ChartOptions) (string, error) {
	if stream == nil {
		return "", fmt.Errorf("chart: nil stream: %w", ErrEmptySeries)
	}
	if opts.XLabels == nil {
		opts.XLabels = StreamTimeLabels(stream, g)
	}
	return ChartSeries(stream.Values, pairValue, opts)
}
