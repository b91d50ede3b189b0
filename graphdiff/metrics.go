package graphdiff

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// tracer and meter are bound to the global OpenTelemetry providers, which
// default to no-ops until a host process configures a real SDK. The engines
// only call them when a caller opts in with WithTelemetry or
// WithAnnealingTelemetry. graphdiff never initializes a provider itself and
// never imports an exporter: whether these calls record anything is entirely
// up to the caller's process.
var (
	tracer = otel.Tracer("github.com/alexander-bzikadze/graph-diff/graphdiff")
	meter  = otel.Meter("github.com/alexander-bzikadze/graph-diff/graphdiff")

	candidatesScoredCounter, _ = meter.Int64Counter(
		"graphdiff.baseline.candidates_scored",
		metric.WithDescription("candidate mappings scored by BaselineEnumerator.ConstructDiff"),
	)
	annealingIterationsCounter, _ = meter.Int64Counter(
		"graphdiff.annealing.iterations",
		metric.WithDescription("outer iterations executed by AnnealingSearch.ConstructDiff"),
	)
)

// WithTelemetry enables span and counter instrumentation around
// BaselineEnumerator.ConstructDiff. Instrumentation is off by default so the
// engine stays dependency-free on the hot path unless a caller opts in.
func WithTelemetry() BaselineOption {
	return func(be *BaselineEnumerator) { be.instrumented = true }
}

// WithAnnealingTelemetry enables span and counter instrumentation around
// AnnealingSearch.ConstructDiff, off by default for the same reason.
func WithAnnealingTelemetry() AnnealingOption {
	return func(as *AnnealingSearch) { as.instrumented = true }
}

// startBaselineSpan starts a span for one ConstructDiff call when
// instrumentation is enabled; the returned end function is always safe to
// defer, even when instrumented is false.
func startBaselineSpan(instrumented bool, g1Size, g2Size int) (trace.Span, func()) {
	if !instrumented {
		return nil, func() {}
	}
	_, span := tracer.Start(context.Background(), "graphdiff.BaselineEnumerator.ConstructDiff",
		trace.WithAttributes(
			attribute.Int("graphdiff.g1_size", g1Size),
			attribute.Int("graphdiff.g2_size", g2Size),
		),
	)
	return span, span.End
}

func startAnnealingSpan(instrumented bool, g1Size, g2Size int) (trace.Span, func()) {
	if !instrumented {
		return nil, func() {}
	}
	_, span := tracer.Start(context.Background(), "graphdiff.AnnealingSearch.ConstructDiff",
		trace.WithAttributes(
			attribute.Int("graphdiff.g1_size", g1Size),
			attribute.Int("graphdiff.g2_size", g2Size),
		),
	)
	return span, span.End
}
