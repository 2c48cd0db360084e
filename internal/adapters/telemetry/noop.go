package telemetry

import (
	"context"

	"go.trai.ch/pkgr/internal/core/ports"
)

// NoOpTracer satisfies ports.Tracer when spans are not wanted, as in app and CLI tests.
// Every Start returns the caller's context and one shared span that drops all input.
type NoOpTracer struct{}

// NewNoOpTracer returns a NoOpTracer.
func NewNoOpTracer() *NoOpTracer { return &NoOpTracer{} }

// Start implements ports.Tracer.
func (*NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, discarded
}

// NoOpSpan ignores errors and attributes.
type NoOpSpan struct{}

var discarded ports.Span = &NoOpSpan{}

// End, RecordError and SetAttribute do nothing.
func (*NoOpSpan) End()                     {}
func (*NoOpSpan) RecordError(error)        {}
func (*NoOpSpan) SetAttribute(string, any) {}
