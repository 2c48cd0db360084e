package installer

import (
	"context"

	"go.trai.ch/pkgr/internal/core/ports"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for phase and progress messages.
func WithLogger(logger ports.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithTracer sets the tracer that records one span per phase.
func WithTracer(tracer ports.Tracer) Option {
	return func(m *Manager) {
		m.tracer = tracer
	}
}

// WithListeners registers action listeners. Listeners are notified synchronously and in order.
func WithListeners(listeners ...ports.ActionListener) Option {
	return func(m *Manager) {
		m.listeners = append(m.listeners, listeners...)
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(error)  {}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End()                     {}
func (nopSpan) RecordError(error)        {}
func (nopSpan) SetAttribute(string, any) {}
