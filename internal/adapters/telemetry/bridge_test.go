package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pkgr/internal/adapters/telemetry"
	"go.trai.ch/pkgr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_ReportsEndedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var messages []string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		messages = append(messages, msg)
	}).Times(2)

	tp := telemetry.NewProvider(telemetry.NewBridge(log))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tracer := telemetry.NewOTelTracerFromProvider(tp, "test")

	_, ok := tracer.Start(context.Background(), "gathering")
	ok.End()

	_, bad := tracer.Start(context.Background(), "resolving")
	bad.RecordError(errors.New("conflict on Lib"))
	bad.End()

	if assert.Len(t, messages, 2) {
		assert.Contains(t, messages[0], "span gathering took ")
		assert.Contains(t, messages[1], "span resolving failed after ")
		assert.Contains(t, messages[1], "conflict on Lib")
	}
}

func TestBridge_NilLogger(t *testing.T) {
	tp := telemetry.NewProvider(telemetry.NewBridge(nil))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := telemetry.NewOTelTracerFromProvider(tp, "test").Start(context.Background(), "planning")
	span.End()
}
