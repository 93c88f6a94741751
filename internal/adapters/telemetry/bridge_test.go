package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bbstatus/internal/adapters/telemetry"
	"go.trai.ch/bbstatus/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_LogsPhaseDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	var got string
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(msg string) { got = msg }).Times(1)

	tracer := telemetry.NewOTelTracer("test", telemetry.NewBridge(mockLogger))
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "validate")
	span.End()

	require.NotEmpty(t, got)
	assert.True(t, strings.HasPrefix(got, "validate finished in "), got)
}

func TestBridge_LogsFailedPhaseAsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	var got string
	mockLogger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { got = msg }).Times(1)

	tracer := telemetry.NewOTelTracer("test", telemetry.NewBridge(mockLogger))
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "send")
	span.RecordError(errors.New("connection refused"))
	span.End()

	assert.True(t, strings.HasPrefix(got, "send failed after "), got)
}

func TestBridge_NilLogger(t *testing.T) {
	tracer := telemetry.NewOTelTracer("test", telemetry.NewBridge(nil))
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "validate")
	assert.NotPanics(t, span.End)
}
