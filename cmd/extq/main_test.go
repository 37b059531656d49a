package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/extq/internal/adapters/telemetry"
	"go.trai.ch/extq/internal/app"
	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/extq/internal/core/ports/mocks"
	"go.trai.ch/extq/internal/engine/harness"
	"go.uber.org/mock/gomock"
)

func newProvider(ctrl *gomock.Controller, loader *mocks.MockConfigLoader, log *mocks.MockLogger) ComponentProvider {
	tracer := telemetry.NewNoOpTracer()
	application := app.New(
		loader,
		log,
		mocks.NewMockReleaseFinder(ctrl),
		mocks.NewMockSourceControl(ctrl),
		mocks.NewMockCommandRunner(ctrl),
		mocks.NewMockLibraryLoader(ctrl),
		tracer,
		harness.NewHarness(tracer),
	)

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: log,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := newProvider(ctrl, mocks.NewMockConfigLoader(ctrl), mocks.NewMockLogger(ctrl))

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "extq version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Cond(func(err error) bool {
		return errors.Is(err, domain.ErrMissingTargetURL)
	}))

	provider := newProvider(ctrl, mocks.NewMockConfigLoader(ctrl), log)

	exitCode := run(context.Background(), []string{"query-ext"}, new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_ConfigError verifies that configuration failures surface as exit code 1.
func TestRun_ConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("missing.yaml").Return(nil, domain.ErrConfigReadFailed)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any())

	provider := newProvider(ctrl, loader, log)

	exitCode := run(context.Background(),
		[]string{"-c", "missing.yaml", "clean"}, new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
}
