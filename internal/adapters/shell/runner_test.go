package shell_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extq/internal/adapters/shell"
	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/extq/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_LogsOutputLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Info("line1"),
		log.EXPECT().Info("line2"),
	)
	log.EXPECT().Warn("careful")

	runner := shell.NewRunner(log)
	err := runner.Run(t.Context(), t.TempDir(), "echo line1 && echo line2; echo careful >&2")
	require.NoError(t, err)
}

func TestRunner_Run_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	runner := shell.NewRunner(log)

	require.NoError(t, runner.Run(t.Context(), dir, "echo built > out.txt"))

	content, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "built\n", string(content))
}

func TestRunner_Run_Environment(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("test-value-123")

	runner := shell.NewRunnerWithEnv(log, []string{"MY_TEST_VAR=test-value-123"})
	require.NoError(t, runner.Run(t.Context(), t.TempDir(), "echo $MY_TEST_VAR"))
}

func TestRunner_Run_ExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(log)
	err := runner.Run(t.Context(), t.TempDir(), "true && exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrBuildFailed.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
}

func TestRunner_Run_ShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	runner := shell.NewRunner(log)

	err := runner.Run(t.Context(), dir, "false && echo never > out.txt")
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "out.txt"))
}

func TestRunner_Run_SyntaxError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(log)
	err := runner.Run(t.Context(), t.TempDir(), "yarn &&")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrBuildFailed.Error())
}

func TestLogWriter_FragmentedWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Info("part1part2"),
		log.EXPECT().Info("tail"),
	)

	w := shell.NewLogWriter(log, "info")
	_, _ = w.Write([]byte("part1"))
	_, _ = w.Write([]byte("part2\r\ntail"))
	require.NoError(t, w.Close())
}
