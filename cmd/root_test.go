package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/maratik123/tsp/internal/domain"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_Defaults(t *testing.T) {
	mock, _, err := execute("cifp.dat")
	require.NoError(t, err)

	require.NotNil(t, mock.optArgs)
	args := *mock.optArgs

	assert.Equal(t, "cifp.dat", args.Source)
	assert.Empty(t, args.Filter)
	assert.False(t, args.Unfiltered)
	assert.False(t, args.PrintAirports)
	assert.Empty(t, args.Output)
	assert.Empty(t, args.Images)
	assert.Zero(t, args.MinDist)
	assert.Empty(t, args.Except)

	assert.Equal(t, defaultAnts, args.Params.Ants)
	assert.Equal(t, defaultIterations, args.Params.Iterations)
	assert.InDelta(t, defaultEvaporation, args.Params.Evaporation, 1e-12)
	assert.InDelta(t, defaultAlpha, args.Params.Alpha, 1e-12)
	assert.InDelta(t, defaultBeta, args.Params.Beta, 1e-12)
	assert.Zero(t, args.Params.Workers)
	// Unseeded runs draw from the clock.
	assert.NotZero(t, args.Params.Seed)
}

func TestRoot_Flags(t *testing.T) {
	mock, _, err := execute(
		"-a", "10", "-i", "20", "-e", "0.2",
		"--alpha", "1", "--beta", "2",
		"-m", "500", "--except", "KLAX-KSEA,KDEN-KJFK",
		"--seed", "42", "--parallel", "3",
		"-o", "out.txt", "--images", "imgs",
		"-p", "-u", "-f", "filter.txt",
		"data.dat",
	)
	require.NoError(t, err)

	require.NotNil(t, mock.optArgs)
	args := *mock.optArgs

	assert.Equal(t, "data.dat", args.Source)
	assert.Equal(t, "filter.txt", args.Filter)
	assert.True(t, args.Unfiltered)
	assert.True(t, args.PrintAirports)
	assert.Equal(t, "out.txt", args.Output)
	assert.Equal(t, "imgs", args.Images)
	assert.InDelta(t, 500, args.MinDist, 1e-12)
	assert.Equal(t, []string{"KLAX-KSEA", "KDEN-KJFK"}, args.Except)

	assert.Equal(t, 10, args.Params.Ants)
	assert.Equal(t, 20, args.Params.Iterations)
	assert.InDelta(t, 0.2, args.Params.Evaporation, 1e-12)
	assert.InDelta(t, 1, args.Params.Alpha, 1e-12)
	assert.InDelta(t, 2, args.Params.Beta, 1e-12)
	assert.Equal(t, int64(42), args.Params.Seed)
	assert.Equal(t, 3, args.Params.Workers)
}

func TestRoot_ConfigFileMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tsp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ants: 99\nseed: 5\nmin-dist: 250\n"), 0o600))

	// The explicit -a flag wins over the file; file values fill the rest.
	mock, _, err := execute("--config", path, "-a", "10", "cifp.dat")
	require.NoError(t, err)

	require.NotNil(t, mock.optArgs)
	assert.Equal(t, 10, mock.optArgs.Params.Ants)
	assert.Equal(t, int64(5), mock.optArgs.Params.Seed)
	assert.InDelta(t, 250, mock.optArgs.MinDist, 1e-12)
	assert.Equal(t, defaultIterations, mock.optArgs.Params.Iterations)
}

func TestRoot_ConfigFileMissing(t *testing.T) {
	mock, _, err := execute("--config", filepath.Join(t.TempDir(), "missing.yaml"), "cifp.dat")
	assert.Error(t, err)
	assert.Nil(t, mock.optArgs)
}

func TestRoot_RequiresSourceArgument(t *testing.T) {
	_, _, err := execute()
	assert.Error(t, err)
}

func TestRoot_WorkflowErrorPropagates(t *testing.T) {
	restoreErr := errors.New("boom")

	mock := &mockWorkflow{optErr: restoreErr}
	restore := workflowFactory
	workflowFactory = func(*cobra.Command) domain.Workflow { return mock }
	defer func() { workflowFactory = restore }()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"cifp.dat"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	assert.ErrorIs(t, cmd.Execute(), restoreErr)
}
