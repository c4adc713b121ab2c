package cmd

import (
	"bytes"
	"context"

	"github.com/maratik123/tsp/internal/domain"
	"github.com/spf13/cobra"
)

// mockWorkflow captures the arguments the CLI layer hands to the domain.
type mockWorkflow struct {
	listArgs *domain.ListArgs
	optArgs  *domain.OptimizeArgs
	listErr  error
	optErr   error
}

func (m *mockWorkflow) List(args domain.ListArgs) error {
	m.listArgs = &args
	return m.listErr
}

func (m *mockWorkflow) Optimize(_ context.Context, args domain.OptimizeArgs) error {
	m.optArgs = &args
	return m.optErr
}

// execute runs a freshly built command tree against the mock workflow and
// returns the mock, the captured output and the execution error.
func execute(args ...string) (*mockWorkflow, *bytes.Buffer, error) {
	mock := &mockWorkflow{}

	restore := workflowFactory
	workflowFactory = func(*cobra.Command) domain.Workflow { return mock }
	defer func() { workflowFactory = restore }()

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return mock, out, err
}
