package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/sieve/internal/query"
)

// CountResult is the JSON payload of a count run.
type CountResult struct {
	Total   int `json:"total"`
	Matched int `json:"matched"`
}

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	qo := &QueryOptions{}
	var table string

	cmd := &cobra.Command{
		Use:           "count <documents>",
		Short:         "Count the documents matching a query",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(rootOpts, qo, args[0], table, cmd)
		},
	}

	AddQueryFlags(cmd, qo)
	cmd.Flags().StringVar(&table, "table", "", "read documents from this SQLite table (<documents> is a database path)")

	return cmd
}

func runCount(opts *RootOptions, qo *QueryOptions, docsPath, table string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	q, err := qo.Load()
	if err != nil {
		return err
	}

	m, err := query.Compile(q)
	if err != nil {
		formatter.Error(string(query.ErrCodeUnknownOperator), err.Error())
		return WrapExitError(ExitCommandError, "compile query", err)
	}

	docs, err := LoadDocuments(cmd.Context(), docsPath, table)
	if err != nil {
		return err
	}

	matched := 0
	for _, doc := range docs {
		if m(doc) {
			matched++
		}
	}

	runID := uuid.NewString()
	if opts.Format == "json" {
		return formatter.Success(runID, CountResult{Total: len(docs), Matched: matched})
	}
	return formatter.Success(runID, fmt.Sprintf("%d", matched))
}
