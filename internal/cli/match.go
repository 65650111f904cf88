package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/sieve/internal/query"
)

// MatchResult is the JSON payload of a match run.
type MatchResult struct {
	Matched bool `json:"matched"`
}

// NewMatchCommand creates the match command.
//
// Exit codes distinguish the two tiers of the error contract: 0 means the
// document matched, 1 means it did not (a normal outcome), 2 means the
// query failed to compile or the inputs could not be loaded.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	qo := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "match <document>",
		Short: "Test a single document against a query",
		Long: `Test the first document in a YAML/JSON file against a query.

Exits 0 on match, 1 on no-match, 2 on compile or load errors.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(rootOpts, qo, args[0], cmd)
		},
	}

	AddQueryFlags(cmd, qo)

	return cmd
}

func runMatch(opts *RootOptions, qo *QueryOptions, docPath string, cmd *cobra.Command) error {
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

	docs, err := LoadDocuments(cmd.Context(), docPath, "")
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return NewExitError(ExitCommandError, "document file is empty")
	}

	runID := uuid.NewString()
	matched := m(docs[0])

	var payload any = "match"
	if opts.Format == "json" {
		payload = MatchResult{Matched: matched}
	} else if !matched {
		payload = "no match"
	}
	if err := formatter.Success(runID, payload); err != nil {
		return err
	}

	if !matched {
		return NewExitError(ExitNoMatch, "document did not match")
	}
	return nil
}
