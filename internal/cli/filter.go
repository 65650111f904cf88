package cli

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/sieve/internal/query"
	"github.com/roach88/sieve/internal/value"
)

// FilterResult is the JSON payload of a filter run.
type FilterResult struct {
	Total     int   `json:"total"`
	Matched   int   `json:"matched"`
	Documents []any `json:"documents"`
}

// NewFilterCommand creates the filter command.
func NewFilterCommand(rootOpts *RootOptions) *cobra.Command {
	qo := &QueryOptions{}
	var table string

	cmd := &cobra.Command{
		Use:   "filter <documents>",
		Short: "Print the documents matching a query",
		Long: `Filter documents from a YAML/JSON file (or a SQLite table with --table)
through a query, printing the matching documents in their original order.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(rootOpts, qo, args[0], table, cmd)
		},
	}

	AddQueryFlags(cmd, qo)
	cmd.Flags().StringVar(&table, "table", "", "read documents from this SQLite table (<documents> is a database path)")

	return cmd
}

func runFilter(opts *RootOptions, qo *QueryOptions, docsPath, table string, cmd *cobra.Command) error {
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
	formatter.VerboseLog("loaded %d document(s) from %s", len(docs), docsPath)

	matched := make([]any, 0, len(docs))
	for _, doc := range docs {
		if m(doc) {
			matched = append(matched, value.ToAny(doc))
		}
	}

	runID := uuid.NewString()
	if opts.Format == "json" {
		return formatter.Success(runID, FilterResult{
			Total:     len(docs),
			Matched:   len(matched),
			Documents: matched,
		})
	}

	var b strings.Builder
	for i, doc := range matched {
		line, err := json.Marshal(doc)
		if err != nil {
			return WrapExitError(ExitCommandError, "encode document", err)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.Write(line)
	}
	if len(matched) == 0 {
		return formatter.Success(runID, "no documents matched")
	}
	return formatter.Success(runID, b.String())
}
