package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sieve/internal/source"
	"github.com/roach88/sieve/internal/value"
)

// QueryOptions holds the query flags shared by all commands.
type QueryOptions struct {
	Expr string // inline query expression (YAML/JSON)
	File string // query file (.cue, .yaml, .json)
}

// AddQueryFlags registers the shared query flags on a command.
func AddQueryFlags(cmd *cobra.Command, qo *QueryOptions) {
	cmd.Flags().StringVarP(&qo.Expr, "query", "q", "", "inline query expression (YAML/JSON)")
	cmd.Flags().StringVar(&qo.File, "query-file", "", "query file (.cue, .yaml or .json)")
}

// Load resolves the query flags into a query value. Exactly one of
// --query and --query-file must be set.
func (qo *QueryOptions) Load() (value.Value, error) {
	switch {
	case qo.Expr != "" && qo.File != "":
		return nil, NewExitError(ExitCommandError, "use either --query or --query-file, not both")
	case qo.Expr != "":
		q, err := source.ParseQuery(qo.Expr)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid query", err)
		}
		return q, nil
	case qo.File != "":
		q, err := source.ReadQuery(qo.File)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid query file", err)
		}
		return q, nil
	default:
		return nil, NewExitError(ExitCommandError, "a query is required: pass --query or --query-file")
	}
}

// LoadDocuments loads documents from a file, or from a SQLite table when
// table is non-empty (path is then a database path).
func LoadDocuments(ctx context.Context, path, table string) ([]value.Value, error) {
	if table == "" {
		docs, err := source.ReadDocuments(path)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "load documents", err)
		}
		return docs, nil
	}

	db, err := source.OpenSQLite(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open database", err)
	}
	defer db.Close()

	docs, err := db.ReadTable(ctx, table)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("read table %s", table), err)
	}
	return docs, nil
}
