package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/sieve/internal/value"
)

// SQLite reads documents out of a SQLite database: each row of a table
// becomes one object document, columns become fields. Read-only document
// ingestion; queries are still evaluated in memory by the engine.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database at the given path.
//
// The connection is configured with a 5-second busy timeout for lock
// contention, and a single-connection pool: SQLite supports one writer at
// a time and this source only ever reads.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &SQLite{db: db}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ReadTable scans every row of a table into object documents, ordered by
// rowid so repeated reads yield the same document order.
func (s *SQLite) ReadTable(ctx context.Context, table string) ([]value.Value, error) {
	if !isIdentifier(table) {
		return nil, fmt.Errorf("invalid table name: %q", table)
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s" ORDER BY rowid ASC`, table))
	if err != nil {
		return nil, fmt.Errorf("query table %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("get columns: %w", err)
	}

	var docs []value.Value
	for rows.Next() {
		doc, err := scanDocument(rows, columns)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	if docs == nil {
		docs = []value.Value{}
	}
	return docs, nil
}

// scanDocument scans one SQL row into an object document.
func scanDocument(rows *sql.Rows, columns []string) (value.Value, error) {
	values := make([]any, len(columns))
	valuePtrs := make([]any, len(columns))
	for i := range values {
		valuePtrs[i] = &values[i]
	}

	if err := rows.Scan(valuePtrs...); err != nil {
		return nil, err
	}

	doc := make(value.Object, len(columns))
	for i, col := range columns {
		converted, err := sqlToValue(values[i])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col, err)
		}
		doc[col] = converted
	}
	return doc, nil
}

// sqlToValue converts a scanned database/sql value to the value model.
func sqlToValue(v any) (value.Value, error) {
	switch val := v.(type) {
	case nil:
		return value.Null{}, nil
	case int64:
		return value.Int(val), nil
	case float64:
		return value.Float(val), nil
	case string:
		return value.String(val), nil
	case []byte:
		return value.String(string(val)), nil
	case bool:
		return value.Bool(val), nil
	case time.Time:
		return value.DateTime{Time: val}, nil
	default:
		return nil, fmt.Errorf("unsupported SQL type: %T", v)
	}
}

// isIdentifier reports whether s is a plain SQL identifier. Table names
// cannot be parameterized, so anything else is rejected outright.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
