package db

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Store provides all functions to execute entity store queries
// and to access the durable sync event log.
type Store interface {
	Insert(ctx context.Context, table string, fields map[string]any) error
	Update(ctx context.Context, table string, id string, fields map[string]any) error
	Delete(ctx context.Context, table string, id string) error
	SelectByID(ctx context.Context, table string, id string) (map[string]any, error)
	SelectAll(ctx context.Context, table string) ([]map[string]any, error)

	AppendSyncEvent(ctx context.Context, arg AppendSyncEventParams) (SyncEvent, error)
	ListSyncEvents(ctx context.Context, arg ListSyncEventsParams) ([]SyncEvent, error)
	GetSyncEvent(ctx context.Context, id int64) (SyncEvent, error)
	UpdateSyncEventStatus(ctx context.Context, arg UpdateSyncEventStatusParams) error
}

// SQLStore implements Store against a relational database.
// Rows are addressed generically by table name and column map, so one
// store serves every entity collection.
type SQLStore struct {
	db *sql.DB
}

// NewStore creates a new Store
func NewStore(db *sql.DB) Store {
	return &SQLStore{db: db}
}

func (store *SQLStore) Insert(ctx context.Context, table string, fields map[string]any) error {
	query, args := buildInsertQuery(table, fields)
	_, err := store.db.ExecContext(ctx, query, args...)
	return err
}

func (store *SQLStore) Update(ctx context.Context, table string, id string, fields map[string]any) error {
	query, args := buildUpdateQuery(table, id, fields)
	result, err := store.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (store *SQLStore) Delete(ctx context.Context, table string, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE "id" = $1`, quoteIdentifier(table))
	result, err := store.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (store *SQLStore) SelectByID(ctx context.Context, table string, id string) (map[string]any, error) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE "id" = $1`, quoteIdentifier(table))
	rows, err := store.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results, err := scanRows(rows)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, sql.ErrNoRows
	}
	return results[0], nil
}

func (store *SQLStore) SelectAll(ctx context.Context, table string) ([]map[string]any, error) {
	query := fmt.Sprintf(`SELECT * FROM %s`, quoteIdentifier(table))
	rows, err := store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRows(rows)
}

// buildInsertQuery builds a parameterized INSERT for the given column map.
// Columns are emitted in sorted order so the statement is deterministic.
func buildInsertQuery(table string, fields map[string]any) (string, []any) {
	columns := sortedColumns(fields)

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, column := range columns {
		quoted[i] = quoteIdentifier(column)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = fields[column]
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		quoteIdentifier(table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)
	return query, args
}

// buildUpdateQuery builds a parameterized UPDATE touching only the given columns.
func buildUpdateQuery(table string, id string, fields map[string]any) (string, []any) {
	columns := sortedColumns(fields)

	assignments := make([]string, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, column := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", quoteIdentifier(column), i+1)
		args = append(args, fields[column])
	}
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE %s SET %s WHERE "id" = $%d`,
		quoteIdentifier(table),
		strings.Join(assignments, ", "),
		len(columns)+1,
	)
	return query, args
}

func sortedColumns(fields map[string]any) []string {
	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

// quoteIdentifier quotes a table or column name. Attribute names are
// mirrored verbatim as column names, so the casing must survive.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// scanRows reads every row into a column-keyed map. Byte slices are
// converted to strings so JSON text columns can be parsed downstream.
func scanRows(rows *sql.Rows) ([]map[string]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(columns))
		for i, column := range columns {
			row[column] = normalizeValue(values[i])
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case time.Time:
		return v.UTC()
	default:
		return v
	}
}
