package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
)

const (
	columnCreatedAt = "created_at"
	columnUpdatedAt = "updated_at"
)

// QueryObserver receives the duration of each store operation, keyed by
// table and operation name.
type QueryObserver func(table, operation string, d time.Duration)

// Descriptor is the static per-resource configuration driving the generic
// repository: table identity, column list, and the sort-field mapping. Built
// once at startup and validated there.
type Descriptor struct {
	Table        string
	IDColumn     string
	Columns      []string
	SortColumns  query.FieldMapping
	DefaultOrder string
}

// Validate checks the descriptor is internally consistent.
func (d Descriptor) Validate() error {
	if d.Table == "" {
		return fmt.Errorf("descriptor missing table name")
	}
	if d.IDColumn == "" {
		return fmt.Errorf("descriptor for %s missing id column", d.Table)
	}
	if len(d.Columns) == 0 {
		return fmt.Errorf("descriptor for %s has no columns", d.Table)
	}
	known := make(map[string]struct{}, len(d.Columns))
	for _, c := range d.Columns {
		known[c] = struct{}{}
	}
	if _, ok := known[d.IDColumn]; !ok {
		return fmt.Errorf("descriptor for %s: id column %s not in column list", d.Table, d.IDColumn)
	}
	for field, column := range d.SortColumns {
		if _, ok := known[column]; !ok {
			return fmt.Errorf("descriptor for %s: sort field %s maps to unknown column %s", d.Table, field, column)
		}
	}
	return nil
}

func (d Descriptor) hasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Repository is the single generic persistence adapter shared by every
// resource. Row is the storage-row struct with db tags matching the
// descriptor's columns.
type Repository[Row any] struct {
	db      *sqlx.DB
	desc    Descriptor
	observe QueryObserver
}

// New constructs a repository for one resource, failing fast on descriptor
// configuration defects.
func New[Row any](db *sqlx.DB, desc Descriptor) (*Repository[Row], error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return &Repository[Row]{db: db, desc: desc}, nil
}

// MustNew is New for startup wiring, where a bad descriptor is fatal.
func MustNew[Row any](db *sqlx.DB, desc Descriptor) *Repository[Row] {
	repo, err := New[Row](db, desc)
	if err != nil {
		panic(err)
	}
	return repo
}

// SetObserver installs a query duration observer.
func (r *Repository[Row]) SetObserver(observe QueryObserver) {
	r.observe = observe
}

// SortColumns exposes the resource's sort-field mapping for request mapping.
func (r *Repository[Row]) SortColumns() query.FieldMapping {
	return r.desc.SortColumns
}

func (r *Repository[Row]) observed(operation string, start time.Time) {
	if r.observe != nil {
		r.observe(r.desc.Table, operation, time.Since(start))
	}
}

// List returns one page of rows plus the unbounded match count. The fetch and
// the count run concurrently; a failure of either fails the whole call.
func (r *Repository[Row]) List(ctx context.Context, pred query.Predicate, sort query.Sort) ([]Row, int, error) {
	sort.Normalize()
	order, err := query.BuildOrder(sort, r.desc.SortColumns)
	if err != nil {
		return nil, 0, err
	}

	start := time.Now()
	defer r.observed("list", start)

	return query.FetchPage[Row](ctx, r.db, query.PageRequest{
		Table:        r.desc.Table,
		Columns:      r.desc.Columns,
		Predicate:    pred,
		Order:        order,
		DefaultOrder: r.desc.DefaultOrder,
		Page:         sort.Page,
		Size:         sort.Size,
	})
}

// FindByID fetches a single row. sql.ErrNoRows propagates untouched so the
// service layer can translate it.
func (r *Repository[Row]) FindByID(ctx context.Context, id string) (*Row, error) {
	start := time.Now()
	defer r.observed("find", start)

	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		strings.Join(r.desc.Columns, ", "), r.desc.Table, r.desc.IDColumn)
	var row Row
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a row from a store-field set, generating the identifier and
// timestamps when the schema carries them, and returns the stored row.
func (r *Repository[Row]) Insert(ctx context.Context, fields map[string]interface{}) (*Row, error) {
	start := time.Now()
	defer r.observed("insert", start)

	values := make(map[string]interface{}, len(fields)+3)
	for k, v := range fields {
		values[k] = v
	}
	if _, ok := values[r.desc.IDColumn]; !ok {
		values[r.desc.IDColumn] = uuid.NewString()
	}
	now := time.Now().UTC()
	if r.desc.hasColumn(columnCreatedAt) {
		if _, ok := values[columnCreatedAt]; !ok {
			values[columnCreatedAt] = now
		}
	}
	if r.desc.hasColumn(columnUpdatedAt) {
		if _, ok := values[columnUpdatedAt]; !ok {
			values[columnUpdatedAt] = now
		}
	}

	columns := sortedKeys(values)
	placeholders := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for i, column := range columns {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, values[column])
	}

	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.desc.Table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(r.desc.Columns, ", "))

	var row Row
	if err := r.db.GetContext(ctx, &row, q, args...); err != nil {
		return nil, fmt.Errorf("insert into %s: %w", r.desc.Table, err)
	}
	return &row, nil
}

// Update applies a partial store-field set to one row and returns the updated
// row. Columns absent from the set are left untouched. sql.ErrNoRows signals
// a missing row. An empty field set degrades to a fetch.
func (r *Repository[Row]) Update(ctx context.Context, id string, fields map[string]interface{}) (*Row, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}

	start := time.Now()
	defer r.observed("update", start)

	values := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		values[k] = v
	}
	if r.desc.hasColumn(columnUpdatedAt) {
		values[columnUpdatedAt] = time.Now().UTC()
	}

	columns := sortedKeys(values)
	assignments := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns)+1)
	for i, column := range columns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, i+1))
		args = append(args, values[column])
	}
	args = append(args, id)

	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		r.desc.Table,
		strings.Join(assignments, ", "),
		r.desc.IDColumn,
		len(columns)+1,
		strings.Join(r.desc.Columns, ", "))

	var row Row
	if err := r.db.GetContext(ctx, &row, q, args...); err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes one row. Zero affected rows surfaces as sql.ErrNoRows.
func (r *Repository[Row]) Delete(ctx context.Context, id string) error {
	start := time.Now()
	defer r.observed("delete", start)

	q := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", r.desc.Table, r.desc.IDColumn)
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", r.desc.Table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", r.desc.Table, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func sortedKeys(values map[string]interface{}) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
