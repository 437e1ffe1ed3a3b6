package store

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- test doubles ---------- */

// assign copies one fake column value into a Scan destination.
func assign(dest, val any) {
	dv := reflect.ValueOf(dest).Elem()
	if val == nil {
		dv.Set(reflect.Zero(dv.Type()))
		return
	}
	v := reflect.ValueOf(val)
	if !v.Type().AssignableTo(dv.Type()) {
		panic(fmt.Sprintf("assign: %v not assignable to %v", v.Type(), dv.Type()))
	}
	dv.Set(v)
}

// fakeRow implements pgx.Row for single-row scans.
type fakeRow struct {
	scanErr error
	vals    []any
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if len(dest) != len(r.vals) {
		panic(fmt.Sprintf("fakeRow.Scan: %d dest for %d vals", len(dest), len(r.vals)))
	}
	for i := range dest {
		assign(dest[i], r.vals[i])
	}
	return nil
}

// fakeRows implements pgx.Rows for multi-row scans.
type fakeRows struct {
	rows    [][]any
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := r.rows[r.idx-1]
	if len(dest) != len(row) {
		panic(fmt.Sprintf("fakeRows.Scan: %d dest for %d vals", len(dest), len(row)))
	}
	for i := range dest {
		assign(dest[i], row[i])
	}
	return nil
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
