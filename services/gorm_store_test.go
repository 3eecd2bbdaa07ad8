package services

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"staff-promotion-api/models"
)

// Scripted database/sql driver: each expected statement is declared up
// front, the test fails on any unexpected query or argument.

type stepKind int

const (
	kindQuery stepKind = iota
	kindExec
)

type queryStep struct {
	kind    stepKind
	pattern *regexp.Regexp
	args    []driver.Value
	columns []string
	rows    [][]driver.Value
	err     error
	result  driver.Result
}

type scriptedDB struct {
	mu    sync.Mutex
	steps []*queryStep
}

func (db *scriptedDB) next(kind stepKind, query string, args []driver.NamedValue) (*queryStep, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if len(db.steps) == 0 {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}
	step := db.steps[0]
	if step.kind != kind {
		return nil, fmt.Errorf("unexpected kind for query %s: got %v want %v", query, kind, step.kind)
	}
	if !step.pattern.MatchString(query) {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}
	if len(step.args) != len(args) {
		return nil, fmt.Errorf("unexpected arg count for %s: got %d want %d", query, len(args), len(step.args))
	}
	for i := range args {
		if args[i].Value != step.args[i] {
			return nil, fmt.Errorf("unexpected arg %d for %s: got %v want %v", i, query, args[i].Value, step.args[i])
		}
	}
	db.steps = db.steps[1:]
	return step, nil
}

func (db *scriptedDB) verifyComplete() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if len(db.steps) != 0 {
		return fmt.Errorf("unmet expectations: %d", len(db.steps))
	}
	return nil
}

type scriptedDriver struct {
	db *scriptedDB
}

func (d *scriptedDriver) Open(string) (driver.Conn, error) {
	return &scriptedConn{db: d.db}, nil
}

type scriptedConn struct {
	db *scriptedDB
}

func (c *scriptedConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *scriptedConn) Close() error { return nil }

func (c *scriptedConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *scriptedConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	step, err := c.db.next(kindQuery, query, args)
	if err != nil {
		return nil, err
	}
	if step.err != nil {
		return nil, step.err
	}
	return &scriptedRows{columns: step.columns, rows: step.rows}, nil
}

func (c *scriptedConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	step, err := c.db.next(kindExec, query, args)
	if err != nil {
		return nil, err
	}
	if step.err != nil {
		return nil, step.err
	}
	if step.result != nil {
		return step.result, nil
	}
	return scriptedResult{}, nil
}

type scriptedResult struct {
	lastInsertID int64
	rowsAffected int64
}

func (r scriptedResult) LastInsertId() (int64, error) { return r.lastInsertID, nil }

func (r scriptedResult) RowsAffected() (int64, error) { return r.rowsAffected, nil }

type scriptedRows struct {
	columns []string
	rows    [][]driver.Value
	idx     int
}

func (r *scriptedRows) Columns() []string { return r.columns }

func (r *scriptedRows) Close() error { return nil }

func (r *scriptedRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	row := r.rows[r.idx]
	for i := range dest {
		dest[i] = nil
	}
	for i := range row {
		dest[i] = row[i]
	}
	r.idx++
	return nil
}

func newScriptedGormDB(t *testing.T, steps []*queryStep) (*gorm.DB, *scriptedDB, func()) {
	t.Helper()
	state := &scriptedDB{steps: steps}
	driverName := fmt.Sprintf("scripted_%d", time.Now().UnixNano())
	sql.Register(driverName, &scriptedDriver{db: state})

	sqlDB, err := sql.Open(driverName, "")
	if err != nil {
		t.Fatalf("failed to open sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create gorm db: %v", err)
	}

	cleanup := func() {
		_ = sqlDB.Close()
	}
	return gormDB, state, cleanup
}

func TestGormReviewStoreLedgerLookup(t *testing.T) {
	pairPattern := regexp.MustCompile("SELECT .* FROM `promotion_reviews` WHERE promotion_request_id = \\? AND reviewer_id = \\?")
	reviewDate := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

	steps := []*queryStep{
		// First lookup for the pair: nothing there yet.
		{
			kind:    kindQuery,
			pattern: pairPattern,
			args:    []driver.Value{int64(7), int64(3), int64(1)},
			columns: []string{"id", "promotion_request_id", "reviewer_id", "reviewer_role", "decision", "comments", "review_date"},
			rows:    [][]driver.Value{},
		},
		// Second lookup: the reviewer's row exists.
		{
			kind:    kindQuery,
			pattern: pairPattern,
			args:    []driver.Value{int64(7), int64(3), int64(1)},
			columns: []string{"id", "promotion_request_id", "reviewer_id", "reviewer_role", "decision", "comments", "review_date"},
			rows: [][]driver.Value{{
				int64(11), int64(7), int64(3), "HOD", "RECOMMEND", "On record", reviewDate,
			}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	store := NewGormReviewStore(db)

	review, err := store.FindByRequestAndReviewer(7, 3)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if review != nil {
		t.Fatalf("expected no row for a fresh pair, got %+v", review)
	}

	review, err = store.FindByRequestAndReviewer(7, 3)
	if err != nil {
		t.Fatalf("second lookup failed: %v", err)
	}
	if review == nil {
		t.Fatalf("expected the existing row")
	}
	if review.ID != 11 || review.ReviewerRole != models.RoleHOD || review.Decision != models.DecisionRecommend {
		t.Fatalf("unexpected row: %+v", review)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestGormReviewStoreMissingRowsBecomeNotFound(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `promotion_reviews` WHERE id = \\?"),
			args:    []driver.Value{int64(5), int64(1)},
			columns: []string{"id"},
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT count\\(\\*\\) FROM `promotion_reviews` WHERE id = \\?"),
			args:    []driver.Value{int64(5)},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(0)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	store := NewGormReviewStore(db)

	if _, err := store.FindByID(5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}

	exists, err := store.ExistsByID(5)
	if err != nil {
		t.Fatalf("exists check failed: %v", err)
	}
	if exists {
		t.Fatalf("row 5 must not exist")
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestGormRequestStoreListByStatus(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `promotion_requests` WHERE status = \\?"),
			args:    []driver.Value{"SUBMITTED"},
			columns: []string{"id", "applicant_id", "department_id", "school_id", "status"},
			rows: [][]driver.Value{
				{int64(1), int64(9), int64(10), int64(20), "SUBMITTED"},
				{int64(2), int64(9), int64(10), int64(20), "SUBMITTED"},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	store := NewGormRequestStore(db)

	requests, err := store.FindByStatus(models.StatusSubmitted)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("got %d rows, want 2", len(requests))
	}
	if requests[0].Status != models.StatusSubmitted || requests[0].DepartmentID != 10 {
		t.Fatalf("unexpected first row: %+v", requests[0])
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}
