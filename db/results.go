package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/vitalapp/vital-api/common"
	"github.com/vitalapp/vital-api/model"
)

var resultColumns = []string{
	"id",
	"patient_name",
	"test_type",
	"to_char(result_date, 'YYYY-MM-DD')",
	"result_value",
	"notes",
	"created_at",
}

func scanResult(row sq.RowScanner) (*model.Result, error) {
	var r model.Result
	err := row.Scan(&r.ID, &r.PatientName, &r.TestType, &r.ResultDate, &r.ResultValue, &r.Notes, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListResults returns all results, most recent result date first.
func ListResults(ctx context.Context, db DatabaseAccessor) ([]model.Result, error) {
	wrapMsg := "unable to list results"

	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(resultColumns...).
		From("results").
		OrderBy("result_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}
	defer rows.Close()

	results := make([]model.Result, 0)
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, common.WrapStoreError(err, wrapMsg)
		}
		results = append(results, *result)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	return results, nil
}

// CreateResult inserts a validated result request and returns the stored result.
func CreateResult(ctx context.Context, db DatabaseAccessor, req *model.NewResult) (*model.Result, error) {
	wrapMsg := "unable to create result"

	statement, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Insert("results").
		Columns("patient_name", "test_type", "result_date", "result_value", "notes").
		Values(req.PatientName, req.TestType, req.ResultDate, req.ResultValue, req.Notes).
		Suffix(returning(resultColumns)).
		ToSql()
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	result, err := scanResult(db.QueryRowContext(ctx, statement, args...))
	if err != nil {
		return nil, common.WrapStoreError(err, wrapMsg)
	}

	return result, nil
}

// ListResults returns all results, most recent first.
func (s *Store) ListResults(ctx context.Context) ([]model.Result, error) {
	return ListResults(ctx, s.db)
}

// CreateResult records a new result.
func (s *Store) CreateResult(ctx context.Context, req *model.NewResult) (*model.Result, error) {
	return CreateResult(ctx, s.db, req)
}
