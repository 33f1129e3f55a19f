package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/kozaktomas/mrzname/internal/database"
	"github.com/kozaktomas/mrzname/internal/extract"
)

// RunRepository provides PostgreSQL-backed storage of extraction runs
type RunRepository struct {
	pool *Pool
}

// NewRunRepository creates a new PostgreSQL run repository
func NewRunRepository(pool *Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

const insertRecordQuery = `
	INSERT INTO person_records (
		run_id, position, entity_id, name, is_latin_name,
		first_name, middle_name, second_name, last_name, aliases,
		birth_date, passports, nationality, has_passport, status, countries, datasets
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
`

const insertMissingQuery = `
	INSERT INTO missing_latin_names (run_id, position, entity_id, primary_name, all_names)
	VALUES ($1, $2, $3, $4, $5)
`

// SaveRun stores a run, its records and its diagnostics in one transaction
func (r *RunRepository) SaveRun(ctx context.Context, run database.StoredRun, records []extract.PersonRecord, missing []extract.MissingLatinName) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	tx, err := r.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, source, entities, records, missing_latin) VALUES ($1, $2, $3, $4, $5)`,
		run.ID, run.Source, run.Entities, len(records), len(missing))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	recordStmt, err := tx.PrepareContext(ctx, insertRecordQuery)
	if err != nil {
		return fmt.Errorf("prepare record insert: %w", err)
	}
	defer recordStmt.Close()

	for i, rec := range records {
		var birthDate sql.NullString
		if rec.BirthDate != nil {
			birthDate = sql.NullString{String: *rec.BirthDate, Valid: true}
		}
		_, err := recordStmt.ExecContext(ctx,
			run.ID, i, rec.ID, rec.Name, rec.IsLatinName,
			pq.Array(rec.FirstName), pq.Array(rec.MiddleName), pq.Array(rec.SecondName),
			pq.Array(rec.LastName), pq.Array(rec.Aliases),
			birthDate, pq.Array(rec.Passports), pq.Array(rec.Nationality), rec.HasPassport,
			pq.Array(statusStrings(rec.Status)), pq.Array(rec.Countries), pq.Array(rec.Datasets),
		)
		if err != nil {
			return fmt.Errorf("insert record %d (%s): %w", i, rec.ID, err)
		}
	}

	missingStmt, err := tx.PrepareContext(ctx, insertMissingQuery)
	if err != nil {
		return fmt.Errorf("prepare diagnostics insert: %w", err)
	}
	defer missingStmt.Close()

	for i, m := range missing {
		if _, err := missingStmt.ExecContext(ctx, run.ID, i, m.ID, m.PrimaryName, pq.Array(m.AllNames)); err != nil {
			return fmt.Errorf("insert diagnostic %d (%s): %w", i, m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// DeleteRun removes a run; records and diagnostics cascade
func (r *RunRepository) DeleteRun(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM runs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs first
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]database.StoredRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, source, entities, records, missing_latin, created_at
		FROM runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []database.StoredRun
	for rows.Next() {
		var run database.StoredRun
		if err := rows.Scan(&run.ID, &run.Source, &run.Entities, &run.Records, &run.MissingLatin, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// GetRun retrieves a run by ID, returns nil if not found
func (r *RunRepository) GetRun(ctx context.Context, id uuid.UUID) (*database.StoredRun, error) {
	var run database.StoredRun
	err := r.pool.QueryRow(ctx, `
		SELECT id, source, entities, records, missing_latin, created_at
		FROM runs
		WHERE id = $1
	`, id).Scan(&run.ID, &run.Source, &run.Entities, &run.Records, &run.MissingLatin, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return &run, nil
}

// GetRecords returns the records of a run in extraction order
func (r *RunRepository) GetRecords(ctx context.Context, id uuid.UUID) ([]extract.PersonRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT entity_id, name, is_latin_name,
		       first_name, middle_name, second_name, last_name, aliases,
		       birth_date, passports, nationality, has_passport, status, countries, datasets
		FROM person_records
		WHERE run_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []extract.PersonRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// GetMissingLatin returns the diagnostics of a run
func (r *RunRepository) GetMissingLatin(ctx context.Context, id uuid.UUID) ([]extract.MissingLatinName, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT entity_id, primary_name, all_names
		FROM missing_latin_names
		WHERE run_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query diagnostics: %w", err)
	}
	defer rows.Close()

	missing := []extract.MissingLatinName{}
	for rows.Next() {
		var m extract.MissingLatinName
		var all pq.StringArray
		if err := rows.Scan(&m.ID, &m.PrimaryName, &all); err != nil {
			return nil, fmt.Errorf("scan diagnostic: %w", err)
		}
		m.AllNames = []string(all)
		missing = append(missing, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate diagnostics: %w", err)
	}
	return missing, nil
}

func scanRecord(rows *sql.Rows) (extract.PersonRecord, error) {
	var rec extract.PersonRecord
	var first, middle, second, last, aliases, passports, nationality, status, countries, datasets pq.StringArray
	var birthDate sql.NullString

	err := rows.Scan(
		&rec.ID, &rec.Name, &rec.IsLatinName,
		&first, &middle, &second, &last, &aliases,
		&birthDate, &passports, &nationality, &rec.HasPassport, &status, &countries, &datasets,
	)
	if err != nil {
		return rec, fmt.Errorf("scan record: %w", err)
	}

	if birthDate.Valid {
		d := birthDate.String
		rec.BirthDate = &d
	}
	rec.FirstName = nonNil(first)
	rec.MiddleName = nonNil(middle)
	rec.SecondName = nonNil(second)
	rec.LastName = nonNil(last)
	rec.Aliases = nonNil(aliases)
	rec.Passports = nonNil(passports)
	rec.Nationality = nonNil(nationality)
	rec.Countries = nonNil(countries)
	rec.Datasets = nonNil(datasets)
	rec.Status = make([]extract.Status, 0, len(status))
	for _, s := range status {
		rec.Status = append(rec.Status, extract.Status(s))
	}
	return rec, nil
}

func statusStrings(status []extract.Status) []string {
	out := make([]string, 0, len(status))
	for _, s := range status {
		out = append(out, string(s))
	}
	return out
}

func nonNil(a pq.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return []string(a)
}

// Ensure RunRepository implements database.RunStore
var _ database.RunStore = (*RunRepository)(nil)
