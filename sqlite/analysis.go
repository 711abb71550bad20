package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/kamar"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ kamar.AnalysisStore = (*AnalysisStore)(nil)

// AnalysisStore implements kamar.AnalysisStore using SQLite. Results are
// stored as JSON.
type AnalysisStore struct {
	db *DB
}

// NewAnalysisStore creates a new AnalysisStore.
func NewAnalysisStore(db *DB) *AnalysisStore {
	return &AnalysisStore{db: db}
}

// SaveAnalysis stores result under a new ID.
func (s *AnalysisStore) SaveAnalysis(ctx context.Context, result *kamar.AnalysisResult) (*kamar.AnalysisRecord, error) {
	if result == nil || strings.TrimSpace(result.Keyword) == "" {
		return nil, kamar.Errorf(kamar.EINVALID, "analysis keyword required")
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding analysis: %w", err)
	}

	rec := &kamar.AnalysisRecord{
		ID:        uuid.New().String(),
		Keyword:   result.Keyword,
		Result:    result,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, keyword, result, created_at)
		VALUES (?, ?, ?, ?)
	`, rec.ID, rec.Keyword, string(data), rec.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindAnalysisByID retrieves an analysis by ID.
func (s *AnalysisStore) FindAnalysisByID(ctx context.Context, id string) (*kamar.AnalysisRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, keyword, result, created_at
		FROM analyses
		WHERE id = ?
	`, id)

	rec, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kamar.Errorf(kamar.ENOTFOUND, "analysis not found")
	}
	return rec, err
}

// FindAnalyses retrieves analyses matching the filter, newest first.
func (s *AnalysisStore) FindAnalyses(ctx context.Context, filter kamar.AnalysisFilter) ([]*kamar.AnalysisRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, keyword, result, created_at FROM analyses WHERE 1=1")
	if filter.Keyword != nil {
		query.WriteString(" AND keyword = ?")
		args = append(args, *filter.Keyword)
	}
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*kamar.AnalysisRecord{}
	for rows.Next() {
		rec, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(sc scanner) (*kamar.AnalysisRecord, error) {
	var rec kamar.AnalysisRecord
	var data, createdAt string

	if err := sc.Scan(&rec.ID, &rec.Keyword, &data, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if rec.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	rec.Result = &kamar.AnalysisResult{}
	if err := json.Unmarshal([]byte(data), rec.Result); err != nil {
		return nil, fmt.Errorf("decoding analysis: %w", err)
	}
	return &rec, nil
}
