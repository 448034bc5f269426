package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	webscraper "github.com/baluchebolu1975/webscraper-ai"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ webscraper.ResultService = (*ResultService)(nil)

// ResultService implements webscraper.ResultService using SQLite.
// It is a plain append-only archive: inserts and lookups, no deduplication.
type ResultService struct {
	db *DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db}
}

// CreateResult archives a scraped page, assigning its ID and, if unset,
// its fetch timestamp.
func (s *ResultService) CreateResult(ctx context.Context, page *webscraper.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now().UTC()
	}

	links, err := marshalJSON(page.Links, "[]")
	if err != nil {
		return err
	}
	images, err := marshalJSON(page.Images, "[]")
	if err != nil {
		return err
	}
	fields, err := marshalJSON(page.Fields, "{}")
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO results (id, url, title, text, links, images, fields, markdown, content_hash, fetched_at, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.URL, page.Title, page.Text, links, images, fields, page.Markdown,
		page.ContentHash, page.FetchedAt.Format(time.RFC3339), page.Error)

	return err
}

// FindResultByID retrieves an archived page by ID.
func (s *ResultService) FindResultByID(ctx context.Context, id string) (*webscraper.Page, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, text, links, images, fields, markdown, content_hash, fetched_at, error
		FROM results
		WHERE id = ?
	`, id)

	page, err := scanResult(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, webscraper.Errorf(webscraper.ENOTFOUND, "result not found")
	}
	if err != nil {
		return nil, err
	}

	return page, nil
}

// FindResults retrieves archived pages matching the filter, newest first.
func (s *ResultService) FindResults(ctx context.Context, filter webscraper.ResultFilter) ([]*webscraper.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, text, links, images, fields, markdown, content_hash, fetched_at, error FROM results WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC, id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*webscraper.Page
	for rows.Next() {
		page, err := scanResult(rows.Scan)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pages, nil
}

// scanResult scans one results row into a Page, decoding the JSON columns.
func scanResult(scan func(dest ...any) error) (*webscraper.Page, error) {
	var page webscraper.Page
	var links, images, fields, fetchedAt string

	if err := scan(&page.ID, &page.URL, &page.Title, &page.Text, &links, &images,
		&fields, &page.Markdown, &page.ContentHash, &fetchedAt, &page.Error); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(links), &page.Links); err != nil {
		return nil, fmt.Errorf("failed to decode links: %w", err)
	}
	if err := json.Unmarshal([]byte(images), &page.Images); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}
	if fields != "" && fields != "{}" && fields != "null" {
		if err := json.Unmarshal([]byte(fields), &page.Fields); err != nil {
			return nil, fmt.Errorf("failed to decode fields: %w", err)
		}
	}

	var err error
	page.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &page, nil
}

// marshalJSON encodes a value for a JSON column, substituting empty for nil.
func marshalJSON(v any, empty string) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	s := string(b)
	if s == "null" {
		s = empty
	}
	return s, nil
}
