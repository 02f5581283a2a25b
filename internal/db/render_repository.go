package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/models"
)

// Render repository errors.
var (
	ErrRenderNotFound = errors.New("render not found")
	ErrInvalidRender  = errors.New("invalid render")
)

// timeLayout keeps a fixed fraction width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const renderColumns = `id, composition, theme, palette, fps, frames, first_frame, last_frame,
	fingerprint, data_source, created_at, plan_json`

// RenderRepository handles render history persistence.
type RenderRepository struct {
	db *DB
}

// NewRenderRepository creates a new RenderRepository.
func NewRenderRepository(db *DB) *RenderRepository {
	return &RenderRepository{db: db}
}

// Create inserts a new render record.
func (r *RenderRepository) Create(ctx context.Context, render *models.Render) error {
	if err := render.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRender, err)
	}

	if render.ID == "" {
		render.ID = uuid.New().String()
	}
	if render.CreatedAt.IsZero() {
		render.CreatedAt = time.Now().UTC()
	}

	var planJSON *string
	if len(render.Plan) > 0 {
		s := string(render.Plan)
		planJSON = &s
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO renders (`+renderColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		render.ID,
		render.Composition,
		render.Theme,
		render.Palette,
		render.FPS,
		render.Frames,
		render.FirstFrame,
		render.LastFrame,
		render.Fingerprint,
		nullString(render.DataSource),
		render.CreatedAt.UTC().Format(timeLayout),
		planJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to insert render: %w", err)
	}

	r.db.logger.Debug().Str("render_id", render.ID).Str("composition", render.Composition).Msg("render recorded")
	return nil
}

// Get retrieves a render by ID. A unique ID prefix is also accepted.
func (r *RenderRepository) Get(ctx context.Context, id string) (*models.Render, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrRenderNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+renderColumns+` FROM renders WHERE id = ?`, id)
	render, err := scanRender(row)
	if !errors.Is(err, ErrRenderNotFound) {
		return render, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+renderColumns+` FROM renders WHERE substr(id, 1, ?) = ? LIMIT 2`, len(id), id)
	if err != nil {
		return nil, fmt.Errorf("failed to query renders: %w", err)
	}
	defer rows.Close()

	var matches []*models.Render
	for rows.Next() {
		match, err := scanRender(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating renders: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, ErrRenderNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("render id prefix %q is ambiguous", id)
	}
}

// List returns renders newest first.
func (r *RenderRepository) List(ctx context.Context, q models.RenderQuery) ([]*models.Render, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + renderColumns + ` FROM renders WHERE 1=1`
	args := []any{}

	if q.Composition != nil {
		query += ` AND composition = ?`
		args = append(args, *q.Composition)
	}
	if q.Theme != nil {
		query += ` AND theme = ?`
		args = append(args, *q.Theme)
	}
	if q.Since != nil {
		query += ` AND created_at >= ?`
		args = append(args, q.Since.UTC().Format(timeLayout))
	}

	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query renders: %w", err)
	}
	defer rows.Close()

	var renders []*models.Render
	for rows.Next() {
		render, err := scanRender(rows)
		if err != nil {
			return nil, err
		}
		renders = append(renders, render)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating renders: %w", err)
	}

	return renders, nil
}

// Delete removes a render by ID.
func (r *RenderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM renders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete render: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrRenderNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRender(s scanner) (*models.Render, error) {
	var render models.Render
	var dataSource, planJSON sql.NullString
	var createdAt string

	err := s.Scan(
		&render.ID,
		&render.Composition,
		&render.Theme,
		&render.Palette,
		&render.FPS,
		&render.Frames,
		&render.FirstFrame,
		&render.LastFrame,
		&render.Fingerprint,
		&dataSource,
		&createdAt,
		&planJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRenderNotFound
		}
		return nil, fmt.Errorf("failed to scan render: %w", err)
	}

	if dataSource.Valid {
		render.DataSource = dataSource.String
	}
	if planJSON.Valid {
		render.Plan = []byte(planJSON.String)
	}
	if t, err := time.Parse(timeLayout, createdAt); err == nil {
		render.CreatedAt = t
	}

	return &render, nil
}

func nullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
