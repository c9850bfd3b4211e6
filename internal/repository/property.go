package repository

import (
	"context"
	"errors"

	"github.com/rayhanbri/metronest-server-new/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyColumns = `id, title, location, image, price_min, price_max,
	agent_name, agent_email, status, is_advertised, verified_at, created_at, updated_at`

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func scanProperty(row pgx.Row) (*model.Property, error) {
	p := &model.Property{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Location, &p.Image, &p.PriceMin, &p.PriceMax,
		&p.AgentName, &p.AgentEmail, &p.Status, &p.IsAdvertised, &p.VerifiedAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PropertyRepository) collect(rows pgx.Rows) ([]*model.Property, error) {
	defer rows.Close()
	var properties []*model.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (r *PropertyRepository) Create(ctx context.Context, req *model.CreatePropertyRequest) (*model.Property, error) {
	return scanProperty(r.pool.QueryRow(ctx, `
		INSERT INTO properties (title, location, image, price_min, price_max, agent_name, agent_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+propertyColumns,
		req.Title, req.Location, req.Image, req.PriceMin, req.PriceMax, req.AgentName, req.AgentEmail,
	))
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*model.Property, error) {
	return scanProperty(r.pool.QueryRow(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id))
}

// Update is a full-field replace with a refreshed update timestamp; the
// rejected-listing guard runs in the service before this is called.
func (r *PropertyRepository) Update(ctx context.Context, id string, req *model.UpdatePropertyRequest) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE properties
		SET title = $2, location = $3, image = $4, price_min = $5, price_max = $6,
		    agent_name = $7, agent_email = $8, status = $9, updated_at = NOW()
		WHERE id = $1
	`, id, req.Title, req.Location, req.Image, *req.PriceMin, *req.PriceMax,
		req.AgentName, req.AgentEmail, req.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PropertyRepository) SetStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE properties
		SET status = $2,
		    verified_at = CASE WHEN $2 = 'verified' THEN NOW() ELSE verified_at END,
		    updated_at = NOW()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Advertise is one-way; there is no un-advertise.
func (r *PropertyRepository) Advertise(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE properties SET is_advertised = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteVerifiedByAgent purges an agent's verified listings. Pending and
// rejected listings are left untouched. Used by the fraud demotion cascade.
func (r *PropertyRepository) DeleteVerifiedByAgent(ctx context.Context, agentEmail string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM properties WHERE agent_email = $1 AND status = 'verified'`, agentEmail)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PropertyRepository) All(ctx context.Context) ([]*model.Property, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+propertyColumns+` FROM properties ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *PropertyRepository) ByAgent(ctx context.Context, agentEmail string) ([]*model.Property, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE agent_email = $1 ORDER BY created_at DESC`,
		agentEmail)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *PropertyRepository) Verified(ctx context.Context) ([]*model.Property, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE status = 'verified' ORDER BY verified_at DESC`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// Advertised returns the most recently verified advertised listings,
// capped at limit.
func (r *PropertyRepository) Advertised(ctx context.Context, limit int) ([]*model.Property, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE is_advertised = TRUE AND status = 'verified'
		ORDER BY verified_at DESC NULLS LAST
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}
