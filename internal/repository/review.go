package repository

import (
	"context"
	"errors"

	"github.com/rayhanbri/metronest-server-new/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reviewColumns = `id, property_id, user_email, user_name, user_photo, role, review_text, created_at`

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func scanReview(row pgx.Row) (*model.Review, error) {
	rv := &model.Review{}
	err := row.Scan(&rv.ID, &rv.PropertyID, &rv.UserEmail, &rv.UserName,
		&rv.UserPhoto, &rv.Role, &rv.ReviewText, &rv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (r *ReviewRepository) collect(rows pgx.Rows) ([]*model.Review, error) {
	defer rows.Close()
	var reviews []*model.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Create(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error) {
	return scanReview(r.pool.QueryRow(ctx, `
		INSERT INTO reviews (property_id, user_email, user_name, user_photo, role, review_text)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+reviewColumns,
		req.PropertyID, req.UserEmail, req.UserName, req.UserPhoto, req.Role, req.ReviewText,
	))
}

func (r *ReviewRepository) Latest(ctx context.Context, limit int) ([]*model.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *ReviewRepository) All(ctx context.Context) ([]*model.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// ByProperty returns end-user reviews only; agent and admin feedback is
// excluded from the public listing page.
func (r *ReviewRepository) ByProperty(ctx context.Context, propertyID string) ([]*model.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+reviewColumns+` FROM reviews
		WHERE property_id = $1 AND role = 'user'
		ORDER BY created_at DESC
	`, propertyID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *ReviewRepository) ByUser(ctx context.Context, email string) ([]*model.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE user_email = $1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
