package repository

import (
	"context"
	"errors"

	"github.com/rayhanbri/metronest-server-new/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const wishlistColumns = `id, user_email, property_id, property_info, added_at`

type WishlistRepository struct {
	pool *pgxpool.Pool
}

func NewWishlistRepository(pool *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{pool: pool}
}

func scanWishlistItem(row pgx.Row) (*model.WishlistItem, error) {
	w := &model.WishlistItem{}
	err := row.Scan(&w.ID, &w.UserEmail, &w.PropertyID, &w.PropertyInfo, &w.AddedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

// Create inserts the bookmark. The (user_email, property_id) unique
// constraint rejects a second save of the same pair with ErrDuplicate.
func (r *WishlistRepository) Create(ctx context.Context, req *model.AddWishlistRequest) (*model.WishlistItem, error) {
	item, err := scanWishlistItem(r.pool.QueryRow(ctx, `
		INSERT INTO wishlists (user_email, property_id, property_info)
		VALUES ($1, $2, $3)
		RETURNING `+wishlistColumns,
		req.UserEmail, req.PropertyID, req.PropertyInfo,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return item, nil
}

func (r *WishlistRepository) ByUser(ctx context.Context, email string) ([]*model.WishlistItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+wishlistColumns+` FROM wishlists WHERE user_email = $1 ORDER BY added_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.WishlistItem
	for rows.Next() {
		w, err := scanWishlistItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

func (r *WishlistRepository) GetByID(ctx context.Context, id string) (*model.WishlistItem, error) {
	return scanWishlistItem(r.pool.QueryRow(ctx,
		`SELECT `+wishlistColumns+` FROM wishlists WHERE id = $1`, id))
}

func (r *WishlistRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM wishlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
