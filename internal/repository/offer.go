package repository

import (
	"context"
	"errors"

	"github.com/rayhanbri/metronest-server-new/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const offerColumns = `id, property_id, property_title, property_location, property_image,
	agent_name, agent_email, buyer_name, buyer_email, offer_amount, buying_date,
	status, transaction_id, offered_at`

type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{pool: pool}
}

func scanOffer(row pgx.Row) (*model.Offer, error) {
	o := &model.Offer{}
	err := row.Scan(
		&o.ID, &o.PropertyID, &o.PropertyTitle, &o.PropertyLocation, &o.PropertyImage,
		&o.AgentName, &o.AgentEmail, &o.BuyerName, &o.BuyerEmail, &o.OfferAmount,
		&o.BuyingDate, &o.Status, &o.TransactionID, &o.OfferedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *OfferRepository) collect(rows pgx.Rows) ([]*model.Offer, error) {
	defer rows.Close()
	var offers []*model.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *OfferRepository) Create(ctx context.Context, req *model.CreateOfferRequest) (*model.Offer, error) {
	return scanOffer(r.pool.QueryRow(ctx, `
		INSERT INTO offers (property_id, property_title, property_location, property_image,
			agent_name, agent_email, buyer_name, buyer_email, offer_amount, buying_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+offerColumns,
		req.PropertyID, req.PropertyTitle, req.PropertyLocation, req.PropertyImage,
		req.AgentName, req.AgentEmail, req.BuyerName, req.BuyerEmail, *req.OfferAmount, req.BuyingDate,
	))
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (*model.Offer, error) {
	return scanOffer(r.pool.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE id = $1`, id))
}

// SetStatus flips a single offer. Accepting trips the partial unique
// index when another offer on the same property is already accepted or
// bought, which surfaces as ErrDuplicate.
func (r *OfferRepository) SetStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE offers SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RejectOthers sweeps every competing offer on the property to rejected.
// Runs unconditionally even when no siblings exist.
func (r *OfferRepository) RejectOthers(ctx context.Context, propertyID, acceptedID string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE offers SET status = 'rejected' WHERE property_id = $1 AND id <> $2`,
		propertyID, acceptedID)
	return err
}

func (r *OfferRepository) MarkPaid(ctx context.Context, id, transactionID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE offers SET status = 'bought', transaction_id = $2 WHERE id = $1`,
		id, transactionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OfferRepository) ByAgent(ctx context.Context, agentEmail string) ([]*model.Offer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE agent_email = $1 ORDER BY offered_at DESC`,
		agentEmail)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *OfferRepository) ByBuyer(ctx context.Context, buyerEmail string) ([]*model.Offer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE buyer_email = $1 ORDER BY offered_at DESC`,
		buyerEmail)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *OfferRepository) SoldByAgent(ctx context.Context, agentEmail string) ([]*model.Offer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE agent_email = $1 AND status = 'bought' ORDER BY offered_at DESC`,
		agentEmail)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}
