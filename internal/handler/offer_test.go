package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rayhanbri/metronest-server-new/internal/model"
	"github.com/rayhanbri/metronest-server-new/internal/repository"
	"github.com/rayhanbri/metronest-server-new/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memOffers struct {
	byID map[string]*model.Offer
	seq  int
}

func (m *memOffers) Create(_ context.Context, req *model.CreateOfferRequest) (*model.Offer, error) {
	m.seq++
	o := &model.Offer{
		ID:          fmt.Sprintf("offer-%d", m.seq),
		PropertyID:  req.PropertyID,
		BuyerEmail:  req.BuyerEmail,
		AgentEmail:  req.AgentEmail,
		OfferAmount: *req.OfferAmount,
		Status:      model.OfferPending,
		OfferedAt:   time.Now(),
	}
	m.byID[o.ID] = o
	return o, nil
}

func (m *memOffers) GetByID(_ context.Context, id string) (*model.Offer, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return o, nil
}

func (m *memOffers) SetStatus(_ context.Context, id, status string) error {
	o, ok := m.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.Status = status
	return nil
}

func (m *memOffers) RejectOthers(_ context.Context, propertyID, acceptedID string) error {
	for _, o := range m.byID {
		if o.PropertyID == propertyID && o.ID != acceptedID {
			o.Status = model.OfferRejected
		}
	}
	return nil
}

func (m *memOffers) MarkPaid(_ context.Context, id, transactionID string) error {
	o, ok := m.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.Status = model.OfferBought
	o.TransactionID = &transactionID
	return nil
}

func (m *memOffers) ByAgent(_ context.Context, _ string) ([]*model.Offer, error)     { return nil, nil }
func (m *memOffers) ByBuyer(_ context.Context, _ string) ([]*model.Offer, error)     { return nil, nil }
func (m *memOffers) SoldByAgent(_ context.Context, _ string) ([]*model.Offer, error) { return nil, nil }

type memProperties struct{ byID map[string]*model.Property }

func (m *memProperties) GetByID(_ context.Context, id string) (*model.Property, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

type memRoles struct{ roles map[string]string }

func (m *memRoles) GetByEmail(_ context.Context, email string) (*model.User, error) {
	role, ok := m.roles[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &model.User{ID: email, Email: email, Role: role}, nil
}

func offerTestApp() (*fiber.App, *memOffers) {
	offers := &memOffers{byID: map[string]*model.Offer{}}
	properties := &memProperties{byID: map[string]*model.Property{
		"prop-1": {ID: "prop-1", PriceMin: 1000, PriceMax: 2000, AgentEmail: "agent@example.com"},
	}}
	roles := &memRoles{roles: map[string]string{
		"buyer@example.com": model.RoleUser,
		"agent@example.com": model.RoleAgent,
	}}

	h := NewOfferHandler(service.NewOfferService(offers, properties, roles))

	app := fiber.New()
	app.Post("/offers", h.Create)
	app.Put("/offers/accept/:id", h.Accept)
	app.Put("/offers/mark-paid/:id", h.MarkPaid)
	return app, offers
}

func TestOfferCreateEndpoint(t *testing.T) {
	app, _ := offerTestApp()

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"valid offer", `{"propertyId":"prop-1","buyerEmail":"buyer@example.com","offerAmount":1500}`, 201},
		{"amount at priceMin", `{"propertyId":"prop-1","buyerEmail":"buyer@example.com","offerAmount":1000}`, 201},
		{"amount below range", `{"propertyId":"prop-1","buyerEmail":"buyer@example.com","offerAmount":999}`, 400},
		{"agent cannot offer", `{"propertyId":"prop-1","buyerEmail":"agent@example.com","offerAmount":1500}`, 403},
		{"unknown property", `{"propertyId":"prop-9","buyerEmail":"buyer@example.com","offerAmount":1500}`, 404},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/offers", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestOfferAcceptEndpoint(t *testing.T) {
	app, offers := offerTestApp()

	amount := 1500.0
	o1, _ := offers.Create(context.Background(), &model.CreateOfferRequest{PropertyID: "prop-1", BuyerEmail: "a@example.com", OfferAmount: &amount})
	o2, _ := offers.Create(context.Background(), &model.CreateOfferRequest{PropertyID: "prop-1", BuyerEmail: "b@example.com", OfferAmount: &amount})

	req := httptest.NewRequest("PUT", "/offers/accept/"+o1.ID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	assert.Equal(t, model.OfferAccepted, offers.byID[o1.ID].Status)
	assert.Equal(t, model.OfferRejected, offers.byID[o2.ID].Status)

	req = httptest.NewRequest("PUT", "/offers/accept/missing", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestOfferMarkPaidEndpoint(t *testing.T) {
	app, offers := offerTestApp()

	amount := 1500.0
	o, _ := offers.Create(context.Background(), &model.CreateOfferRequest{PropertyID: "prop-1", BuyerEmail: "a@example.com", OfferAmount: &amount})
	o.Status = model.OfferAccepted

	body, _ := json.Marshal(model.MarkPaidRequest{TransactionID: "pi_777"})
	req := httptest.NewRequest("PUT", "/offers/mark-paid/"+o.ID, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, model.OfferBought, offers.byID[o.ID].Status)
	require.NotNil(t, offers.byID[o.ID].TransactionID)
	assert.Equal(t, "pi_777", *offers.byID[o.ID].TransactionID)
}
