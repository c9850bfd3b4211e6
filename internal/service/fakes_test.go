package service

import (
	"context"
	"time"

	"github.com/rayhanbri/metronest-server-new/internal/identity"
	"github.com/rayhanbri/metronest-server-new/internal/model"
	"github.com/rayhanbri/metronest-server-new/internal/repository"

	"github.com/google/uuid"
)

// In-memory store fakes standing in for the postgres repositories.

type fakeUserStore struct {
	users map[string]*model.User // keyed by id
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) add(name, email, role string) *model.User {
	u := &model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserStore) Create(_ context.Context, name, email, photoURL, role string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	u := f.add(name, email, role)
	u.PhotoURL = photoURL
	return u, nil
}

func (f *fakeUserStore) List(_ context.Context) ([]*model.User, error) {
	var out []*model.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) SetRole(_ context.Context, id, role string) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakePropertyStore struct {
	properties map[string]*model.Property
}

func newFakePropertyStore() *fakePropertyStore {
	return &fakePropertyStore{properties: map[string]*model.Property{}}
}

func (f *fakePropertyStore) add(agentEmail, status string, priceMin, priceMax float64) *model.Property {
	p := &model.Property{
		ID:         uuid.NewString(),
		Title:      "Test Property",
		Location:   "Test City",
		Image:      "https://example.com/p.jpg",
		PriceMin:   priceMin,
		PriceMax:   priceMax,
		AgentEmail: agentEmail,
		Status:     status,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	f.properties[p.ID] = p
	return p
}

func (f *fakePropertyStore) Create(_ context.Context, req *model.CreatePropertyRequest) (*model.Property, error) {
	p := f.add(req.AgentEmail, model.StatusPending, req.PriceMin, req.PriceMax)
	p.Title = req.Title
	p.Location = req.Location
	p.Image = req.Image
	p.AgentName = req.AgentName
	return p, nil
}

func (f *fakePropertyStore) GetByID(_ context.Context, id string) (*model.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakePropertyStore) Update(_ context.Context, id string, req *model.UpdatePropertyRequest) error {
	p, ok := f.properties[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Title = req.Title
	p.Location = req.Location
	p.Image = req.Image
	p.PriceMin = *req.PriceMin
	p.PriceMax = *req.PriceMax
	p.AgentName = req.AgentName
	p.AgentEmail = req.AgentEmail
	p.Status = req.Status
	p.UpdatedAt = time.Now()
	return nil
}

func (f *fakePropertyStore) SetStatus(_ context.Context, id, status string) error {
	p, ok := f.properties[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Status = status
	if status == model.StatusVerified {
		now := time.Now()
		p.VerifiedAt = &now
	}
	return nil
}

func (f *fakePropertyStore) Advertise(_ context.Context, id string) error {
	p, ok := f.properties[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.IsAdvertised = true
	return nil
}

func (f *fakePropertyStore) Delete(_ context.Context, id string) error {
	if _, ok := f.properties[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.properties, id)
	return nil
}

func (f *fakePropertyStore) DeleteVerifiedByAgent(_ context.Context, agentEmail string) (int64, error) {
	var removed int64
	for id, p := range f.properties {
		if p.AgentEmail == agentEmail && p.Status == model.StatusVerified {
			delete(f.properties, id)
			removed++
		}
	}
	return removed, nil
}

func (f *fakePropertyStore) All(_ context.Context) ([]*model.Property, error) {
	var out []*model.Property
	for _, p := range f.properties {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePropertyStore) ByAgent(_ context.Context, agentEmail string) ([]*model.Property, error) {
	var out []*model.Property
	for _, p := range f.properties {
		if p.AgentEmail == agentEmail {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePropertyStore) Verified(_ context.Context) ([]*model.Property, error) {
	var out []*model.Property
	for _, p := range f.properties {
		if p.Status == model.StatusVerified {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePropertyStore) Advertised(_ context.Context, limit int) ([]*model.Property, error) {
	var out []*model.Property
	for _, p := range f.properties {
		if p.IsAdvertised && p.Status == model.StatusVerified {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeOfferStore struct {
	offers map[string]*model.Offer
}

func newFakeOfferStore() *fakeOfferStore {
	return &fakeOfferStore{offers: map[string]*model.Offer{}}
}

func (f *fakeOfferStore) add(propertyID, buyerEmail, agentEmail string, amount float64) *model.Offer {
	o := &model.Offer{
		ID:          uuid.NewString(),
		PropertyID:  propertyID,
		BuyerEmail:  buyerEmail,
		AgentEmail:  agentEmail,
		OfferAmount: amount,
		Status:      model.OfferPending,
		OfferedAt:   time.Now(),
	}
	f.offers[o.ID] = o
	return o
}

func (f *fakeOfferStore) Create(_ context.Context, req *model.CreateOfferRequest) (*model.Offer, error) {
	return f.add(req.PropertyID, req.BuyerEmail, req.AgentEmail, *req.OfferAmount), nil
}

func (f *fakeOfferStore) GetByID(_ context.Context, id string) (*model.Offer, error) {
	o, ok := f.offers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return o, nil
}

// SetStatus mirrors the partial unique index: a second accepted or bought
// offer on the same property is a duplicate.
func (f *fakeOfferStore) SetStatus(_ context.Context, id, status string) error {
	o, ok := f.offers[id]
	if !ok {
		return repository.ErrNotFound
	}
	if status == model.OfferAccepted || status == model.OfferBought {
		for _, other := range f.offers {
			if other.ID != id && other.PropertyID == o.PropertyID &&
				(other.Status == model.OfferAccepted || other.Status == model.OfferBought) {
				return repository.ErrDuplicate
			}
		}
	}
	o.Status = status
	return nil
}

func (f *fakeOfferStore) RejectOthers(_ context.Context, propertyID, acceptedID string) error {
	for _, o := range f.offers {
		if o.PropertyID == propertyID && o.ID != acceptedID {
			o.Status = model.OfferRejected
		}
	}
	return nil
}

func (f *fakeOfferStore) MarkPaid(_ context.Context, id, transactionID string) error {
	o, ok := f.offers[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.Status = model.OfferBought
	o.TransactionID = &transactionID
	return nil
}

func (f *fakeOfferStore) ByAgent(_ context.Context, agentEmail string) ([]*model.Offer, error) {
	var out []*model.Offer
	for _, o := range f.offers {
		if o.AgentEmail == agentEmail {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOfferStore) ByBuyer(_ context.Context, buyerEmail string) ([]*model.Offer, error) {
	var out []*model.Offer
	for _, o := range f.offers {
		if o.BuyerEmail == buyerEmail {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOfferStore) SoldByAgent(_ context.Context, agentEmail string) ([]*model.Offer, error) {
	var out []*model.Offer
	for _, o := range f.offers {
		if o.AgentEmail == agentEmail && o.Status == model.OfferBought {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeWishlistStore struct {
	items map[string]*model.WishlistItem
}

func newFakeWishlistStore() *fakeWishlistStore {
	return &fakeWishlistStore{items: map[string]*model.WishlistItem{}}
}

func (f *fakeWishlistStore) Create(_ context.Context, req *model.AddWishlistRequest) (*model.WishlistItem, error) {
	for _, item := range f.items {
		if item.UserEmail == req.UserEmail && item.PropertyID == req.PropertyID {
			return nil, repository.ErrDuplicate
		}
	}
	item := &model.WishlistItem{
		ID:           uuid.NewString(),
		UserEmail:    req.UserEmail,
		PropertyID:   req.PropertyID,
		PropertyInfo: req.PropertyInfo,
		AddedAt:      time.Now(),
	}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeWishlistStore) ByUser(_ context.Context, email string) ([]*model.WishlistItem, error) {
	var out []*model.WishlistItem
	for _, item := range f.items {
		if item.UserEmail == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeWishlistStore) GetByID(_ context.Context, id string) (*model.WishlistItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return item, nil
}

func (f *fakeWishlistStore) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeReviewStore struct {
	reviews map[string]*model.Review
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: map[string]*model.Review{}}
}

func (f *fakeReviewStore) Create(_ context.Context, req *model.CreateReviewRequest) (*model.Review, error) {
	rv := &model.Review{
		ID:         uuid.NewString(),
		PropertyID: req.PropertyID,
		UserEmail:  req.UserEmail,
		UserName:   req.UserName,
		Role:       req.Role,
		ReviewText: req.ReviewText,
		CreatedAt:  time.Now(),
	}
	f.reviews[rv.ID] = rv
	return rv, nil
}

func (f *fakeReviewStore) Latest(_ context.Context, limit int) ([]*model.Review, error) {
	var out []*model.Review
	for _, rv := range f.reviews {
		out = append(out, rv)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeReviewStore) All(_ context.Context) ([]*model.Review, error) {
	var out []*model.Review
	for _, rv := range f.reviews {
		out = append(out, rv)
	}
	return out, nil
}

func (f *fakeReviewStore) ByProperty(_ context.Context, propertyID string) ([]*model.Review, error) {
	var out []*model.Review
	for _, rv := range f.reviews {
		if rv.PropertyID == propertyID && rv.Role == model.RoleUser {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (f *fakeReviewStore) ByUser(_ context.Context, email string) ([]*model.Review, error) {
	var out []*model.Review
	for _, rv := range f.reviews {
		if rv.UserEmail == email {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (f *fakeReviewStore) Delete(_ context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.reviews, id)
	return nil
}

// fakeIdentityProvider records remote deletions and can be set to fail.
type fakeIdentityProvider struct {
	deleted   []string
	deleteErr error
}

func (f *fakeIdentityProvider) VerifyToken(_ context.Context, token string) (*identity.Identity, error) {
	return &identity.Identity{Email: token}, nil
}

func (f *fakeIdentityProvider) DeleteUserByEmail(_ context.Context, email string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, email)
	return nil
}
