// Package policy holds the role and status gates shared by the services,
// so the same rule is never re-implemented per endpoint.
package policy

import "github.com/rayhanbri/metronest-server-new/internal/model"

func ValidRole(role string) bool {
	switch role {
	case model.RoleUser, model.RoleAgent, model.RoleAdmin, model.RoleFraud:
		return true
	}
	return false
}

// ValidReviewStatus reports whether status is an admin verification
// decision. Listings are never moved back to pending.
func ValidReviewStatus(status string) bool {
	return status == model.StatusVerified || status == model.StatusRejected
}

// CanListProperty: fraud agents are locked out of creating listings.
func CanListProperty(role string) bool {
	return role != model.RoleFraud
}

// CanEditProperty: a rejected listing is immutable to field edits.
func CanEditProperty(status string) bool {
	return status != model.StatusRejected
}

// CanMakeOffer: only regular end users may place offers.
func CanMakeOffer(role string) bool {
	return role == model.RoleUser
}

// CanMarkFraud: the fraud demotion applies to agents only; users, admins
// and already-fraud accounts are untouched.
func CanMarkFraud(role string) bool {
	return role == model.RoleAgent
}

// OfferInRange checks the inclusive [priceMin, priceMax] window.
func OfferInRange(amount, priceMin, priceMax float64) bool {
	return amount >= priceMin && amount <= priceMax
}
