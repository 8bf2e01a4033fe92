package domain

import "strings"

// EntityType tags one kind of tenant-owned record.
type EntityType string

const (
	EntityClients      EntityType = "clients"
	EntityServices     EntityType = "services"
	EntityProducts     EntityType = "products"
	EntityAppointments EntityType = "appointments"
	EntityFormations   EntityType = "formations"
	EntityGiftCards    EntityType = "giftcards"
	EntityPackages     EntityType = "packages"
	EntityPromoCodes   EntityType = "promocodes"
	EntityReviews      EntityType = "reviews"
	EntityNewsletter   EntityType = "newsletter"

	// EntityUsers is a lookup target only; user accounts are never imported.
	EntityUsers EntityType = "users"
)

func ParseEntityType(raw string) EntityType {
	return EntityType(strings.ToLower(strings.TrimSpace(raw)))
}

func (t EntityType) String() string {
	return string(t)
}
