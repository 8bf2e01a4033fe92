package ports

// Store groups the tenant-scoped repositories the import pipeline writes to.
type Store struct {
	Clients      ClientRepository
	Services     ServiceRepository
	Products     ProductRepository
	Appointments AppointmentRepository
	Formations   FormationRepository
	GiftCards    GiftCardRepository
	Packages     PackageRepository
	PromoCodes   PromoCodeRepository
	Reviews      ReviewRepository
	Newsletter   NewsletterRepository
	Users        UserRepository
}
