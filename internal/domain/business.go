package domain

// Business is a local commerce entry in the city catalog.
type Business struct {
	ID           string
	Name         string
	Category     string
	CategorySlug string
	Tags         []string
	Neighborhood *string
	Hours        *string // free-form, parsed lazily by the search core
	Phone        *string
	WhatsApp     *string
	Images       []string
	Verified     bool
	Description  *string
	Address      *string

	// Rating pair extracted from the description at ingest time, when the
	// "4,8 (120)" pattern is present.
	Rating      *float64
	RatingCount *int

	// Structured feature flags from the upstream export. Each true flag
	// contributes one canonical tag to the effective tag set.
	AcceptsCard bool
	Delivery    bool
	EatNow      bool
	HomeService bool
	FreeQuote   bool
	Service24h  bool
	PetFriendly bool

	RawJSON []byte // full upstream payload
}
