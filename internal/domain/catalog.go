package domain

type ListingType string

const (
	ListingSale     ListingType = "venda"
	ListingDonation ListingType = "doacao"
)

// Listing is a classified ad (sale or donation).
type Listing struct {
	ID           string
	Type         ListingType
	Title        string
	Price        *float64 // sale only
	Neighborhood *string
	Images       []string
	WhatsApp     *string
	CreatedAt    *string // ISO date-time
	Highlight    bool
	RawJSON      []byte
}

// Deal is a time-limited promotion, optionally tied to a business.
type Deal struct {
	ID           string
	Title        string
	Subtitle     *string
	PriceText    string
	ValidUntil   string // ISO date; compared lexically against "today"
	BusinessID   *string
	BusinessName *string
	Image        *string
	WhatsApp     *string
	Sponsored    bool
	RawJSON      []byte
}

type Event struct {
	ID        string
	Title     string
	StartsAt  string // ISO date-time
	Location  string
	PriceText string
	Tags      []string
	Image     *string
	Contact   *string
	RawJSON   []byte
}

type News struct {
	ID      string
	Title   string
	Tag     string
	Snippet string
	Date    string // ISO date
	Image   *string
	RawJSON []byte
}

// Catalog is the full in-memory snapshot the search engine scans. Slices
// keep upstream order; filtering is stable and never mutates them.
type Catalog struct {
	Businesses []Business
	Listings   []Listing
	Deals      []Deal
	Events     []Event
	News       []News
}
