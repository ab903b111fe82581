package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"procura_uai/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
func nullF64(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}
func nullInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}

// businessFlags is the JSON shape of the structured feature flags column.
type businessFlags struct {
	AcceptsCard bool `json:"accepts_card"`
	Delivery    bool `json:"delivery"`
	EatNow      bool `json:"eat_now"`
	HomeService bool `json:"home_service"`
	FreeQuote   bool `json:"free_quote"`
	Service24h  bool `json:"service_24h"`
	PetFriendly bool `json:"pet_friendly"`
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertBusiness(ctx context.Context, b domain.Business) error {
	tags, _ := json.Marshal(b.Tags)
	imgs, _ := json.Marshal(b.Images)
	flags, _ := json.Marshal(businessFlags{
		AcceptsCard: b.AcceptsCard,
		Delivery:    b.Delivery,
		EatNow:      b.EatNow,
		HomeService: b.HomeService,
		FreeQuote:   b.FreeQuote,
		Service24h:  b.Service24h,
		PetFriendly: b.PetFriendly,
	})
	_, err := r.db.ExecContext(ctx, upsertBusinessSQL,
		b.ID,
		b.Name,
		b.Category,
		b.CategorySlug,
		string(tags),
		valStr(b.Neighborhood),
		valStr(b.Hours),
		valStr(b.Phone),
		valStr(b.WhatsApp),
		string(imgs),
		b.Verified,
		valStr(b.Description),
		valStr(b.Address),
		valF64(b.Rating),
		valInt(b.RatingCount),
		string(flags),
		string(b.RawJSON),
	)
	return err
}

func (r *Repo) UpsertListing(ctx context.Context, l domain.Listing) error {
	imgs, _ := json.Marshal(l.Images)
	_, err := r.db.ExecContext(ctx, upsertListingSQL,
		l.ID,
		string(l.Type),
		l.Title,
		valF64(l.Price),
		valStr(l.Neighborhood),
		string(imgs),
		valStr(l.WhatsApp),
		valStr(l.CreatedAt),
		l.Highlight,
		string(l.RawJSON),
	)
	return err
}

func (r *Repo) UpsertDeal(ctx context.Context, d domain.Deal) error {
	_, err := r.db.ExecContext(ctx, upsertDealSQL,
		d.ID,
		d.Title,
		valStr(d.Subtitle),
		d.PriceText,
		d.ValidUntil,
		valStr(d.BusinessID),
		valStr(d.BusinessName),
		valStr(d.Image),
		valStr(d.WhatsApp),
		d.Sponsored,
		string(d.RawJSON),
	)
	return err
}

func (r *Repo) UpsertEvent(ctx context.Context, e domain.Event) error {
	tags, _ := json.Marshal(e.Tags)
	_, err := r.db.ExecContext(ctx, upsertEventSQL,
		e.ID,
		e.Title,
		e.StartsAt,
		e.Location,
		e.PriceText,
		string(tags),
		valStr(e.Image),
		valStr(e.Contact),
		string(e.RawJSON),
	)
	return err
}

func (r *Repo) UpsertNews(ctx context.Context, n domain.News) error {
	_, err := r.db.ExecContext(ctx, upsertNewsSQL,
		n.ID,
		n.Title,
		n.Tag,
		n.Snippet,
		n.Date,
		valStr(n.Image),
		string(n.RawJSON),
	)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, collection string, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, collection, status, reason)
	return err
}

// scanBusiness reads one row of the shared business column list.
func scanBusiness(scan func(dest ...any) error) (domain.Business, error) {
	var b domain.Business
	var neighborhood, hours, phone, whatsapp, description, address sql.NullString
	var tagsJSON, imagesJSON, flagsJSON []byte
	var rating sql.NullFloat64
	var ratingCount sql.NullInt64

	if err := scan(
		&b.ID, &b.Name, &b.Category, &b.CategorySlug,
		&tagsJSON, &neighborhood, &hours, &phone, &whatsapp,
		&imagesJSON, &b.Verified, &description, &address,
		&rating, &ratingCount, &flagsJSON,
	); err != nil {
		return domain.Business{}, err
	}

	b.Neighborhood = nullStr(neighborhood)
	b.Hours = nullStr(hours)
	b.Phone = nullStr(phone)
	b.WhatsApp = nullStr(whatsapp)
	b.Description = nullStr(description)
	b.Address = nullStr(address)
	b.Rating = nullF64(rating)
	b.RatingCount = nullInt(ratingCount)
	_ = json.Unmarshal(tagsJSON, &b.Tags)
	_ = json.Unmarshal(imagesJSON, &b.Images)

	var fl businessFlags
	if err := json.Unmarshal(flagsJSON, &fl); err == nil {
		b.AcceptsCard = fl.AcceptsCard
		b.Delivery = fl.Delivery
		b.EatNow = fl.EatNow
		b.HomeService = fl.HomeService
		b.FreeQuote = fl.FreeQuote
		b.Service24h = fl.Service24h
		b.PetFriendly = fl.PetFriendly
	}
	return b, nil
}

func (r *Repo) GetBusiness(ctx context.Context, id string) (domain.Business, error) {
	row := r.db.QueryRowContext(ctx, getBusinessSQL, id)
	b, err := scanBusiness(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Business{}, domain.ErrNotFound
	}
	return b, err
}

func (r *Repo) Snapshot(ctx context.Context) (domain.Catalog, error) {
	var cat domain.Catalog

	rows, err := r.db.QueryContext(ctx, listBusinessesSQL)
	if err != nil {
		return domain.Catalog{}, err
	}
	defer rows.Close()
	for rows.Next() {
		b, err := scanBusiness(rows.Scan)
		if err != nil {
			return domain.Catalog{}, err
		}
		cat.Businesses = append(cat.Businesses, b)
	}
	if err := rows.Err(); err != nil {
		return domain.Catalog{}, err
	}

	if cat.Listings, err = r.listListings(ctx); err != nil {
		return domain.Catalog{}, err
	}
	if cat.Deals, err = r.listDeals(ctx); err != nil {
		return domain.Catalog{}, err
	}
	if cat.Events, err = r.listEvents(ctx); err != nil {
		return domain.Catalog{}, err
	}
	if cat.News, err = r.listNews(ctx); err != nil {
		return domain.Catalog{}, err
	}
	return cat, nil
}

func (r *Repo) listListings(ctx context.Context) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, listListingsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		var l domain.Listing
		var typ string
		var price sql.NullFloat64
		var neighborhood, whatsapp, createdAt sql.NullString
		var imagesJSON []byte
		if err := rows.Scan(&l.ID, &typ, &l.Title, &price, &neighborhood,
			&imagesJSON, &whatsapp, &createdAt, &l.Highlight); err != nil {
			return nil, err
		}
		l.Type = domain.ListingType(typ)
		l.Price = nullF64(price)
		l.Neighborhood = nullStr(neighborhood)
		l.WhatsApp = nullStr(whatsapp)
		l.CreatedAt = nullStr(createdAt)
		_ = json.Unmarshal(imagesJSON, &l.Images)
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *Repo) listDeals(ctx context.Context) ([]domain.Deal, error) {
	rows, err := r.db.QueryContext(ctx, listDealsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Deal
	for rows.Next() {
		var d domain.Deal
		var subtitle, businessID, businessName, image, whatsapp sql.NullString
		if err := rows.Scan(&d.ID, &d.Title, &subtitle, &d.PriceText, &d.ValidUntil,
			&businessID, &businessName, &image, &whatsapp, &d.Sponsored); err != nil {
			return nil, err
		}
		d.Subtitle = nullStr(subtitle)
		d.BusinessID = nullStr(businessID)
		d.BusinessName = nullStr(businessName)
		d.Image = nullStr(image)
		d.WhatsApp = nullStr(whatsapp)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *Repo) listEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listEventsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		var e domain.Event
		var image, contact sql.NullString
		var tagsJSON []byte
		if err := rows.Scan(&e.ID, &e.Title, &e.StartsAt, &e.Location, &e.PriceText,
			&tagsJSON, &image, &contact); err != nil {
			return nil, err
		}
		e.Image = nullStr(image)
		e.Contact = nullStr(contact)
		_ = json.Unmarshal(tagsJSON, &e.Tags)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) listNews(ctx context.Context) ([]domain.News, error) {
	rows, err := r.db.QueryContext(ctx, listNewsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.News
	for rows.Next() {
		var n domain.News
		var image sql.NullString
		if err := rows.Scan(&n.ID, &n.Title, &n.Tag, &n.Snippet, &n.Date, &image); err != nil {
			return nil, err
		}
		n.Image = nullStr(image)
		out = append(out, n)
	}
	return out, rows.Err()
}
