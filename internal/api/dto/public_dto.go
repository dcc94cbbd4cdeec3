package dto

import (
	"time"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
	"github.com/spec-kit/pilgrim-travel/internal/locale"
)

// Public views. Bilingual attributes collapse to a single display value for
// the negotiated locale, falling back to the other language when blank.

type PublicLocation struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Country   string `json:"country"`
	SortOrder int    `json:"sort_order"`
}

func NewPublicLocation(l *domain.Location, loc locale.Locale) PublicLocation {
	rec := locale.FromStruct(l)
	return PublicLocation{
		ID:        l.ID,
		Name:      locale.Resolve(rec, "name", loc),
		City:      locale.Resolve(rec, "city", loc),
		Country:   l.Country,
		SortOrder: l.SortOrder,
	}
}

type PublicHotel struct {
	ID               string   `json:"id"`
	LocationID       *string  `json:"location_id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Address          string   `json:"address"`
	Stars            int      `json:"stars"`
	DistanceToHaramM int      `json:"distance_to_haram_m"`
	ImageURL         string   `json:"image_url"`
	Gallery          []string `json:"gallery"`
}

func NewPublicHotel(h *domain.Hotel, loc locale.Locale) PublicHotel {
	rec := locale.FromStruct(h)
	gallery := h.Gallery
	if gallery == nil {
		gallery = []string{}
	}
	return PublicHotel{
		ID:               h.ID,
		LocationID:       h.LocationID,
		Name:             locale.Resolve(rec, "name", loc),
		Description:      locale.Resolve(rec, "description", loc),
		Address:          locale.Resolve(rec, "address", loc),
		Stars:            h.Stars,
		DistanceToHaramM: h.DistanceToHaramM,
		ImageURL:         h.ImageURL,
		Gallery:          gallery,
	}
}

type PublicRoom struct {
	ID          string  `json:"id"`
	HotelID     string  `json:"hotel_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	ImageURL    string  `json:"image_url"`
}

func NewPublicRoom(r *domain.Room, loc locale.Locale) PublicRoom {
	rec := locale.FromStruct(r)
	return PublicRoom{
		ID:          r.ID,
		HotelID:     r.HotelID,
		Name:        locale.Resolve(rec, "name", loc),
		Description: locale.Resolve(rec, "description", loc),
		Capacity:    r.Capacity,
		Price:       r.Price,
		Currency:    r.Currency,
		ImageURL:    r.ImageURL,
	}
}

type PublicCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	SortOrder   int    `json:"sort_order"`
}

func NewPublicCategory(c *domain.Category, loc locale.Locale) PublicCategory {
	rec := locale.FromStruct(c)
	return PublicCategory{
		ID:          c.ID,
		Name:        locale.Resolve(rec, "name", loc),
		Description: locale.Resolve(rec, "description", loc),
		Slug:        c.Slug,
		SortOrder:   c.SortOrder,
	}
}

type PublicPackage struct {
	ID           string     `json:"id"`
	CategoryID   *string    `json:"category_id"`
	HotelID      *string    `json:"hotel_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DurationDays int        `json:"duration_days"`
	Price        float64    `json:"price"`
	Currency     string     `json:"currency"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	ImageURL     string     `json:"image_url"`
	IsFeatured   bool       `json:"is_featured"`
}

func NewPublicPackage(p *domain.TravelPackage, loc locale.Locale) PublicPackage {
	rec := locale.FromStruct(p)
	return PublicPackage{
		ID:           p.ID,
		CategoryID:   p.CategoryID,
		HotelID:      p.HotelID,
		Title:        locale.Resolve(rec, "title", loc),
		Description:  locale.Resolve(rec, "description", loc),
		DurationDays: p.DurationDays,
		Price:        p.Price,
		Currency:     p.Currency,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		ImageURL:     p.ImageURL,
		IsFeatured:   p.IsFeatured,
	}
}

type PublicEvent struct {
	ID          string     `json:"id"`
	LocationID  *string    `json:"location_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	ImageURL    string     `json:"image_url"`
}

func NewPublicEvent(e *domain.Event, loc locale.Locale) PublicEvent {
	rec := locale.FromStruct(e)
	return PublicEvent{
		ID:          e.ID,
		LocationID:  e.LocationID,
		Title:       locale.Resolve(rec, "title", loc),
		Description: locale.Resolve(rec, "description", loc),
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		ImageURL:    e.ImageURL,
	}
}

type PublicTransportation struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	VehicleType domain.VehicleType `json:"vehicle_type"`
	Capacity    int                `json:"capacity"`
	Price       float64            `json:"price"`
	Currency    string             `json:"currency"`
	ImageURL    string             `json:"image_url"`
}

func NewPublicTransportation(t *domain.Transportation, loc locale.Locale) PublicTransportation {
	rec := locale.FromStruct(t)
	return PublicTransportation{
		ID:          t.ID,
		Name:        locale.Resolve(rec, "name", loc),
		Description: locale.Resolve(rec, "description", loc),
		VehicleType: t.VehicleType,
		Capacity:    t.Capacity,
		Price:       t.Price,
		Currency:    t.Currency,
		ImageURL:    t.ImageURL,
	}
}

type PublicVisa struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Requirements   string          `json:"requirements"`
	VisaType       domain.VisaType `json:"visa_type"`
	ProcessingDays int             `json:"processing_days"`
	Price          float64         `json:"price"`
	Currency       string          `json:"currency"`
}

func NewPublicVisa(v *domain.Visa, loc locale.Locale) PublicVisa {
	rec := locale.FromStruct(v)
	return PublicVisa{
		ID:             v.ID,
		Title:          locale.Resolve(rec, "title", loc),
		Description:    locale.Resolve(rec, "description", loc),
		Requirements:   locale.Resolve(rec, "requirements", loc),
		VisaType:       v.VisaType,
		ProcessingDays: v.ProcessingDays,
		Price:          v.Price,
		Currency:       v.Currency,
	}
}

type PublicBlogPost struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	ContentHTML   string     `json:"content_html"`
	CoverImageURL string     `json:"cover_image_url"`
	Author        string     `json:"author"`
	PublishedAt   *time.Time `json:"published_at"`
}

// NewPublicBlogPost resolves the post for loc and renders its markdown body.
func NewPublicBlogPost(b *domain.BlogPost, loc locale.Locale) (PublicBlogPost, error) {
	rec := locale.FromStruct(b)
	content := locale.Resolve(rec, "content", loc)
	html, err := RenderMarkdown(content)
	if err != nil {
		return PublicBlogPost{}, err
	}
	return PublicBlogPost{
		ID:            b.ID,
		Title:         locale.Resolve(rec, "title", loc),
		Slug:          b.Slug,
		Excerpt:       locale.Resolve(rec, "excerpt", loc),
		Content:       content,
		ContentHTML:   html,
		CoverImageURL: b.CoverImageURL,
		Author:        b.Author,
		PublishedAt:   b.PublishedAt,
	}, nil
}

type PublicTestimonial struct {
	ID             string `json:"id"`
	AuthorName     string `json:"author_name"`
	AuthorLocation string `json:"author_location"`
	Content        string `json:"content"`
	Rating         int    `json:"rating"`
}

func NewPublicTestimonial(t *domain.Testimonial, loc locale.Locale) PublicTestimonial {
	rec := locale.FromStruct(t)
	return PublicTestimonial{
		ID:             t.ID,
		AuthorName:     t.AuthorName,
		AuthorLocation: t.AuthorLocation,
		Content:        locale.Resolve(rec, "content", loc),
		Rating:         t.Rating,
	}
}
