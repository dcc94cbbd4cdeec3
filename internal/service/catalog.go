package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
	"github.com/spec-kit/pilgrim-travel/internal/events"
	"github.com/spec-kit/pilgrim-travel/internal/repository"
)

// CatalogRepositories bundles the storage behind every catalog resource.
type CatalogRepositories struct {
	Locations      repository.CatalogRepository[domain.Location]
	Hotels         repository.CatalogRepository[domain.Hotel]
	Rooms          repository.CatalogRepository[domain.Room]
	Categories     repository.CatalogRepository[domain.Category]
	Packages       repository.CatalogRepository[domain.TravelPackage]
	Events         repository.CatalogRepository[domain.Event]
	Transportation repository.CatalogRepository[domain.Transportation]
	Visas          repository.CatalogRepository[domain.Visa]
	BlogPosts      repository.CatalogRepository[domain.BlogPost]
	Testimonials   repository.CatalogRepository[domain.Testimonial]
}

// Catalog groups the resource services.
type Catalog struct {
	Locations      *CatalogService[domain.Location]
	Hotels         *CatalogService[domain.Hotel]
	Rooms          *CatalogService[domain.Room]
	Categories     *CatalogService[domain.Category]
	Packages       *CatalogService[domain.TravelPackage]
	Events         *CatalogService[domain.Event]
	Transportation *CatalogService[domain.Transportation]
	Visas          *CatalogService[domain.Visa]
	BlogPosts      *CatalogService[domain.BlogPost]
	Testimonials   *CatalogService[domain.Testimonial]
}

// NewCatalog builds every resource service with its rules.
func NewCatalog(repos CatalogRepositories, dispatcher events.Dispatcher, logger *zap.Logger) *Catalog {
	return &Catalog{
		Locations: NewCatalogService(repos.Locations, repository.LocationSchema, Rules[domain.Location]{
			Validate: func(l *domain.Location, errs fieldErrors) {
				errs.requireText("name", l.NameEN, l.NameAR)
			},
		}, dispatcher, logger),

		Hotels: NewCatalogService(repos.Hotels, repository.HotelSchema, Rules[domain.Hotel]{
			Validate: func(h *domain.Hotel, errs fieldErrors) {
				errs.requireText("name", h.NameEN, h.NameAR)
				errs.between("stars", h.Stars, 1, 5)
				if h.DistanceToHaramM < 0 {
					errs.add("distance_to_haram_m", "must not be negative")
				}
			},
			References: []Reference[domain.Hotel]{
				RefersTo("location_id", func(h *domain.Hotel) string { return deref(h.LocationID) }, repos.Locations),
			},
		}, dispatcher, logger),

		Rooms: NewCatalogService(repos.Rooms, repository.RoomSchema, Rules[domain.Room]{
			Prepare: func(r *domain.Room, _ *domain.Room, _ time.Time) {
				if r.Currency == "" {
					r.Currency = domain.DefaultCurrency
				}
			},
			Validate: func(r *domain.Room, errs fieldErrors) {
				if r.HotelID == "" {
					errs.add("hotel_id", "is required")
				}
				errs.requireText("name", r.NameEN, r.NameAR)
				errs.positive("capacity", r.Capacity)
				errs.nonNegative("price", r.Price)
			},
			References: []Reference[domain.Room]{
				RefersTo("hotel_id", func(r *domain.Room) string { return r.HotelID }, repos.Hotels),
			},
		}, dispatcher, logger),

		Categories: NewCatalogService(repos.Categories, repository.CategorySchema, Rules[domain.Category]{
			Prepare: func(c *domain.Category, _ *domain.Category, _ time.Time) {
				c.Slug = deriveSlug(c.Slug, c.NameEN, "category")
			},
			Validate: func(c *domain.Category, errs fieldErrors) {
				errs.requireText("name", c.NameEN, c.NameAR)
				if !slugPattern.MatchString(c.Slug) {
					errs.add("slug", "must contain lowercase letters, digits and dashes")
				}
			},
		}, dispatcher, logger),

		Packages: NewCatalogService(repos.Packages, repository.PackageSchema, Rules[domain.TravelPackage]{
			Prepare: func(p *domain.TravelPackage, _ *domain.TravelPackage, _ time.Time) {
				if p.Currency == "" {
					p.Currency = domain.DefaultCurrency
				}
			},
			Validate: func(p *domain.TravelPackage, errs fieldErrors) {
				errs.requireText("title", p.TitleEN, p.TitleAR)
				errs.positive("duration_days", p.DurationDays)
				errs.nonNegative("price", p.Price)
				if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
					errs.add("end_date", "must not be before start_date")
				}
			},
			References: []Reference[domain.TravelPackage]{
				RefersTo("category_id", func(p *domain.TravelPackage) string { return deref(p.CategoryID) }, repos.Categories),
				RefersTo("hotel_id", func(p *domain.TravelPackage) string { return deref(p.HotelID) }, repos.Hotels),
			},
		}, dispatcher, logger),

		Events: NewCatalogService(repos.Events, repository.EventSchema, Rules[domain.Event]{
			Validate: func(e *domain.Event, errs fieldErrors) {
				errs.requireText("title", e.TitleEN, e.TitleAR)
				if e.StartsAt.IsZero() {
					errs.add("starts_at", "is required")
				}
				if e.EndsAt != nil && e.EndsAt.Before(e.StartsAt) {
					errs.add("ends_at", "must not be before starts_at")
				}
			},
			References: []Reference[domain.Event]{
				RefersTo("location_id", func(e *domain.Event) string { return deref(e.LocationID) }, repos.Locations),
			},
		}, dispatcher, logger),

		Transportation: NewCatalogService(repos.Transportation, repository.TransportationSchema, Rules[domain.Transportation]{
			Prepare: func(t *domain.Transportation, _ *domain.Transportation, _ time.Time) {
				if t.Currency == "" {
					t.Currency = domain.DefaultCurrency
				}
				if t.VehicleType == "" {
					t.VehicleType = domain.VehicleBus
				}
			},
			Validate: func(t *domain.Transportation, errs fieldErrors) {
				errs.requireText("name", t.NameEN, t.NameAR)
				if !t.VehicleType.Valid() {
					errs.add("vehicle_type", "must be one of bus, car, van, train")
				}
				errs.positive("capacity", t.Capacity)
				errs.nonNegative("price", t.Price)
			},
		}, dispatcher, logger),

		Visas: NewCatalogService(repos.Visas, repository.VisaSchema, Rules[domain.Visa]{
			Prepare: func(v *domain.Visa, _ *domain.Visa, _ time.Time) {
				if v.Currency == "" {
					v.Currency = domain.DefaultCurrency
				}
				if v.VisaType == "" {
					v.VisaType = domain.VisaUmrah
				}
			},
			Validate: func(v *domain.Visa, errs fieldErrors) {
				errs.requireText("title", v.TitleEN, v.TitleAR)
				if !v.VisaType.Valid() {
					errs.add("visa_type", "must be one of umrah, hajj, tourist")
				}
				if v.ProcessingDays < 0 {
					errs.add("processing_days", "must not be negative")
				}
				errs.nonNegative("price", v.Price)
			},
		}, dispatcher, logger),

		BlogPosts: NewCatalogService(repos.BlogPosts, repository.BlogPostSchema, Rules[domain.BlogPost]{
			Prepare: func(b *domain.BlogPost, existing *domain.BlogPost, now time.Time) {
				b.Slug = deriveSlug(b.Slug, b.TitleEN, "post")
				if existing != nil && existing.PublishedAt != nil {
					b.PublishedAt = existing.PublishedAt
				}
				if b.IsPublished && b.PublishedAt == nil {
					published := now
					b.PublishedAt = &published
				}
			},
			Validate: func(b *domain.BlogPost, errs fieldErrors) {
				errs.requireText("title", b.TitleEN, b.TitleAR)
				errs.requireText("content", b.ContentEN, b.ContentAR)
				if !slugPattern.MatchString(b.Slug) {
					errs.add("slug", "must contain lowercase letters, digits and dashes")
				}
			},
		}, dispatcher, logger),

		Testimonials: NewCatalogService(repos.Testimonials, repository.TestimonialSchema, Rules[domain.Testimonial]{
			Validate: func(t *domain.Testimonial, errs fieldErrors) {
				if t.AuthorName == "" {
					errs.add("author_name", "is required")
				}
				errs.requireText("content", t.ContentEN, t.ContentAR)
				errs.between("rating", t.Rating, 1, 5)
			},
		}, dispatcher, logger),
	}
}

// deriveSlug keeps an explicit slug, otherwise derives one from source. When
// source has no ASCII letters a random suffix keeps the slug unique.
func deriveSlug(explicit, source, prefix string) string {
	if explicit != "" {
		return Slugify(explicit)
	}
	if slug := Slugify(source); slug != "" {
		return slug
	}
	return prefix + "-" + uuid.NewString()[:8]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
