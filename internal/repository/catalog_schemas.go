package repository

import (
	"github.com/spec-kit/pilgrim-travel/internal/domain"
)

func optional(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

var LocationSchema = Schema[domain.Location]{
	Resource: "location",
	Table:    "locations",
	Columns:  []string{"name_en", "name_ar", "city_en", "city_ar", "country", "sort_order"},
	Values: func(l *domain.Location) []any {
		return []any{l.NameEN, l.NameAR, l.CityEN, l.CityAR, l.Country, l.SortOrder}
	},
	Meta:    func(l *domain.Location) *domain.Meta { return &l.Meta },
	OrderBy: "sort_order ASC, name_en ASC",
	Less: func(a, b *domain.Location) bool {
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.NameEN < b.NameEN
	},
}

var HotelSchema = Schema[domain.Hotel]{
	Resource: "hotel",
	Table:    "hotels",
	Columns: []string{
		"location_id", "name_en", "name_ar", "description_en", "description_ar",
		"address_en", "address_ar", "stars", "distance_to_haram_m", "image_url",
		"gallery", "is_active",
	},
	Values: func(h *domain.Hotel) []any {
		gallery := h.Gallery
		if gallery == nil {
			gallery = []string{}
		}
		return []any{
			h.LocationID, h.NameEN, h.NameAR, h.DescriptionEN, h.DescriptionAR,
			h.AddressEN, h.AddressAR, h.Stars, h.DistanceToHaramM, h.ImageURL,
			gallery, h.IsActive,
		}
	},
	Meta:          func(h *domain.Hotel) *domain.Meta { return &h.Meta },
	ParentColumn:  "location_id",
	Parent:        func(h *domain.Hotel) string { return optional(h.LocationID) },
	VisibleColumn: "is_active",
	Visible:       func(h *domain.Hotel) bool { return h.IsActive },
	OrderBy:       "stars DESC, name_en ASC",
	Less: func(a, b *domain.Hotel) bool {
		if a.Stars != b.Stars {
			return a.Stars > b.Stars
		}
		return a.NameEN < b.NameEN
	},
}

var RoomSchema = Schema[domain.Room]{
	Resource: "room",
	Table:    "rooms",
	Columns: []string{
		"hotel_id", "name_en", "name_ar", "description_en", "description_ar",
		"capacity", "price", "currency", "image_url", "is_active",
	},
	Values: func(r *domain.Room) []any {
		return []any{
			r.HotelID, r.NameEN, r.NameAR, r.DescriptionEN, r.DescriptionAR,
			r.Capacity, r.Price, r.Currency, r.ImageURL, r.IsActive,
		}
	},
	Meta:          func(r *domain.Room) *domain.Meta { return &r.Meta },
	ParentColumn:  "hotel_id",
	Parent:        func(r *domain.Room) string { return r.HotelID },
	VisibleColumn: "is_active",
	Visible:       func(r *domain.Room) bool { return r.IsActive },
	OrderBy:       "price ASC, created_at DESC",
	Less: func(a, b *domain.Room) bool {
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		return a.CreatedAt.After(b.CreatedAt)
	},
}

var CategorySchema = Schema[domain.Category]{
	Resource: "category",
	Table:    "categories",
	Columns:  []string{"name_en", "name_ar", "description_en", "description_ar", "slug", "sort_order", "is_active"},
	Values: func(c *domain.Category) []any {
		return []any{c.NameEN, c.NameAR, c.DescriptionEN, c.DescriptionAR, c.Slug, c.SortOrder, c.IsActive}
	},
	Meta:          func(c *domain.Category) *domain.Meta { return &c.Meta },
	VisibleColumn: "is_active",
	Visible:       func(c *domain.Category) bool { return c.IsActive },
	OrderBy:       "sort_order ASC, name_en ASC",
	Less: func(a, b *domain.Category) bool {
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.NameEN < b.NameEN
	},
}

var PackageSchema = Schema[domain.TravelPackage]{
	Resource: "package",
	Table:    "packages",
	Columns: []string{
		"category_id", "hotel_id", "title_en", "title_ar", "description_en", "description_ar",
		"duration_days", "price", "currency", "start_date", "end_date", "image_url",
		"is_featured", "is_active",
	},
	Values: func(p *domain.TravelPackage) []any {
		return []any{
			p.CategoryID, p.HotelID, p.TitleEN, p.TitleAR, p.DescriptionEN, p.DescriptionAR,
			p.DurationDays, p.Price, p.Currency, p.StartDate, p.EndDate, p.ImageURL,
			p.IsFeatured, p.IsActive,
		}
	},
	Meta:          func(p *domain.TravelPackage) *domain.Meta { return &p.Meta },
	ParentColumn:  "category_id",
	Parent:        func(p *domain.TravelPackage) string { return optional(p.CategoryID) },
	VisibleColumn: "is_active",
	Visible:       func(p *domain.TravelPackage) bool { return p.IsActive },
	OrderBy:       "is_featured DESC, created_at DESC",
	Less: func(a, b *domain.TravelPackage) bool {
		if a.IsFeatured != b.IsFeatured {
			return a.IsFeatured
		}
		return a.CreatedAt.After(b.CreatedAt)
	},
}

var EventSchema = Schema[domain.Event]{
	Resource: "event",
	Table:    "events",
	Columns: []string{
		"location_id", "title_en", "title_ar", "description_en", "description_ar",
		"starts_at", "ends_at", "image_url", "is_active",
	},
	Values: func(e *domain.Event) []any {
		return []any{
			e.LocationID, e.TitleEN, e.TitleAR, e.DescriptionEN, e.DescriptionAR,
			e.StartsAt, e.EndsAt, e.ImageURL, e.IsActive,
		}
	},
	Meta:          func(e *domain.Event) *domain.Meta { return &e.Meta },
	ParentColumn:  "location_id",
	Parent:        func(e *domain.Event) string { return optional(e.LocationID) },
	VisibleColumn: "is_active",
	Visible:       func(e *domain.Event) bool { return e.IsActive },
	OrderBy:       "starts_at ASC",
	Less:          func(a, b *domain.Event) bool { return a.StartsAt.Before(b.StartsAt) },
}

var TransportationSchema = Schema[domain.Transportation]{
	Resource: "transportation",
	Table:    "transportation",
	Columns: []string{
		"name_en", "name_ar", "description_en", "description_ar", "vehicle_type",
		"capacity", "price", "currency", "image_url", "is_active",
	},
	Values: func(t *domain.Transportation) []any {
		return []any{
			t.NameEN, t.NameAR, t.DescriptionEN, t.DescriptionAR, string(t.VehicleType),
			t.Capacity, t.Price, t.Currency, t.ImageURL, t.IsActive,
		}
	},
	Meta:          func(t *domain.Transportation) *domain.Meta { return &t.Meta },
	VisibleColumn: "is_active",
	Visible:       func(t *domain.Transportation) bool { return t.IsActive },
	OrderBy:       "price ASC, name_en ASC",
	Less: func(a, b *domain.Transportation) bool {
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		return a.NameEN < b.NameEN
	},
}

var VisaSchema = Schema[domain.Visa]{
	Resource: "visa",
	Table:    "visas",
	Columns: []string{
		"title_en", "title_ar", "description_en", "description_ar",
		"requirements_en", "requirements_ar", "visa_type", "processing_days",
		"price", "currency", "is_active",
	},
	Values: func(v *domain.Visa) []any {
		return []any{
			v.TitleEN, v.TitleAR, v.DescriptionEN, v.DescriptionAR,
			v.RequirementsEN, v.RequirementsAR, string(v.VisaType), v.ProcessingDays,
			v.Price, v.Currency, v.IsActive,
		}
	},
	Meta:          func(v *domain.Visa) *domain.Meta { return &v.Meta },
	VisibleColumn: "is_active",
	Visible:       func(v *domain.Visa) bool { return v.IsActive },
	OrderBy:       "price ASC, title_en ASC",
	Less: func(a, b *domain.Visa) bool {
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		return a.TitleEN < b.TitleEN
	},
}

var BlogPostSchema = Schema[domain.BlogPost]{
	Resource: "blog post",
	Table:    "blog_posts",
	Columns: []string{
		"title_en", "title_ar", "slug", "excerpt_en", "excerpt_ar", "content_en", "content_ar",
		"cover_image_url", "author", "is_published", "published_at",
	},
	Values: func(b *domain.BlogPost) []any {
		return []any{
			b.TitleEN, b.TitleAR, b.Slug, b.ExcerptEN, b.ExcerptAR, b.ContentEN, b.ContentAR,
			b.CoverImageURL, b.Author, b.IsPublished, b.PublishedAt,
		}
	},
	Meta:          func(b *domain.BlogPost) *domain.Meta { return &b.Meta },
	VisibleColumn: "is_published",
	Visible:       func(b *domain.BlogPost) bool { return b.IsPublished },
	OrderBy:       "published_at DESC NULLS LAST, created_at DESC",
	Less: func(a, b *domain.BlogPost) bool {
		switch {
		case a.PublishedAt != nil && b.PublishedAt != nil && !a.PublishedAt.Equal(*b.PublishedAt):
			return a.PublishedAt.After(*b.PublishedAt)
		case (a.PublishedAt == nil) != (b.PublishedAt == nil):
			return a.PublishedAt != nil
		}
		return a.CreatedAt.After(b.CreatedAt)
	},
}

var TestimonialSchema = Schema[domain.Testimonial]{
	Resource: "testimonial",
	Table:    "testimonials",
	Columns:  []string{"author_name", "author_location", "content_en", "content_ar", "rating", "is_published"},
	Values: func(t *domain.Testimonial) []any {
		return []any{t.AuthorName, t.AuthorLocation, t.ContentEN, t.ContentAR, t.Rating, t.IsPublished}
	},
	Meta:          func(t *domain.Testimonial) *domain.Meta { return &t.Meta },
	VisibleColumn: "is_published",
	Visible:       func(t *domain.Testimonial) bool { return t.IsPublished },
}
