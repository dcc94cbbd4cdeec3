package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
)

// Catalog write payloads. Optional scalars are pointers so an omitted field
// picks up its default instead of the zero value.

type LocationRequest struct {
	NameEN    string `json:"name_en" validate:"max=200"`
	NameAR    string `json:"name_ar" validate:"max=200"`
	CityEN    string `json:"city_en" validate:"max=200"`
	CityAR    string `json:"city_ar" validate:"max=200"`
	Country   string `json:"country" validate:"max=100"`
	SortOrder int    `json:"sort_order"`
}

func (r LocationRequest) ToDomain() *domain.Location {
	return &domain.Location{
		NameEN:    r.NameEN,
		NameAR:    r.NameAR,
		CityEN:    r.CityEN,
		CityAR:    r.CityAR,
		Country:   r.Country,
		SortOrder: r.SortOrder,
	}
}

type HotelRequest struct {
	LocationID       *string  `json:"location_id" validate:"omitempty,uuid"`
	NameEN           string   `json:"name_en" validate:"max=200"`
	NameAR           string   `json:"name_ar" validate:"max=200"`
	DescriptionEN    string   `json:"description_en"`
	DescriptionAR    string   `json:"description_ar"`
	AddressEN        string   `json:"address_en"`
	AddressAR        string   `json:"address_ar"`
	Stars            *int     `json:"stars" validate:"omitempty,min=1,max=5"`
	DistanceToHaramM int      `json:"distance_to_haram_m" validate:"min=0"`
	ImageURL         string   `json:"image_url" validate:"omitempty,url"`
	Gallery          []string `json:"gallery" validate:"omitempty,dive,url"`
	IsActive         *bool    `json:"is_active"`
}

func (r HotelRequest) ToDomain() *domain.Hotel {
	gallery := r.Gallery
	if gallery == nil {
		gallery = []string{}
	}
	return &domain.Hotel{
		LocationID:       blankToNil(r.LocationID),
		NameEN:           r.NameEN,
		NameAR:           r.NameAR,
		DescriptionEN:    r.DescriptionEN,
		DescriptionAR:    r.DescriptionAR,
		AddressEN:        r.AddressEN,
		AddressAR:        r.AddressAR,
		Stars:            intOr(r.Stars, 3),
		DistanceToHaramM: r.DistanceToHaramM,
		ImageURL:         r.ImageURL,
		Gallery:          gallery,
		IsActive:         boolOr(r.IsActive, true),
	}
}

type RoomRequest struct {
	HotelID       string  `json:"hotel_id" validate:"required,uuid"`
	NameEN        string  `json:"name_en" validate:"max=200"`
	NameAR        string  `json:"name_ar" validate:"max=200"`
	DescriptionEN string  `json:"description_en"`
	DescriptionAR string  `json:"description_ar"`
	Capacity      *int    `json:"capacity" validate:"omitempty,min=1"`
	Price         float64 `json:"price" validate:"min=0"`
	Currency      string  `json:"currency" validate:"omitempty,len=3"`
	ImageURL      string  `json:"image_url" validate:"omitempty,url"`
	IsActive      *bool   `json:"is_active"`
}

func (r RoomRequest) ToDomain() *domain.Room {
	return &domain.Room{
		HotelID:       r.HotelID,
		NameEN:        r.NameEN,
		NameAR:        r.NameAR,
		DescriptionEN: r.DescriptionEN,
		DescriptionAR: r.DescriptionAR,
		Capacity:      intOr(r.Capacity, 2),
		Price:         r.Price,
		Currency:      currency(r.Currency),
		ImageURL:      r.ImageURL,
		IsActive:      boolOr(r.IsActive, true),
	}
}

type CategoryRequest struct {
	NameEN        string `json:"name_en" validate:"max=200"`
	NameAR        string `json:"name_ar" validate:"max=200"`
	DescriptionEN string `json:"description_en"`
	DescriptionAR string `json:"description_ar"`
	Slug          string `json:"slug" validate:"max=200"`
	SortOrder     int    `json:"sort_order"`
	IsActive      *bool  `json:"is_active"`
}

func (r CategoryRequest) ToDomain() *domain.Category {
	return &domain.Category{
		NameEN:        r.NameEN,
		NameAR:        r.NameAR,
		DescriptionEN: r.DescriptionEN,
		DescriptionAR: r.DescriptionAR,
		Slug:          strings.TrimSpace(r.Slug),
		SortOrder:     r.SortOrder,
		IsActive:      boolOr(r.IsActive, true),
	}
}

type PackageRequest struct {
	CategoryID    *string    `json:"category_id" validate:"omitempty,uuid"`
	HotelID       *string    `json:"hotel_id" validate:"omitempty,uuid"`
	TitleEN       string     `json:"title_en" validate:"max=300"`
	TitleAR       string     `json:"title_ar" validate:"max=300"`
	DescriptionEN string     `json:"description_en"`
	DescriptionAR string     `json:"description_ar"`
	DurationDays  *int       `json:"duration_days" validate:"omitempty,min=1"`
	Price         float64    `json:"price" validate:"min=0"`
	Currency      string     `json:"currency" validate:"omitempty,len=3"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	ImageURL      string     `json:"image_url" validate:"omitempty,url"`
	IsFeatured    bool       `json:"is_featured"`
	IsActive      *bool      `json:"is_active"`
}

func (r PackageRequest) ToDomain() *domain.TravelPackage {
	return &domain.TravelPackage{
		CategoryID:    blankToNil(r.CategoryID),
		HotelID:       blankToNil(r.HotelID),
		TitleEN:       r.TitleEN,
		TitleAR:       r.TitleAR,
		DescriptionEN: r.DescriptionEN,
		DescriptionAR: r.DescriptionAR,
		DurationDays:  intOr(r.DurationDays, 1),
		Price:         r.Price,
		Currency:      currency(r.Currency),
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		ImageURL:      r.ImageURL,
		IsFeatured:    r.IsFeatured,
		IsActive:      boolOr(r.IsActive, true),
	}
}

type EventRequest struct {
	LocationID    *string    `json:"location_id" validate:"omitempty,uuid"`
	TitleEN       string     `json:"title_en" validate:"max=300"`
	TitleAR       string     `json:"title_ar" validate:"max=300"`
	DescriptionEN string     `json:"description_en"`
	DescriptionAR string     `json:"description_ar"`
	StartsAt      time.Time  `json:"starts_at"`
	EndsAt        *time.Time `json:"ends_at"`
	ImageURL      string     `json:"image_url" validate:"omitempty,url"`
	IsActive      *bool      `json:"is_active"`
}

func (r EventRequest) ToDomain() *domain.Event {
	return &domain.Event{
		LocationID:    blankToNil(r.LocationID),
		TitleEN:       r.TitleEN,
		TitleAR:       r.TitleAR,
		DescriptionEN: r.DescriptionEN,
		DescriptionAR: r.DescriptionAR,
		StartsAt:      r.StartsAt,
		EndsAt:        r.EndsAt,
		ImageURL:      r.ImageURL,
		IsActive:      boolOr(r.IsActive, true),
	}
}

type TransportationRequest struct {
	NameEN        string  `json:"name_en" validate:"max=200"`
	NameAR        string  `json:"name_ar" validate:"max=200"`
	DescriptionEN string  `json:"description_en"`
	DescriptionAR string  `json:"description_ar"`
	VehicleType   string  `json:"vehicle_type" validate:"omitempty,oneof=bus car van train"`
	Capacity      *int    `json:"capacity" validate:"omitempty,min=1"`
	Price         float64 `json:"price" validate:"min=0"`
	Currency      string  `json:"currency" validate:"omitempty,len=3"`
	ImageURL      string  `json:"image_url" validate:"omitempty,url"`
	IsActive      *bool   `json:"is_active"`
}

func (r TransportationRequest) ToDomain() *domain.Transportation {
	return &domain.Transportation{
		NameEN:        r.NameEN,
		NameAR:        r.NameAR,
		DescriptionEN: r.DescriptionEN,
		DescriptionAR: r.DescriptionAR,
		VehicleType:   domain.VehicleType(r.VehicleType),
		Capacity:      intOr(r.Capacity, 1),
		Price:         r.Price,
		Currency:      currency(r.Currency),
		ImageURL:      r.ImageURL,
		IsActive:      boolOr(r.IsActive, true),
	}
}

type VisaRequest struct {
	TitleEN        string  `json:"title_en" validate:"max=300"`
	TitleAR        string  `json:"title_ar" validate:"max=300"`
	DescriptionEN  string  `json:"description_en"`
	DescriptionAR  string  `json:"description_ar"`
	RequirementsEN string  `json:"requirements_en"`
	RequirementsAR string  `json:"requirements_ar"`
	VisaType       string  `json:"visa_type" validate:"omitempty,oneof=umrah hajj tourist"`
	ProcessingDays *int    `json:"processing_days" validate:"omitempty,min=0"`
	Price          float64 `json:"price" validate:"min=0"`
	Currency       string  `json:"currency" validate:"omitempty,len=3"`
	IsActive       *bool   `json:"is_active"`
}

func (r VisaRequest) ToDomain() *domain.Visa {
	return &domain.Visa{
		TitleEN:        r.TitleEN,
		TitleAR:        r.TitleAR,
		DescriptionEN:  r.DescriptionEN,
		DescriptionAR:  r.DescriptionAR,
		RequirementsEN: r.RequirementsEN,
		RequirementsAR: r.RequirementsAR,
		VisaType:       domain.VisaType(r.VisaType),
		ProcessingDays: intOr(r.ProcessingDays, 7),
		Price:          r.Price,
		Currency:       currency(r.Currency),
		IsActive:       boolOr(r.IsActive, true),
	}
}

type BlogPostRequest struct {
	TitleEN       string `json:"title_en" validate:"max=300"`
	TitleAR       string `json:"title_ar" validate:"max=300"`
	Slug          string `json:"slug" validate:"max=200"`
	ExcerptEN     string `json:"excerpt_en"`
	ExcerptAR     string `json:"excerpt_ar"`
	ContentEN     string `json:"content_en"`
	ContentAR     string `json:"content_ar"`
	CoverImageURL string `json:"cover_image_url" validate:"omitempty,url"`
	Author        string `json:"author" validate:"max=200"`
	IsPublished   bool   `json:"is_published"`
}

func (r BlogPostRequest) ToDomain() *domain.BlogPost {
	return &domain.BlogPost{
		TitleEN:       r.TitleEN,
		TitleAR:       r.TitleAR,
		Slug:          strings.TrimSpace(r.Slug),
		ExcerptEN:     r.ExcerptEN,
		ExcerptAR:     r.ExcerptAR,
		ContentEN:     r.ContentEN,
		ContentAR:     r.ContentAR,
		CoverImageURL: r.CoverImageURL,
		Author:        r.Author,
		IsPublished:   r.IsPublished,
	}
}

type TestimonialRequest struct {
	AuthorName     string `json:"author_name" validate:"required,max=200"`
	AuthorLocation string `json:"author_location" validate:"max=200"`
	ContentEN      string `json:"content_en"`
	ContentAR      string `json:"content_ar"`
	Rating         *int   `json:"rating" validate:"omitempty,min=1,max=5"`
	IsPublished    *bool  `json:"is_published"`
}

func (r TestimonialRequest) ToDomain() *domain.Testimonial {
	return &domain.Testimonial{
		AuthorName:     strings.TrimSpace(r.AuthorName),
		AuthorLocation: r.AuthorLocation,
		ContentEN:      r.ContentEN,
		ContentAR:      r.ContentAR,
		Rating:         intOr(r.Rating, 5),
		IsPublished:    boolOr(r.IsPublished, true),
	}
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func blankToNil(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}

func currency(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}
