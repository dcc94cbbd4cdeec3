package domain

import "time"

// Category groups travel packages (e.g. Umrah, Hajj, Ramadan).
type Category struct {
	Meta
	NameEN        string `db:"name_en" json:"name_en"`
	NameAR        string `db:"name_ar" json:"name_ar"`
	DescriptionEN string `db:"description_en" json:"description_en"`
	DescriptionAR string `db:"description_ar" json:"description_ar"`
	Slug          string `db:"slug" json:"slug"`
	SortOrder     int    `db:"sort_order" json:"sort_order"`
	IsActive      bool   `db:"is_active" json:"is_active"`
}

// TravelPackage is a sellable Hajj/Umrah offer.
type TravelPackage struct {
	Meta
	CategoryID    *string    `db:"category_id" json:"category_id"`
	HotelID       *string    `db:"hotel_id" json:"hotel_id"`
	TitleEN       string     `db:"title_en" json:"title_en"`
	TitleAR       string     `db:"title_ar" json:"title_ar"`
	DescriptionEN string     `db:"description_en" json:"description_en"`
	DescriptionAR string     `db:"description_ar" json:"description_ar"`
	DurationDays  int        `db:"duration_days" json:"duration_days"`
	Price         float64    `db:"price" json:"price"`
	Currency      string     `db:"currency" json:"currency"`
	StartDate     *time.Time `db:"start_date" json:"start_date"`
	EndDate       *time.Time `db:"end_date" json:"end_date"`
	ImageURL      string     `db:"image_url" json:"image_url"`
	IsFeatured    bool       `db:"is_featured" json:"is_featured"`
	IsActive      bool       `db:"is_active" json:"is_active"`
}
