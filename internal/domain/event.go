package domain

import "time"

// Event is a dated happening promoted on the site (seminars, departures).
type Event struct {
	Meta
	LocationID    *string    `db:"location_id" json:"location_id"`
	TitleEN       string     `db:"title_en" json:"title_en"`
	TitleAR       string     `db:"title_ar" json:"title_ar"`
	DescriptionEN string     `db:"description_en" json:"description_en"`
	DescriptionAR string     `db:"description_ar" json:"description_ar"`
	StartsAt      time.Time  `db:"starts_at" json:"starts_at"`
	EndsAt        *time.Time `db:"ends_at" json:"ends_at"`
	ImageURL      string     `db:"image_url" json:"image_url"`
	IsActive      bool       `db:"is_active" json:"is_active"`
}
