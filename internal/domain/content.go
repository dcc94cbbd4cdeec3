package domain

import "time"

// BlogPost is an article; content is stored as markdown.
type BlogPost struct {
	Meta
	TitleEN       string     `db:"title_en" json:"title_en"`
	TitleAR       string     `db:"title_ar" json:"title_ar"`
	Slug          string     `db:"slug" json:"slug"`
	ExcerptEN     string     `db:"excerpt_en" json:"excerpt_en"`
	ExcerptAR     string     `db:"excerpt_ar" json:"excerpt_ar"`
	ContentEN     string     `db:"content_en" json:"content_en"`
	ContentAR     string     `db:"content_ar" json:"content_ar"`
	CoverImageURL string     `db:"cover_image_url" json:"cover_image_url"`
	Author        string     `db:"author" json:"author"`
	IsPublished   bool       `db:"is_published" json:"is_published"`
	PublishedAt   *time.Time `db:"published_at" json:"published_at"`
}

// Testimonial is a customer quote shown on the site.
type Testimonial struct {
	Meta
	AuthorName     string `db:"author_name" json:"author_name"`
	AuthorLocation string `db:"author_location" json:"author_location"`
	ContentEN      string `db:"content_en" json:"content_en"`
	ContentAR      string `db:"content_ar" json:"content_ar"`
	Rating         int    `db:"rating" json:"rating"`
	IsPublished    bool   `db:"is_published" json:"is_published"`
}
