package domain

import "time"

// Inquiry is a contact or booking request submitted from the public site.
// It is delivered by email only and never persisted.
type Inquiry struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
	PackageID   *string
	Locale      string
	SubmittedAt time.Time
}

// MediaObject describes an uploaded asset.
type MediaObject struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}
