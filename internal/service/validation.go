package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

// fieldErrors accumulates per-field validation messages.
type fieldErrors map[string]any

func (f fieldErrors) add(field, message string) {
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

func (f fieldErrors) requireText(field, en, ar string) {
	if strings.TrimSpace(en) == "" && strings.TrimSpace(ar) == "" {
		f.add(field, "provide at least one of "+field+"_en or "+field+"_ar")
	}
}

func (f fieldErrors) between(field string, v, lo, hi int) {
	if v < lo || v > hi {
		f.add(field, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
}

func (f fieldErrors) positive(field string, v int) {
	if v <= 0 {
		f.add(field, "must be greater than zero")
	}
}

func (f fieldErrors) nonNegative(field string, v float64) {
	if v < 0 {
		f.add(field, "must not be negative")
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return apperrors.NewValidationError("validation failed", map[string]any(f))
}

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Slugify lowercases s and joins its ASCII alphanumeric runs with dashes.
// Scripts without ASCII letters produce an empty slug.
func Slugify(s string) string {
	return strings.Trim(slugInvalid.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// validID reports whether id is a well-formed record identifier.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
