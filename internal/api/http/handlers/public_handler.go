package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pilgrim-travel/internal/locale"
	"github.com/spec-kit/pilgrim-travel/internal/service"
)

// LocaleCookie remembers a visitor's language choice.
const LocaleCookie = "locale"

// Presenter turns a stored record into its public view for loc.
type Presenter[T any] func(item *T, loc locale.Locale) (any, error)

// Present adapts an infallible view constructor.
func Present[T, V any](fn func(*T, locale.Locale) V) Presenter[T] {
	return func(item *T, loc locale.Locale) (any, error) {
		return fn(item, loc), nil
	}
}

// PresentErr adapts a view constructor that can fail.
func PresentErr[T, V any](fn func(*T, locale.Locale) (V, error)) Presenter[T] {
	return func(item *T, loc locale.Locale) (any, error) {
		return fn(item, loc)
	}
}

// PublicHandler serves the visible records of one resource, localized.
type PublicHandler[T any] struct {
	service *service.CatalogService[T]
	present Presenter[T]
}

// NewPublicHandler constructs handler.
func NewPublicHandler[T any](svc *service.CatalogService[T], present Presenter[T]) *PublicHandler[T] {
	return &PublicHandler[T]{service: svc, present: present}
}

// List handles GET /.
func (h *PublicHandler[T]) List(c *fiber.Ctx) error {
	loc := requestLocale(c)
	q := listQuery(c)
	q.OnlyVisible = true

	page, err := h.service.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	views := make([]any, 0, len(page.Items))
	for i := range page.Items {
		view, err := h.present(&page.Items[i], loc)
		if err != nil {
			return err
		}
		views = append(views, view)
	}
	return c.JSON(fiber.Map{
		"data":   views,
		"meta":   pageMeta(page),
		"locale": loc,
		"dir":    loc.Dir(),
	})
}

// Get handles GET /:id. Hidden records are reported as not found.
func (h *PublicHandler[T]) Get(c *fiber.Ctx) error {
	loc := requestLocale(c)
	item, err := h.service.GetVisible(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	view, err := h.present(item, loc)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":   view,
		"locale": loc,
		"dir":    loc.Dir(),
	})
}

func requestLocale(c *fiber.Ctx) locale.Locale {
	loc := locale.Negotiate(c.Query("lang"), c.Cookies(LocaleCookie), c.Get(fiber.HeaderAcceptLanguage))
	c.Set(fiber.HeaderContentLanguage, loc.String())
	c.Vary(fiber.HeaderAcceptLanguage)
	return loc
}
