package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pilgrim-travel/internal/api/dto"
	"github.com/spec-kit/pilgrim-travel/internal/auth"
	"github.com/spec-kit/pilgrim-travel/internal/service"
	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

// ResourceHandler exposes admin CRUD for one catalog resource:
// GET/POST on the collection and GET/PUT/DELETE on /:id.
type ResourceHandler[T any] struct {
	service *service.CatalogService[T]
	decode  func(c *fiber.Ctx) (*T, error)
}

// NewResourceHandler binds svc to the request payload type R.
func NewResourceHandler[T any, R dto.Request[T]](svc *service.CatalogService[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{service: svc, decode: decodeRequest[T, R]}
}

func decodeRequest[T any, R dto.Request[T]](c *fiber.Ctx) (*T, error) {
	var req R
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return req.ToDomain(), nil
}

// List handles GET /. Supports page, page_size and parent_id.
func (h *ResourceHandler[T]) List(c *fiber.Ctx) error {
	page, err := h.service.List(c.UserContext(), listQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": page.Items, "meta": pageMeta(page)})
}

// Get handles GET /:id.
func (h *ResourceHandler[T]) Get(c *fiber.Ctx) error {
	item, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// Create handles POST /.
func (h *ResourceHandler[T]) Create(c *fiber.Ctx) error {
	item, err := h.decode(c)
	if err != nil {
		return err
	}
	created, err := h.service.Create(c.UserContext(), actorID(c), item)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": created})
}

// Update handles PUT /:id as a full replacement.
func (h *ResourceHandler[T]) Update(c *fiber.Ctx) error {
	item, err := h.decode(c)
	if err != nil {
		return err
	}
	updated, err := h.service.Update(c.UserContext(), actorID(c), c.Params("id"), item)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": updated})
}

// Delete handles DELETE /:id.
func (h *ResourceHandler[T]) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), actorID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func listQuery(c *fiber.Ctx) service.ListQuery {
	return service.ListQuery{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 0),
		ParentID: c.Query("parent_id"),
	}
}

func pageMeta[T any](page *service.Page[T]) fiber.Map {
	return fiber.Map{
		"page":      page.Page,
		"page_size": page.PageSize,
		"total":     page.Total,
	}
}

func actorID(c *fiber.Ctx) string {
	if identity, ok := auth.IdentityFromContext(c); ok {
		return identity.ID
	}
	return ""
}
