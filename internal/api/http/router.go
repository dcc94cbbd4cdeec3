package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pilgrim-travel/internal/api/dto"
	"github.com/spec-kit/pilgrim-travel/internal/api/http/handlers"
	"github.com/spec-kit/pilgrim-travel/internal/auth"
	"github.com/spec-kit/pilgrim-travel/internal/domain"
	"github.com/spec-kit/pilgrim-travel/internal/service"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Pages          *handlers.AdminPagesHandler
	Uploads        *handlers.UploadHandler
	Inquiries      *handlers.InquiryHandler
	Catalog        *service.Catalog
	Sessions       *auth.SessionMiddleware
	InquiryLimiter *IPRateLimiter
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/api/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", cfg.Sessions.RequireAPI, cfg.Auth.Me)

	admin := app.Group("/api/admin", cfg.Sessions.RequireAPI)
	public := app.Group("/api/public")
	registerCatalog(admin, public, cfg.Catalog)
	admin.Post("/uploads", cfg.Uploads.Upload)

	inquiryHandlers := []fiber.Handler{cfg.Inquiries.Submit}
	if cfg.InquiryLimiter != nil {
		inquiryHandlers = append([]fiber.Handler{cfg.InquiryLimiter.Handler()}, inquiryHandlers...)
	}
	app.Post("/api/inquiries", inquiryHandlers...)

	app.Get(auth.LoginPath, cfg.Sessions.Optional, cfg.Pages.LoginPage)
	app.Post(auth.LoginPath, cfg.Pages.LoginSubmit)
	app.Get(handlers.DashboardPath, cfg.Sessions.RequirePage, cfg.Pages.Dashboard)
	app.Post("/admin/logout", cfg.Pages.Logout)
}

func registerCatalog(admin, public fiber.Router, c *service.Catalog) {
	mount(admin, public, "/locations",
		handlers.NewResourceHandler[domain.Location, dto.LocationRequest](c.Locations),
		handlers.NewPublicHandler(c.Locations, handlers.Present(dto.NewPublicLocation)))
	mount(admin, public, "/hotels",
		handlers.NewResourceHandler[domain.Hotel, dto.HotelRequest](c.Hotels),
		handlers.NewPublicHandler(c.Hotels, handlers.Present(dto.NewPublicHotel)))
	mount(admin, public, "/rooms",
		handlers.NewResourceHandler[domain.Room, dto.RoomRequest](c.Rooms),
		handlers.NewPublicHandler(c.Rooms, handlers.Present(dto.NewPublicRoom)))
	mount(admin, public, "/categories",
		handlers.NewResourceHandler[domain.Category, dto.CategoryRequest](c.Categories),
		handlers.NewPublicHandler(c.Categories, handlers.Present(dto.NewPublicCategory)))
	mount(admin, public, "/packages",
		handlers.NewResourceHandler[domain.TravelPackage, dto.PackageRequest](c.Packages),
		handlers.NewPublicHandler(c.Packages, handlers.Present(dto.NewPublicPackage)))
	mount(admin, public, "/events",
		handlers.NewResourceHandler[domain.Event, dto.EventRequest](c.Events),
		handlers.NewPublicHandler(c.Events, handlers.Present(dto.NewPublicEvent)))
	mount(admin, public, "/transportation",
		handlers.NewResourceHandler[domain.Transportation, dto.TransportationRequest](c.Transportation),
		handlers.NewPublicHandler(c.Transportation, handlers.Present(dto.NewPublicTransportation)))
	mount(admin, public, "/visas",
		handlers.NewResourceHandler[domain.Visa, dto.VisaRequest](c.Visas),
		handlers.NewPublicHandler(c.Visas, handlers.Present(dto.NewPublicVisa)))
	mount(admin, public, "/blog-posts",
		handlers.NewResourceHandler[domain.BlogPost, dto.BlogPostRequest](c.BlogPosts),
		handlers.NewPublicHandler(c.BlogPosts, handlers.PresentErr(dto.NewPublicBlogPost)))
	mount(admin, public, "/testimonials",
		handlers.NewResourceHandler[domain.Testimonial, dto.TestimonialRequest](c.Testimonials),
		handlers.NewPublicHandler(c.Testimonials, handlers.Present(dto.NewPublicTestimonial)))
}

// mount registers admin CRUD and public read routes for one resource.
// Deleting requires the admin role; editors may create and update.
func mount[T any](admin, public fiber.Router, path string, h *handlers.ResourceHandler[T], p *handlers.PublicHandler[T]) {
	r := admin.Group(path)
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", auth.RequireRole(domain.AdminRoleAdmin), h.Delete)

	pr := public.Group(path)
	pr.Get("/", p.List)
	pr.Get("/:id", p.Get)
}
