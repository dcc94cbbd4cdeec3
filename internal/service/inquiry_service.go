package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
	"github.com/spec-kit/pilgrim-travel/internal/events"
	"github.com/spec-kit/pilgrim-travel/internal/locale"
	"github.com/spec-kit/pilgrim-travel/internal/repository"
)

// InquiryInput is a contact form submission.
type InquiryInput struct {
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	PackageID *string
	Locale    string
}

// InquiryService accepts public inquiries and hands them to notification
// handlers. Inquiries are not stored.
type InquiryService struct {
	packages   repository.CatalogRepository[domain.TravelPackage]
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

func NewInquiryService(packages repository.CatalogRepository[domain.TravelPackage], dispatcher events.Dispatcher, logger *zap.Logger) *InquiryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InquiryService{packages: packages, dispatcher: dispatcher, logger: logger, now: time.Now}
}

// Submit validates the inquiry and publishes it. A failed operator
// notification surfaces as the returned error.
func (s *InquiryService) Submit(ctx context.Context, in InquiryInput) (*domain.Inquiry, error) {
	loc, ok := locale.Parse(in.Locale)
	if !ok {
		loc = locale.Default
	}

	inquiry := domain.Inquiry{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Subject:     strings.TrimSpace(in.Subject),
		Message:     strings.TrimSpace(in.Message),
		Locale:      loc.String(),
		SubmittedAt: s.now().UTC(),
	}

	errs := fieldErrors{}
	if inquiry.Name == "" {
		errs.add("name", "is required")
	}
	if inquiry.Email == "" {
		errs.add("email", "is required")
	}
	if inquiry.Message == "" {
		errs.add("message", "is required")
	}

	var packageTitle string
	if in.PackageID != nil && *in.PackageID != "" {
		pkg, err := s.lookupPackage(ctx, *in.PackageID)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			errs.add("package_id", "referenced package does not exist")
		} else {
			id := pkg.ID
			inquiry.PackageID = &id
			packageTitle = locale.Resolve(locale.FromStruct(pkg), "title", loc)
		}
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	s.logger.Info("inquiry received",
		zap.String("inquiry_id", inquiry.ID),
		zap.String("locale", inquiry.Locale),
		zap.Bool("has_package", inquiry.PackageID != nil),
	)

	if s.dispatcher != nil {
		err := s.dispatcher.Publish(ctx, events.Event{
			ID:        inquiry.ID,
			Type:      events.EventInquiryReceived,
			Timestamp: inquiry.SubmittedAt,
			Payload:   events.InquiryReceivedPayload{Inquiry: inquiry, PackageTitle: packageTitle},
		})
		if err != nil {
			return nil, err
		}
	}
	return &inquiry, nil
}

// lookupPackage returns nil when the package is unknown or hidden.
func (s *InquiryService) lookupPackage(ctx context.Context, id string) (*domain.TravelPackage, error) {
	if s.packages == nil || !validID(id) {
		return nil, nil
	}
	pkg, err := s.packages.GetByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !pkg.IsActive {
		return nil, nil
	}
	return pkg, nil
}
