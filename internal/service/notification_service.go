package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/pilgrim-travel/internal/events"
	"github.com/spec-kit/pilgrim-travel/internal/mail"
	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     mail.Mailer
	operatorTo string
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer mail.Mailer, operatorTo string, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		operatorTo: operatorTo,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventInquiryReceived, n.handleInquiryReceived)
	n.dispatcher.Subscribe(events.EventCatalogChanged, n.handleCatalogChanged)
	n.dispatcher.Subscribe(events.EventAdminLoggedIn, n.handleAdminLoggedIn)
}

// handleInquiryReceived mails the operator and then acknowledges the
// customer. Only the operator copy is required to succeed; no acknowledgment
// is sent when it fails.
func (n *NotificationService) handleInquiryReceived(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InquiryReceivedPayload)
	if !ok {
		return fmt.Errorf("inquiry_received: unexpected payload %T", event.Payload)
	}
	inq := payload.Inquiry

	operatorMsg, err := mail.InquiryNotification(n.operatorTo, inq, payload.PackageTitle)
	if err != nil {
		return err
	}
	if err := n.mailer.Send(ctx, operatorMsg); err != nil {
		n.logger.Error("operator notification failed", zap.String("inquiry_id", inq.ID), zap.Error(err))
		return apperrors.NewBadGateway("MAIL_DELIVERY_FAILED", "could not deliver inquiry, please try again later", err)
	}

	ack, err := mail.InquiryAcknowledgment(inq, payload.PackageTitle)
	if err != nil {
		n.logger.Warn("render acknowledgment", zap.String("inquiry_id", inq.ID), zap.Error(err))
		return nil
	}
	if err := n.mailer.Send(ctx, ack); err != nil {
		n.logger.Warn("customer acknowledgment failed", zap.String("inquiry_id", inq.ID), zap.Error(err))
	}
	return nil
}

func (n *NotificationService) handleCatalogChanged(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.CatalogChangedPayload)
	n.logger.Info("CatalogChanged",
		zap.String("resource", payload.Resource),
		zap.String("id", payload.ID),
		zap.String("action", string(payload.Action)),
		zap.String("actor_id", event.ActorID),
	)
	return nil
}

func (n *NotificationService) handleAdminLoggedIn(_ context.Context, event events.Event) error {
	n.logger.Info("AdminLoggedIn", zap.String("actor_id", event.ActorID))
	return nil
}
