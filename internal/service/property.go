package service

import (
	"context"
	"fmt"
	"time"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/repository"
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	emailSvc     EmailService
	events       EventSink
}

func NewPropertyService(
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	events EventSink,
) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		emailSvc:     emailSvc,
		events:       events,
	}
}

func (s *propertyService) SubmitProperty(ctx context.Context, hostID int32, p *domain.Property) error {
	host, err := s.userRepo.GetByID(ctx, hostID)
	if err != nil {
		return err
	}
	if host.Role != domain.UserRoleHost && host.Role != domain.UserRoleAdmin {
		return fmt.Errorf("only hosts publish listings: %w", domain.ErrForbidden)
	}
	if p.RawPrice <= 0 {
		return fmt.Errorf("listing price must be positive, got %d", p.RawPrice)
	}

	p.HostID = hostID
	// Every submission goes through moderation.
	p.Status = domain.PropertyStatusPending
	p.RejectionReason = ""
	return s.propertyRepo.Create(ctx, p)
}

func (s *propertyService) UpdateProperty(ctx context.Context, actorID int32, p *domain.Property) error {
	existing, err := s.propertyRepo.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if actorID != 0 && existing.HostID != actorID {
		return domain.ErrForbidden
	}

	existing.Title = p.Title
	existing.Description = p.Description
	existing.Location = p.Location
	existing.Type = p.Type
	existing.RawPrice = p.RawPrice
	existing.InstantBook = p.InstantBook
	return s.propertyRepo.Update(ctx, existing)
}

func (s *propertyService) GetProperty(ctx context.Context, id int32) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if host, err := s.userRepo.GetByID(ctx, property.HostID); err == nil {
		property.Host = host
	}
	return property, nil
}

func (s *propertyService) ListOnline(ctx context.Context, page, pageSize int32) ([]domain.Property, int32, error) {
	return s.propertyRepo.List(ctx, string(domain.PropertyStatusOnline), page, pageSize)
}

func (s *propertyService) ListByHost(ctx context.Context, hostID int32) ([]domain.Property, error) {
	return s.propertyRepo.ListByHost(ctx, hostID)
}

func (s *propertyService) ListForModeration(ctx context.Context, adminID int32, status string, page, pageSize int32) ([]domain.Property, int32, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, 0, err
	}
	return s.propertyRepo.List(ctx, status, page, pageSize)
}

func (s *propertyService) ListBlockedDates(ctx context.Context, propertyID int32) ([]time.Time, error) {
	return s.propertyRepo.ListBlockedDates(ctx, propertyID)
}

func (s *propertyService) Moderate(ctx context.Context, adminID, propertyID int32, approve bool, reason string) (*domain.Property, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if approve {
		property.Status = domain.PropertyStatusOnline
		property.RejectionReason = ""
	} else {
		property.Status = domain.PropertyStatusRejected
		property.RejectionReason = reason
	}
	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	if host, err := s.userRepo.GetByID(ctx, property.HostID); err == nil {
		_ = s.emailSvc.SendPropertyModerationNotice(ctx, host.Email, property.Title, approve, reason)
	}
	message := fmt.Sprintf("Your listing '%s' is now online", property.Title)
	if !approve {
		message = fmt.Sprintf("Your listing '%s' was rejected", property.Title)
	}
	s.events.Publish(ctx, domain.Event{
		Type:        domain.EventPropertyModerated,
		RecipientID: property.HostID,
		Title:       "Listing review",
		Message:     message,
		Attributes:  map[string]string{"property_id": fmt.Sprintf("%d", property.ID)},
	})
	return property, nil
}

func (s *propertyService) TakeOffline(ctx context.Context, actorID, propertyID int32) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if actorID != 0 && actorID != property.HostID {
		if err := s.requireAdmin(ctx, actorID); err != nil {
			return nil, err
		}
	}

	property.Status = domain.PropertyStatusDraft
	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) requireAdmin(ctx context.Context, userID int32) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != domain.UserRoleAdmin {
		return fmt.Errorf("admin role required: %w", domain.ErrForbidden)
	}
	return nil
}
