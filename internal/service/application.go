package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/repository"
)

type hostApplicationService struct {
	applicationRepo repository.HostApplicationRepository
	userRepo        repository.UserRepository
	emailSvc        EmailService
	events          EventSink
}

func NewHostApplicationService(
	applicationRepo repository.HostApplicationRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	events EventSink,
) HostApplicationService {
	return &hostApplicationService{
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		emailSvc:        emailSvc,
		events:          events,
	}
}

func (s *hostApplicationService) Apply(ctx context.Context, applicantID int32, businessDomain, description string) (*domain.HostApplication, error) {
	applicant, err := s.userRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant.Role == domain.UserRoleHost || applicant.Role == domain.UserRoleAdmin {
		return nil, fmt.Errorf("already a host: %w", domain.ErrForbidden)
	}

	if pending, err := s.applicationRepo.GetPendingByApplicant(ctx, applicantID); err == nil {
		// One application in flight per user; returning the existing one
		// makes the endpoint safe to retry.
		return pending, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	application := &domain.HostApplication{
		ApplicantID:    applicantID,
		BusinessDomain: businessDomain,
		Description:    description,
		Status:         domain.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

func (s *hostApplicationService) Decide(ctx context.Context, adminID, applicationID int32, approve bool, reason string) (*domain.HostApplication, error) {
	admin, err := s.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin.Role != domain.UserRoleAdmin {
		return nil, fmt.Errorf("admin role required: %w", domain.ErrForbidden)
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Status != domain.ApplicationStatusPending {
		return nil, fmt.Errorf("application %d already decided", applicationID)
	}

	now := time.Now()
	application.DecidedOn = &now
	application.DecisionReason = reason
	if approve {
		application.Status = domain.ApplicationStatusApproved
	} else {
		application.Status = domain.ApplicationStatusRejected
	}
	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	applicant, err := s.userRepo.GetByID(ctx, application.ApplicantID)
	if err != nil {
		return nil, err
	}
	if approve {
		applicant.Role = domain.UserRoleHost
		if err := s.userRepo.Update(ctx, applicant); err != nil {
			return nil, err
		}
	}

	_ = s.emailSvc.SendApplicationDecision(ctx, applicant.Email, applicant.Name, approve, reason)

	message := "Your host application was approved. Welcome aboard!"
	if !approve {
		message = "Your host application was rejected"
	}
	s.events.Publish(ctx, domain.Event{
		Type:        domain.EventApplicationDecided,
		RecipientID: applicant.ID,
		Title:       "Host application",
		Message:     message,
		Attributes:  map[string]string{"application_id": fmt.Sprintf("%d", application.ID)},
	})
	return application, nil
}

func (s *hostApplicationService) List(ctx context.Context, adminID int32, status string) ([]domain.HostApplication, error) {
	admin, err := s.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin.Role != domain.UserRoleAdmin {
		return nil, fmt.Errorf("admin role required: %w", domain.ErrForbidden)
	}
	return s.applicationRepo.ListByStatus(ctx, status)
}
