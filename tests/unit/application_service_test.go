package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/service"
)

func TestHostApplicationService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		applicationRepo := new(MockHostApplicationRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewHostApplicationService(applicationRepo, userRepo, new(MockEmailService), &eventRecorder{})

		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Role: domain.UserRoleGuest}, nil)
		applicationRepo.On("GetPendingByApplicant", ctx, int32(1)).Return(nil, domain.ErrNotFound)
		applicationRepo.On("Create", ctx, mock.AnythingOfType("*domain.HostApplication")).Return(nil)

		app, err := svc.Apply(ctx, 1, "stays", "Two flats in Lyon")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	})

	t.Run("Hosts cannot reapply", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewHostApplicationService(new(MockHostApplicationRepo), userRepo, new(MockEmailService), &eventRecorder{})

		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Role: domain.UserRoleHost}, nil)

		_, err := svc.Apply(ctx, 1, "stays", "desc")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Pending application is returned as is", func(t *testing.T) {
		applicationRepo := new(MockHostApplicationRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewHostApplicationService(applicationRepo, userRepo, new(MockEmailService), &eventRecorder{})

		pending := &domain.HostApplication{ID: 3, ApplicantID: 1, Status: domain.ApplicationStatusPending}
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Role: domain.UserRoleGuest}, nil)
		applicationRepo.On("GetPendingByApplicant", ctx, int32(1)).Return(pending, nil)

		app, err := svc.Apply(ctx, 1, "stays", "desc")
		assert.NoError(t, err)
		assert.Equal(t, int32(3), app.ID)
		applicationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestHostApplicationService_Decide(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: 9, Role: domain.UserRoleAdmin}

	t.Run("Approval promotes the applicant to host", func(t *testing.T) {
		applicationRepo := new(MockHostApplicationRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		events := &eventRecorder{}
		svc := service.NewHostApplicationService(applicationRepo, userRepo, emailSvc, events)

		applicant := &domain.User{ID: 1, Email: "a@test.fr", Name: "Anne", Role: domain.UserRoleGuest}
		application := &domain.HostApplication{ID: 3, ApplicantID: 1, Status: domain.ApplicationStatusPending}

		userRepo.On("GetByID", ctx, int32(9)).Return(admin, nil)
		applicationRepo.On("GetByID", ctx, int32(3)).Return(application, nil)
		applicationRepo.On("Update", ctx, mock.AnythingOfType("*domain.HostApplication")).Return(nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(applicant, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
		emailSvc.On("SendApplicationDecision", ctx, "a@test.fr", "Anne", true, "").Return(nil)

		decided, err := svc.Decide(ctx, 9, 3, true, "")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApproved, decided.Status)
		assert.NotNil(t, decided.DecidedOn)
		assert.Equal(t, domain.UserRoleHost, applicant.Role)
		assert.Equal(t, []domain.EventType{domain.EventApplicationDecided}, events.Types())
	})

	t.Run("Rejection keeps the role", func(t *testing.T) {
		applicationRepo := new(MockHostApplicationRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewHostApplicationService(applicationRepo, userRepo, emailSvc, &eventRecorder{})

		applicant := &domain.User{ID: 1, Email: "a@test.fr", Name: "Anne", Role: domain.UserRoleGuest}
		application := &domain.HostApplication{ID: 3, ApplicantID: 1, Status: domain.ApplicationStatusPending}

		userRepo.On("GetByID", ctx, int32(9)).Return(admin, nil)
		applicationRepo.On("GetByID", ctx, int32(3)).Return(application, nil)
		applicationRepo.On("Update", ctx, mock.AnythingOfType("*domain.HostApplication")).Return(nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(applicant, nil)
		emailSvc.On("SendApplicationDecision", ctx, "a@test.fr", "Anne", false, "no documents").Return(nil)

		decided, err := svc.Decide(ctx, 9, 3, false, "no documents")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusRejected, decided.Status)
		assert.Equal(t, domain.UserRoleGuest, applicant.Role)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Non-admin forbidden", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewHostApplicationService(new(MockHostApplicationRepo), userRepo, new(MockEmailService), &eventRecorder{})

		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Role: domain.UserRoleHost}, nil)

		_, err := svc.Decide(ctx, 1, 3, true, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Already decided", func(t *testing.T) {
		applicationRepo := new(MockHostApplicationRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewHostApplicationService(applicationRepo, userRepo, new(MockEmailService), &eventRecorder{})

		userRepo.On("GetByID", ctx, int32(9)).Return(admin, nil)
		applicationRepo.On("GetByID", ctx, int32(3)).Return(&domain.HostApplication{ID: 3, Status: domain.ApplicationStatusApproved}, nil)

		_, err := svc.Decide(ctx, 9, 3, true, "")
		assert.Error(t, err)
		applicationRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
