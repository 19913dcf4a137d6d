package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/security"
	"sejour-backend/internal/service"
)

const testJWTSecret = "unit-test-secret-that-is-long-enough"

func newUserFixture() (*MockUserRepo, *MockEmailService, *eventRecorder, service.UserService) {
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	events := &eventRecorder{}
	tokens := security.NewTokenManager(testJWTSecret, 60)
	return userRepo, emailSvc, events, service.NewUserService(userRepo, tokens, emailSvc, events)
}

func TestUserService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo, _, _, svc := newUserFixture()

		userRepo.On("GetByEmail", ctx, "anne@test.fr").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 1
		}).Return(nil)

		user, token, err := svc.Signup(ctx, "Anne", "anne@test.fr", "+33600000000", "motdepasse")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, domain.UserRoleGuest, user.Role)
		assert.Equal(t, domain.UserStatusActive, user.Status)
		assert.Equal(t, domain.VerificationNone, user.Verification)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("motdepasse")))

		claims, err := security.NewTokenManager(testJWTSecret, 60).ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), claims.UserID)
	})

	t.Run("Email taken", func(t *testing.T) {
		userRepo, _, _, svc := newUserFixture()

		userRepo.On("GetByEmail", ctx, "anne@test.fr").Return(&domain.User{ID: 1}, nil)

		_, _, err := svc.Signup(ctx, "Anne", "anne@test.fr", "", "motdepasse")
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.DefaultCost)
	active := &domain.User{ID: 1, Email: "anne@test.fr", PasswordHash: string(hash), Status: domain.UserStatusActive, Role: domain.UserRoleGuest}

	t.Run("Success", func(t *testing.T) {
		userRepo, _, _, svc := newUserFixture()
		userRepo.On("GetByEmail", ctx, "anne@test.fr").Return(active, nil)

		user, token, err := svc.Login(ctx, "anne@test.fr", "motdepasse")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, int32(1), user.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo, _, _, svc := newUserFixture()
		userRepo.On("GetByEmail", ctx, "anne@test.fr").Return(active, nil)

		_, _, err := svc.Login(ctx, "anne@test.fr", "oops")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Unknown email maps to invalid credentials", func(t *testing.T) {
		userRepo, _, _, svc := newUserFixture()
		userRepo.On("GetByEmail", ctx, "nobody@test.fr").Return(nil, domain.ErrNotFound)

		_, _, err := svc.Login(ctx, "nobody@test.fr", "motdepasse")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Suspended account", func(t *testing.T) {
		userRepo, _, _, svc := newUserFixture()
		suspended := *active
		suspended.Status = domain.UserStatusSuspended
		userRepo.On("GetByEmail", ctx, "anne@test.fr").Return(&suspended, nil)

		_, _, err := svc.Login(ctx, "anne@test.fr", "motdepasse")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestUserService_SetUserStatus(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: 9, Role: domain.UserRoleAdmin}

	t.Run("Suspension notifies by email", func(t *testing.T) {
		userRepo, emailSvc, _, svc := newUserFixture()

		target := &domain.User{ID: 1, Email: "anne@test.fr", Name: "Anne", Status: domain.UserStatusActive}
		userRepo.On("GetByID", ctx, int32(9)).Return(admin, nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(target, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
		emailSvc.On("SendAccountStatusNotification", ctx, "anne@test.fr", "Anne", "SUSPENDED", "fraud").Return(nil)

		err := svc.SetUserStatus(ctx, 9, 1, domain.UserStatusSuspended, "fraud")
		assert.NoError(t, err)
		assert.Equal(t, domain.UserStatusSuspended, target.Status)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Idempotent when status unchanged", func(t *testing.T) {
		userRepo, emailSvc, _, svc := newUserFixture()

		target := &domain.User{ID: 1, Status: domain.UserStatusActive}
		userRepo.On("GetByID", ctx, int32(9)).Return(admin, nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(target, nil)

		err := svc.SetUserStatus(ctx, 9, 1, domain.UserStatusActive, "")
		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		emailSvc.AssertNotCalled(t, "SendAccountStatusNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Non-admin forbidden", func(t *testing.T) {
		userRepo, _, _, svc := newUserFixture()
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Role: domain.UserRoleGuest}, nil)

		err := svc.SetUserStatus(ctx, 1, 2, domain.UserStatusSuspended, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestUserService_SetVerification(t *testing.T) {
	ctx := context.Background()
	admin := &domain.User{ID: 9, Role: domain.UserRoleAdmin}

	t.Run("Approval publishes an event", func(t *testing.T) {
		userRepo, _, events, svc := newUserFixture()

		target := &domain.User{ID: 1, Verification: domain.VerificationPending}
		userRepo.On("GetByID", ctx, int32(9)).Return(admin, nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(target, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		err := svc.SetVerification(ctx, 9, 1, true)
		assert.NoError(t, err)
		assert.Equal(t, domain.VerificationVerified, target.Verification)
		assert.Equal(t, []domain.EventType{domain.EventVerificationChanged}, events.Types())
	})

	t.Run("Decline resets to none", func(t *testing.T) {
		userRepo, _, _, svc := newUserFixture()

		target := &domain.User{ID: 1, Verification: domain.VerificationPending}
		userRepo.On("GetByID", ctx, int32(9)).Return(admin, nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(target, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		err := svc.SetVerification(ctx, 9, 1, false)
		assert.NoError(t, err)
		assert.Equal(t, domain.VerificationNone, target.Verification)
	})
}
