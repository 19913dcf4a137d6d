package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/repository"
	"sejour-backend/internal/security"
)

type userService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
	emailSvc EmailService
	events   EventSink
}

func NewUserService(
	userRepo repository.UserRepository,
	tokens security.TokenManager,
	emailSvc EmailService,
	events EventSink,
) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		emailSvc: emailSvc,
		events:   events,
	}
}

func (s *userService) Signup(ctx context.Context, name, email, phone, password string) (*domain.User, string, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		PhoneNumber:  phone,
		Role:         domain.UserRoleGuest,
		Status:       domain.UserStatusActive,
		Verification: domain.VerificationNone,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if user.Status == domain.UserStatusSuspended {
		return nil, "", fmt.Errorf("account suspended: %w", domain.ErrForbidden)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, name, phone, avatarURL string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.PhoneNumber = phone
	}
	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}
	return s.userRepo.Update(ctx, user)
}

func (s *userService) SubmitVerification(ctx context.Context, userID int32) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Verification == domain.VerificationVerified {
		return nil
	}
	user.Verification = domain.VerificationPending
	return s.userRepo.Update(ctx, user)
}

func (s *userService) SetVerification(ctx context.Context, adminID, userID int32, approve bool) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if approve {
		user.Verification = domain.VerificationVerified
	} else {
		user.Verification = domain.VerificationNone
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	message := "Your identity is now verified"
	if !approve {
		message = "Your identity verification was declined"
	}
	s.events.Publish(ctx, domain.Event{
		Type:        domain.EventVerificationChanged,
		RecipientID: user.ID,
		Title:       "Identity verification",
		Message:     message,
	})
	return nil
}

func (s *userService) SetUserStatus(ctx context.Context, adminID, userID int32, status domain.UserStatus, reason string) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Status == status {
		return nil
	}
	user.Status = status
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	_ = s.emailSvc.SendAccountStatusNotification(ctx, user.Email, user.Name, string(status), reason)
	return nil
}

func (s *userService) SetUserRole(ctx context.Context, adminID, userID int32, role domain.UserRole) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Role = role
	return s.userRepo.Update(ctx, user)
}

func (s *userService) ListUsers(ctx context.Context, adminID int32, role, status string, page, pageSize int32) ([]domain.User, int32, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, 0, err
	}
	return s.userRepo.List(ctx, role, status, page, pageSize)
}

func (s *userService) requireAdmin(ctx context.Context, userID int32) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != domain.UserRoleAdmin {
		return fmt.Errorf("admin role required: %w", domain.ErrForbidden)
	}
	return nil
}
