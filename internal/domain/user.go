package domain

import "time"

type UserRole string

const (
	UserRoleGuest UserRole = "GUEST"
	UserRoleHost  UserRole = "HOST"
	UserRoleAdmin UserRole = "ADMIN"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

type VerificationStatus string

const (
	VerificationNone     VerificationStatus = "NONE"
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
)

// User is never deleted; suspension is the only way to take an account out
// of circulation, so bookings and ledger entries always keep a valid owner.
type User struct {
	ID           int32              `json:"id"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"-"`
	Name         string             `json:"name"`
	PhoneNumber  string             `json:"phone_number"`
	AvatarURL    string             `json:"avatar_url"`
	Role         UserRole           `json:"role"`
	Status       UserStatus         `json:"status"`
	Verification VerificationStatus `json:"verification"`
	CreatedOn    time.Time          `json:"created_on"`
	UpdatedOn    time.Time          `json:"updated_on"`
}
