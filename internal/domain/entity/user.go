package entity

import (
	"net/mail"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
)

// SystemActorID identifies operations started from the command line. No
// account may use it.
const SystemActorID = "system"

// Role controls access to admin operations
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an account holding a credit balance. The balance is only changed
// through ledger operations; repositories restore it with SetBalance.
type User struct {
	ID                   string
	Email                string
	Username             string
	Role                 Role
	balance              int64
	MessagingID          *int64 // external numeric identity, unique among users when set
	NotificationsEnabled bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewUser creates a user with a zero balance
func NewUser(id, email, username string, role Role, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidUserID
	}

	verr := &errs.ValidationError{}
	email = NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		verr.Add("email", "must be a valid email address")
	}
	if role != RoleUser && role != RoleAdmin {
		verr.Add("role", "must be user or admin")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Email:     email,
		Username:  username,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NormalizeEmail lower-cases and trims an email so lookups are case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Balance returns the current balance in credits
func (u *User) Balance() int64 {
	return u.balance
}

// SetBalance overwrites the balance (for repositories restoring persisted state)
func (u *User) SetBalance(balance int64) {
	u.balance = balance
}

// CanAfford reports whether a debit of amount would keep the balance non-negative
func (u *User) CanAfford(amount int64) bool {
	return amount >= 0 && u.balance >= amount
}

// HasMessagingIdentity reports whether a messaging identity is bound
func (u *User) HasMessagingIdentity() bool {
	return u.MessagingID != nil && *u.MessagingID > 0
}

// IsAdmin reports whether the user may call admin operations
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidateMessagingID checks an externally supplied messaging identity
func ValidateMessagingID(id int64) error {
	if id <= 0 {
		return errs.NewValidationError("messagingId", "must be a positive number")
	}
	return nil
}

// Identity is the caller as asserted by the external identity provider
type Identity struct {
	Subject  string
	Email    string
	Username string
}
