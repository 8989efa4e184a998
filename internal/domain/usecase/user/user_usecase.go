package user

import (
	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
)

// Transaction listing bounds
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// UserUseCase implements the user business logic
type UserUseCase struct {
	uow          persistence.UnitOfWork
	adminEmails  map[string]struct{}
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new user use case instance. Accounts whose email
// is listed in adminEmails get the admin role.
func NewUserUseCase(
	uow persistence.UnitOfWork,
	adminEmails []string,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.UserUseCase {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = entity.NormalizeEmail(e); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &UserUseCase{
		uow:          uow,
		adminEmails:  admins,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (u *UserUseCase) roleFor(email string) entity.Role {
	if _, ok := u.adminEmails[entity.NormalizeEmail(email)]; ok {
		return entity.RoleAdmin
	}
	return entity.RoleUser
}
