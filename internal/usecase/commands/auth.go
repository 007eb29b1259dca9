package commands

import (
	"context"

	"gymgain/internal/domain/user"
	"gymgain/internal/infra"
	"gymgain/internal/pkg/errs"
	"gymgain/internal/pkg/password"
	"gymgain/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserAlreadyExists  = errs.New("username or email already registered")
	ErrInvalidCredentials = errs.New("invalid email or password")
)

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type AuthCommands interface {
	Register(ctx context.Context, input RegisterInput) (uuid.UUID, error)
	// Login verifies credentials and returns the member snapshot used to
	// seed the session.
	Login(ctx context.Context, email, plainPassword string) (*shared.CredentialSnapshot, error)
}

type authCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAuthCommands(uow shared.UnitOfWork) AuthCommands {
	return &authCommandsImpl{uow: uow}
}

func (c *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (uuid.UUID, error) {
	username, err := user.NewUsername(input.Username)
	if err != nil {
		return uuid.Nil, err
	}
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	newUser := user.NewUser(username, email, hash, input.FirstName, input.LastName)

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Users().Create(ctx, tx.DB(), newUser)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrUserAlreadyExists)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*shared.CredentialSnapshot, error) {
	creds, err := c.uow.CommandReads().CredentialsByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(creds.PasswordHash, plainPassword); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	return creds, nil
}
