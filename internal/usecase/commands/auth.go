package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"rentwheels/internal/domain/user"
	"rentwheels/internal/infra"
	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/pkg/jwt"
	"rentwheels/internal/pkg/password"
	"rentwheels/internal/usecase/queries"
	"rentwheels/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrWrongAccountType     = errs.New("wrong account type for this login")
	ErrEmailAlreadyUsed     = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type SignUpRequest struct {
	Name     string
	Email    string
	Password string
	UserType string
}

type LoginRequest struct {
	Email    string
	Password string
	// UserType is the portal the login came from; empty skips the check.
	UserType string
}

type LoginResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	SignUp(ctx context.Context, req SignUpRequest) (*LoginResult, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) SignUp(ctx context.Context, req SignUpRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	userType, err := user.NewType(req.UserType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity, err := user.NewUser(req.Name, email, hash, userType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Users().Create(ctx, entity)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrEmailAlreadyUsed
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		userID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(userID, userType)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{UserID: userID, Token: token}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Credentials are verified before the portal check so a wrong password
	// never reveals which portal the account belongs to.
	if req.UserType != "" && req.UserType != view.UserType {
		return nil, ErrWrongAccountType
	}

	userType, err := user.NewType(view.UserType)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, userType)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, view.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", view.ID, "error", updateErr.Error())
			// Login already succeeded; the timestamp is best effort
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{UserID: view.ID, Token: token}, nil
}
