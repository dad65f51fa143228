package usecase

import (
	"context"
	"errors"

	"agromarket-api/internal/domain/user"
	"agromarket-api/internal/infra/db"
	"agromarket-api/internal/pkg/jwt"
	"agromarket-api/internal/pkg/password"
	"agromarket-api/internal/usecase/readmodel"
	"agromarket-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *readmodel.AuthorizedUserRM, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type authUseCaseImpl struct {
	users      UserReadStore
	userRepo   shared.UserRepository
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthUseCase(users UserReadStore, userRepo shared.UserRepository, uow shared.UnitOfWork, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		users:      users,
		userRepo:   userRepo,
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *readmodel.AuthorizedUserRM, error) {
	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, nil, err
	}

	pair, err := a.issueTokens(userReadModel)
	if err != nil {
		return nil, nil, err
	}

	err = a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return a.userRepo.UpdateLastLogin(ctx, dbtx, userReadModel.ID)
	})
	if err != nil {
		return nil, nil, err
	}

	return pair, userReadModel, nil
}

func (a *authUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, *readmodel.AuthorizedUserRM, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, nil, ErrTokenValidation
	}

	userReadModel, err := a.users.FindByID(ctx, claims.UserID)
	if err != nil || userReadModel == nil {
		return nil, nil, ErrUserNotFound
	}
	if !userReadModel.IsActive {
		return nil, nil, ErrUserInactive
	}

	pair, err := a.issueTokens(userReadModel)
	if err != nil {
		return nil, nil, err
	}
	return pair, userReadModel, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUserRM, error) {
	userReadModel, hashedPassword, err := a.users.FindByEmail(ctx, credentials.Email())
	if err != nil || userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	if err = password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}

func (a *authUseCaseImpl) issueTokens(rm *readmodel.AuthorizedUserRM) (*TokenPair, error) {
	role, err := user.NewRole(rm.Role)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	access, refresh, err := a.jwtService.GenerateTokenPair(rm.ID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	rm, err := a.users.FindByID(ctx, userID)
	if err != nil || rm == nil {
		return nil, ErrUserNotFound
	}

	if !rm.IsActive {
		return nil, ErrUserInactive
	}

	return rm, nil
}
