package usecase

import (
	"context"
	"errors"

	"loandesk/internal/domain/user"
	"loandesk/internal/pkg/jwt"
	"loandesk/internal/pkg/password"
	"loandesk/internal/usecase/queries"
)

var (
	ErrUserNotFound         = errors.New("usuario not found")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type UserRepository interface {
	FindByIdentifier(ctx context.Context, identifier string) (*queries.AuthorizedUserView, string, error)
	FindAuthorizedByID(ctx context.Context, id int64) (*queries.AuthorizedUserView, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, usuarioID int64) (*queries.AuthorizedUserView, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.userRepo.FindByIdentifier(ctx, credentials.Identifier())
	if err != nil {
		// A missing usuario and a wrong password are indistinguishable on
		// the wire.
		return "", nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.NombreRol)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, view, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, usuarioID int64) (*queries.AuthorizedUserView, error) {
	view, err := a.userRepo.FindAuthorizedByID(ctx, usuarioID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return view, nil
}
