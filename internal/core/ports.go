package core

import (
	"context"

	"github.com/golang-jwt/jwt"

	"github.com/FlamesIsCool/tagz-bio/internal/repository"
	tokenIssuer "github.com/FlamesIsCool/tagz-bio/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByIdentifier(ctx context.Context, identifier string) (repository.User, error)
	GetUserLinks(ctx context.Context, userID uint) ([]repository.Link, error)
	UpdateProfile(ctx context.Context, userID uint, changes repository.ProfileChanges) error
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
