package handler

import (
	"context"
	"net/http"

	"github.com/FlamesIsCool/tagz-bio/internal/core"
	"github.com/FlamesIsCool/tagz-bio/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ProfileService . ProfileService
type ProfileService interface {
	Signup(ctx context.Context, msg core.SignupMessage) (string, error)
	Login(ctx context.Context, msg core.LoginMessage) (string, error)
	ResolveSession(ctx context.Context, token string) (repository.User, error)
	ProfileOf(ctx context.Context, user repository.User) (core.ProfileView, error)
	PublicProfile(ctx context.Context, username string) (core.ProfileView, error)
	UpdateProfile(ctx context.Context, user repository.User, msg core.UpdateProfileMessage) (core.ProfileView, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
