package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/FlamesIsCool/tagz-bio/internal/repository"
	tokenIssuer "github.com/FlamesIsCool/tagz-bio/pkg/jwt"
	"github.com/FlamesIsCool/tagz-bio/pkg/password"
)

var ErrUsernameTaken error = errors.New("username already taken")
var ErrEmailRegistered error = errors.New("email already registered")
var ErrInvalidCredentials error = errors.New("invalid credentials")
var ErrInvalidToken error = errors.New("invalid token")
var ErrUserNotFound error = errors.New("user not found")

// Tagz implements signup, login, session resolution and profile reads and
// writes for the link-in-bio service.
type Tagz struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer TokenIssuer
	tokenTTL  time.Duration
}

func NewTagz(logger *zap.SugaredLogger, repo Repository, jwt TokenIssuer, tokenTTL time.Duration) *Tagz {
	return &Tagz{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		tokenTTL:  tokenTTL,
	}
}

// Signup creates a new account and returns a signed access token for it.
// Username and email are stored lowercase so lookups are case-insensitive.
func (t *Tagz) Signup(ctx context.Context, msg SignupMessage) (string, error) {
	username := strings.ToLower(msg.Username)
	email := strings.ToLower(msg.Email)

	digest, err := password.Hash(msg.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := t.repo.CreateUser(ctx, username, email, digest)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return "", ErrUsernameTaken
		}
		if errors.Is(err, repository.ErrEmailRegistered) {
			return "", ErrEmailRegistered
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	t.logs.Infow("user signed up", "username", user.Username)

	return t.issueToken(user.Username)
}

// Login verifies credentials against either username or email. Unknown
// identifier and wrong password are indistinguishable to the caller.
func (t *Tagz) Login(ctx context.Context, msg LoginMessage) (string, error) {
	identifier := strings.ToLower(msg.Identifier)

	user, err := t.repo.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user by identifier: %w", err)
	}

	if !password.Verify(msg.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	t.logs.Infow("user logged in", "username", user.Username)

	return t.issueToken(user.Username)
}

// ResolveSession maps a bearer token to its owning user. It re-verifies the
// token and performs exactly one repository lookup per call.
func (t *Tagz) ResolveSession(ctx context.Context, token string) (repository.User, error) {
	claims, err := t.jwtIssuer.Validate(token)
	if err != nil {
		return repository.User{}, ErrInvalidToken
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return repository.User{}, ErrInvalidToken
	}

	user, err := t.repo.GetUserByUsername(ctx, strings.ToLower(subject))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// user deleted after the token was issued
			return repository.User{}, ErrUserNotFound
		}
		return repository.User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// PublicProfile returns the profile view for any visitor.
func (t *Tagz) PublicProfile(ctx context.Context, username string) (ProfileView, error) {
	user, err := t.repo.GetUserByUsername(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ProfileView{}, ErrUserNotFound
		}
		return ProfileView{}, fmt.Errorf("get user by username: %w", err)
	}

	return t.ProfileOf(ctx, user)
}

// ProfileOf assembles the profile view of an already resolved user.
func (t *Tagz) ProfileOf(ctx context.Context, user repository.User) (ProfileView, error) {
	links, err := t.repo.GetUserLinks(ctx, user.ID)
	if err != nil {
		return ProfileView{}, fmt.Errorf("get user links: %w", err)
	}

	return assembleProfile(user, links), nil
}

// UpdateProfile applies a partial update for the owner and returns the fresh
// profile view. The repository guarantees the write is atomic.
func (t *Tagz) UpdateProfile(ctx context.Context, user repository.User, msg UpdateProfileMessage) (ProfileView, error) {
	changes := repository.ProfileChanges{
		Bio:       msg.Bio,
		AvatarURL: msg.AvatarURL,
		ThemeHex:  msg.ThemeHex,
	}
	if msg.Links != nil {
		changes.Links = make([]repository.LinkChange, len(msg.Links))
		for i, l := range msg.Links {
			changes.Links[i] = repository.LinkChange{
				Title:      l.Title,
				URL:        l.URL,
				Icon:       l.Icon,
				OrderIndex: l.OrderIndex,
			}
		}
	}

	if err := t.repo.UpdateProfile(ctx, user.ID, changes); err != nil {
		return ProfileView{}, fmt.Errorf("update profile: %w", err)
	}

	t.logs.Infow("profile updated",
		"username", user.Username,
		"links_replaced", msg.Links != nil)

	fresh, err := t.repo.GetUserByUsername(ctx, user.Username)
	if err != nil {
		return ProfileView{}, fmt.Errorf("reload user: %w", err)
	}

	return t.ProfileOf(ctx, fresh)
}

func (t *Tagz) issueToken(subject string) (string, error) {
	token := t.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Subject: subject,
		TTL:     t.tokenTTL,
	})

	signed, err := t.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// assembleProfile renders the stored entities into the outward view. The
// sort is stable so links sharing an order_index keep insertion order.
func assembleProfile(user repository.User, links []repository.Link) ProfileView {
	sorted := make([]repository.Link, len(links))
	copy(sorted, links)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})

	views := make([]LinkView, 0, len(sorted))
	for _, l := range sorted {
		views = append(views, LinkView{
			ID:         l.ID,
			Title:      l.Title,
			URL:        l.URL,
			Icon:       l.Icon,
			OrderIndex: l.OrderIndex,
		})
	}

	return ProfileView{
		Username:  user.Username,
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
		ThemeHex:  user.ThemeHex,
		Links:     views,
	}
}
