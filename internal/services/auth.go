package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rohits-web03/travelstory/internal/auth"
	"github.com/rohits-web03/travelstory/internal/models"
	"github.com/rohits-web03/travelstory/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Session is what a successful register or login hands back to the client.
type Session struct {
	User        *models.User
	AccessToken string
}

type RegisterInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService handles account creation, password login and the profile of
// the authenticated caller.
type AuthService struct {
	users      UserStore
	tokens     *auth.Issuer
	bcryptCost int
}

func NewAuthService(users UserStore, tokens *auth.Issuer, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates an account and logs it in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return nil, invalid("All fields are required")
	}

	// The unique index on email is the real guard; this lookup only gives
	// the common case a clean answer.
	_, err := s.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, ErrConflict
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		FullName: in.FullName,
		Email:    in.Email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.session(user)
}

// Login checks the password of an existing account. An unknown email yields
// ErrNotFound and a wrong password ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		return nil, invalid("Email and Password are required")
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.session(user)
}

// CurrentUser loads the account a verified token points at.
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

// SignInWithGoogle logs in the account matching the Google profile's email,
// creating one when none exists. Accounts created here have no password and
// can only sign in through Google.
func (s *AuthService) SignInWithGoogle(ctx context.Context, profile GoogleProfile) (*Session, error) {
	email := strings.TrimSpace(profile.Email)
	if email == "" || profile.ID == "" {
		return nil, invalid("Google account has no email")
	}
	if !profile.VerifiedEmail {
		return nil, invalid("Google email is not verified")
	}

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if user.GoogleID != nil {
			// An email linked once stays bound to that Google account.
			if *user.GoogleID != profile.ID {
				return nil, invalid("Email is linked to a different Google account")
			}
			return s.session(user)
		}
		if err := s.users.LinkGoogleID(ctx, user.ID, profile.ID); err != nil {
			return nil, fmt.Errorf("link google account: %w", err)
		}
		user.GoogleID = &profile.ID
		return s.session(user)
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	name := strings.TrimSpace(profile.Name)
	if name == "" {
		name = email
	}
	googleID := profile.ID
	user = &models.User{
		FullName: name,
		Email:    email,
		// An empty hash never matches, so password login stays closed.
		Password: "",
		GoogleID: &googleID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return s.session(user)
}

func (s *AuthService) session(user *models.User) (*Session, error) {
	token, err := s.tokens.Generate(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Session{User: user, AccessToken: token}, nil
}
