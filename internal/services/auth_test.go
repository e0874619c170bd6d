package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/travelstory/internal/auth"
	"github.com/rohits-web03/travelstory/internal/services/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var errBoom = errors.New("boom")

func newAuthService(t *testing.T) (*AuthService, *servicetest.Users, *auth.Issuer) {
	t.Helper()
	users := servicetest.NewUsers()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	return NewAuthService(users, issuer, bcrypt.MinCost), users, issuer
}

func TestAuthService_Register(t *testing.T) {
	svc, users, issuer := newAuthService(t)
	ctx := context.Background()

	sess, err := svc.Register(ctx, RegisterInput{FullName: " Ada ", Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", sess.User.FullName)
	assert.NotEqual(t, "pw", sess.User.Password)

	uid, err := issuer.Verify(sess.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID.String(), uid)

	stored, err := users.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw")))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{FullName: "A", Email: "a@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{FullName: "B", Email: "a@example.com", Password: "y"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _, _ := newAuthService(t)

	for _, in := range []RegisterInput{
		{Email: "a@example.com", Password: "x"},
		{FullName: "A", Password: "x"},
		{FullName: "A", Email: "a@example.com"},
		{FullName: "  ", Email: "a@example.com", Password: "x"},
	} {
		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, ErrValidation)
		assert.EqualError(t, err, "All fields are required")
	}
}

func TestAuthService_Register_LookupFailure(t *testing.T) {
	svc, users, _ := newAuthService(t)
	users.FindErr = errBoom

	_, err := svc.Register(context.Background(), RegisterInput{FullName: "A", Email: "a@example.com", Password: "x"})
	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterInput{FullName: "A", Email: "a@example.com", Password: "secret"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		sess, err := svc.Login(ctx, LoginInput{Email: "a@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.NotEmpty(t, sess.AccessToken)
		assert.Equal(t, "a@example.com", sess.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "a@example.com", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "secret"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "a@example.com"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()
	sess, err := svc.Register(ctx, RegisterInput{FullName: "A", Email: "a@example.com", Password: "x"})
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, sess.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", user.FullName)

	_, err = svc.CurrentUser(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthService_SignInWithGoogle(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account", func(t *testing.T) {
		svc, users, _ := newAuthService(t)
		sess, err := svc.SignInWithGoogle(ctx, GoogleProfile{ID: "g-1", Email: "new@example.com", VerifiedEmail: true, Name: "New"})
		require.NoError(t, err)
		assert.NotEmpty(t, sess.AccessToken)

		stored, err := users.FindByEmail(ctx, "new@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored.GoogleID)
		assert.Equal(t, "g-1", *stored.GoogleID)

		_, err = svc.Login(ctx, LoginInput{Email: "new@example.com", Password: ""})
		assert.ErrorIs(t, err, ErrValidation)
		_, err = svc.Login(ctx, LoginInput{Email: "new@example.com", Password: "anything"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("links existing account", func(t *testing.T) {
		svc, users, _ := newAuthService(t)
		reg, err := svc.Register(ctx, RegisterInput{FullName: "A", Email: "a@example.com", Password: "x"})
		require.NoError(t, err)

		sess, err := svc.SignInWithGoogle(ctx, GoogleProfile{ID: "g-2", Email: "a@example.com", VerifiedEmail: true})
		require.NoError(t, err)
		assert.Equal(t, reg.User.ID, sess.User.ID)

		stored, err := users.FindByID(ctx, reg.User.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.GoogleID)
		assert.Equal(t, "g-2", *stored.GoogleID)
	})

	t.Run("rejects a different google account", func(t *testing.T) {
		svc, users, _ := newAuthService(t)
		first, err := svc.SignInWithGoogle(ctx, GoogleProfile{ID: "g-4", Email: "b@example.com", VerifiedEmail: true})
		require.NoError(t, err)

		again, err := svc.SignInWithGoogle(ctx, GoogleProfile{ID: "g-4", Email: "b@example.com", VerifiedEmail: true})
		require.NoError(t, err)
		assert.Equal(t, first.User.ID, again.User.ID)

		_, err = svc.SignInWithGoogle(ctx, GoogleProfile{ID: "g-5", Email: "b@example.com", VerifiedEmail: true})
		assert.ErrorIs(t, err, ErrValidation)
		assert.EqualError(t, err, "Email is linked to a different Google account")

		stored, err := users.FindByEmail(ctx, "b@example.com")
		require.NoError(t, err)
		assert.Equal(t, "g-4", *stored.GoogleID)
	})

	t.Run("unverified email", func(t *testing.T) {
		svc, _, _ := newAuthService(t)
		_, err := svc.SignInWithGoogle(ctx, GoogleProfile{ID: "g-3", Email: "x@example.com"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}
