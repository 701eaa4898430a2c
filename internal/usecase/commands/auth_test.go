//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentwheels/internal/pkg/errs"
	"rentwheels/internal/pkg/jwt"
	"rentwheels/internal/pkg/password"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"
)

type fakeUserReadStore struct {
	views  map[string]*queries.AuthorizedUserView
	hashes map[string]string
}

func newFakeUserReadStore() *fakeUserReadStore {
	return &fakeUserReadStore{
		views:  make(map[string]*queries.AuthorizedUserView),
		hashes: make(map[string]string),
	}
}

func (s *fakeUserReadStore) seed(t *testing.T, email, plainPassword, userType string) *queries.AuthorizedUserView {
	t.Helper()
	hash, err := password.HashPassword(plainPassword)
	require.NoError(t, err)
	view := &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    email,
		UserType: userType,
	}
	s.views[email] = view
	s.hashes[email] = hash
	return view
}

func (s *fakeUserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	for _, v := range s.views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, notFoundErr("user not found")
}

func (s *fakeUserReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	if v, ok := s.views[email]; ok {
		return v, s.hashes[email], nil
	}
	return nil, "", notFoundErr("user not found")
}

func newAuthCommands(uow *fakeUoW, store *fakeUserReadStore) (commands.AuthCommands, *jwt.Service) {
	svc := jwt.NewService("test-secret", time.Hour)
	return commands.NewAuthCommands(uow, store, svc), svc
}

func TestSignUp(t *testing.T) {
	uow := newFakeUoW()
	cmds, jwtService := newAuthCommands(uow, newFakeUserReadStore())

	result, err := cmds.SignUp(context.Background(), commands.SignUpRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
		UserType: "customer",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, result.UserID)

	claims, err := jwtService.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.UserID, claims.UserID)
	assert.Equal(t, "customer", claims.UserType)

	stored, ok := uow.state.users[result.UserID]
	require.True(t, ok)
	assert.Equal(t, "Alice", stored.Name())
	// The stored credential is a hash, never the raw password.
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash())
	assert.NoError(t, password.ComparePassword(stored.PasswordHash(), "hunter2hunter2"))

	t.Run("email already registered", func(t *testing.T) {
		_, err := cmds.SignUp(context.Background(), commands.SignUpRequest{
			Name:     "Mallory",
			Email:    "alice@example.com",
			Password: "hunter2hunter2",
			UserType: "customer",
		})
		assert.ErrorIs(t, err, commands.ErrEmailAlreadyUsed)
	})
}

func TestSignUpValidation(t *testing.T) {
	uow := newFakeUoW()
	cmds, _ := newAuthCommands(uow, newFakeUserReadStore())

	cases := []struct {
		name string
		req  commands.SignUpRequest
	}{
		{"malformed email", commands.SignUpRequest{Name: "A", Email: "not-an-email", Password: "hunter2hunter2", UserType: "customer"}},
		{"short password", commands.SignUpRequest{Name: "A", Email: "a@example.com", Password: "short", UserType: "customer"}},
		{"unknown user type", commands.SignUpRequest{Name: "A", Email: "a@example.com", Password: "hunter2hunter2", UserType: "admin"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cmds.SignUp(context.Background(), tc.req)
			assert.ErrorIs(t, err, errs.ErrDomainValidation)
		})
	}
}

func TestLogin(t *testing.T) {
	uow := newFakeUoW()
	store := newFakeUserReadStore()
	view := store.seed(t, "agent@example.com", "correct-horse", "agent")
	cmds, jwtService := newAuthCommands(uow, store)

	result, err := cmds.Login(context.Background(), commands.LoginRequest{
		Email:    "agent@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, view.ID, result.UserID)

	claims, err := jwtService.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, view.ID, claims.UserID)
	assert.Equal(t, "agent", claims.UserType)

	assert.Equal(t, 1, uow.state.lastLogin[view.ID])
}

func TestLoginRejections(t *testing.T) {
	uow := newFakeUoW()
	store := newFakeUserReadStore()
	store.seed(t, "agent@example.com", "correct-horse", "agent")
	cmds, _ := newAuthCommands(uow, store)

	t.Run("wrong password", func(t *testing.T) {
		_, err := cmds.Login(context.Background(), commands.LoginRequest{
			Email:    "agent@example.com",
			Password: "wrong-horse",
		})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email looks identical", func(t *testing.T) {
		_, err := cmds.Login(context.Background(), commands.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct-horse",
		})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("agent account through customer portal", func(t *testing.T) {
		_, err := cmds.Login(context.Background(), commands.LoginRequest{
			Email:    "agent@example.com",
			Password: "correct-horse",
			UserType: "customer",
		})
		assert.ErrorIs(t, err, commands.ErrWrongAccountType)
	})

	t.Run("matching portal passes", func(t *testing.T) {
		_, err := cmds.Login(context.Background(), commands.LoginRequest{
			Email:    "agent@example.com",
			Password: "correct-horse",
			UserType: "agent",
		})
		assert.NoError(t, err)
	})

	t.Run("wrong password reported before portal mismatch", func(t *testing.T) {
		_, err := cmds.Login(context.Background(), commands.LoginRequest{
			Email:    "agent@example.com",
			Password: "wrong-horse",
			UserType: "customer",
		})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
