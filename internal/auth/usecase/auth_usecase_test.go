package usecase

import (
	"fmt"
	"testing"
	"time"

	authdomain "github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/domain"
	authdto "github.com/CHANDANgig/Personalized-To-do-list-app/internal/auth/dto"
	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo assigns ids on Create like the real store does.
type fakeUserRepo struct {
	users []*authdomain.User
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
	}
}

func register(t *testing.T, uc AuthUsecase) *authdto.TokenResponse {
	t.Helper()
	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterIssuesToken(t *testing.T) {
	uc := NewAuthUsecase(&fakeUserRepo{}, testConfig())

	resp := register(t, uc)
	assert.NotEmpty(t, resp.AccessToken)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	// The stored password is a bcrypt hash, never the plaintext.
	assert.NotEqual(t, "secret123", resp.User.Password)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	uc := NewAuthUsecase(&fakeUserRepo{}, testConfig())
	register(t, uc)

	_, err := uc.Register(&authdto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "another1",
		Name:     "Alice Again",
	})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	uc := NewAuthUsecase(&fakeUserRepo{}, testConfig())
	register(t, uc)

	resp, err := uc.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = uc.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "wrong-pass"})
	assert.Error(t, err)

	_, err = uc.Login(&authdto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.Error(t, err)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	uc := NewAuthUsecase(&fakeUserRepo{}, testConfig())
	resp := register(t, uc)

	user, err := uc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	uc := NewAuthUsecase(&fakeUserRepo{}, testConfig())

	for _, token := range []string{"", "not.a.token", "eyJhbGciOiJIUzI1NiJ9.e30."} {
		_, err := uc.ValidateToken(token)
		assert.Error(t, err, token)
	}
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewAuthUsecase(repo, testConfig())
	resp := register(t, uc)

	other := NewAuthUsecase(repo, &config.Config{JWTSecret: "other-secret", JWTAccessExpiry: time.Hour})
	_, err := other.ValidateToken(resp.AccessToken)
	assert.Error(t, err)
}
