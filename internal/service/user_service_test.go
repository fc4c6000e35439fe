package service

import (
	"context"
	"testing"
	"time"

	"github.com/azor-ahai1/SwapSpace/config"
	"github.com/azor-ahai1/SwapSpace/internal/dto"
	"github.com/azor-ahai1/SwapSpace/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userTestEnv struct {
	userRepo *fakeUserRepository
	otpRepo  *fakeOTPRepository
	mailer   *fakeMailer
	service  UserService
}

func setupUserTest(t *testing.T) *userTestEnv {
	t.Helper()

	env := &userTestEnv{
		userRepo: newFakeUserRepository(),
		otpRepo:  newFakeOTPRepository(),
		mailer:   newFakeMailer(),
	}

	conf := config.Config{
		JWTConfig: config.JWTConfig{
			AccessTokenSecret:  "access-secret",
			RefreshTokenSecret: "refresh-secret",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: time.Hour,
		},
	}
	env.service = CreateUserService(env.userRepo, env.otpRepo, env.mailer, nil, conf)

	return env
}

func (env *userTestEnv) register(t *testing.T, name string, email string, password string) dto.UserResponse {
	t.Helper()

	resp, err := env.service.Register(context.Background(), dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return resp
}

func TestRegister(t *testing.T) {
	env := setupUserTest(t)

	resp := env.register(t, "  Asha  ", "Asha@Campus.EDU", "secret123")

	assert.Equal(t, "Asha", resp.Name)
	assert.Equal(t, "asha@campus.edu", resp.Email)
	assert.NotEmpty(t, resp.ID)

	user, err := env.userRepo.GetUserByEmail(context.Background(), "asha@campus.edu")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("secret123")))
}

func TestRegisterValidation(t *testing.T) {
	env := setupUserTest(t)
	env.register(t, "Asha", "asha@campus.edu", "secret123")

	testCases := []struct {
		name        string
		request     dto.RegisterRequest
		expectedErr error
	}{
		{
			name:        "duplicate email",
			request:     dto.RegisterRequest{Name: "Other", Email: "ASHA@campus.edu", Password: "secret123"},
			expectedErr: errs.ErrEmailAlreadyUsed,
		},
		{
			name:        "missing name",
			request:     dto.RegisterRequest{Email: "new@campus.edu", Password: "secret123"},
			expectedErr: errs.ErrClient,
		},
		{
			name:        "missing password",
			request:     dto.RegisterRequest{Name: "New", Email: "new@campus.edu"},
			expectedErr: errs.ErrClient,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.service.Register(context.Background(), tc.request)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestLogin(t *testing.T) {
	env := setupUserTest(t)
	env.register(t, "Asha", "asha@campus.edu", "secret123")

	resp, err := env.service.Login(context.Background(), dto.LoginRequest{
		Email:    "asha@campus.edu",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "asha@campus.edu", resp.User.Email)

	user, err := env.userRepo.GetUserByEmail(context.Background(), "asha@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, resp.RefreshToken, user.RefreshToken)
}

func TestLoginFailures(t *testing.T) {
	env := setupUserTest(t)
	env.register(t, "Asha", "asha@campus.edu", "secret123")

	_, err := env.service.Login(context.Background(), dto.LoginRequest{
		Email:    "asha@campus.edu",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

	_, err = env.service.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@campus.edu",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestRefreshTokenRotation(t *testing.T) {
	env := setupUserTest(t)
	env.register(t, "Asha", "asha@campus.edu", "secret123")

	login, err := env.service.Login(context.Background(), dto.LoginRequest{
		Email:    "asha@campus.edu",
		Password: "secret123",
	})
	require.NoError(t, err)

	pair, err := env.service.RefreshToken(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// The old token was rotated out and no longer matches the stored copy.
	_, err = env.service.RefreshToken(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, errs.ErrExpiredToken)
}

func TestRefreshTokenAfterLogout(t *testing.T) {
	env := setupUserTest(t)
	registered := env.register(t, "Asha", "asha@campus.edu", "secret123")

	login, err := env.service.Login(context.Background(), dto.LoginRequest{
		Email:    "asha@campus.edu",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, env.service.Logout(context.Background(), registered.ID))

	_, err = env.service.RefreshToken(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, errs.ErrExpiredToken)
}

func TestUpdateProfile(t *testing.T) {
	env := setupUserTest(t)
	registered := env.register(t, "Asha", "asha@campus.edu", "secret123")

	resp, err := env.service.UpdateProfile(context.Background(), registered.ID, dto.UpdateProfileRequest{
		Name:        "Asha R",
		Email:       "asha@campus.edu",
		PhoneNumber: "9876543210",
		InstaID:     "asha.reads",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Asha R", resp.Name)
	assert.Equal(t, "9876543210", resp.PhoneNumber)
	assert.Equal(t, "asha.reads", resp.InstaID)
}

func TestChangePassword(t *testing.T) {
	env := setupUserTest(t)
	registered := env.register(t, "Asha", "asha@campus.edu", "secret123")

	err := env.service.ChangePassword(context.Background(), registered.ID, dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newsecret",
	})
	assert.ErrorIs(t, err, errs.ErrWrongPassword)

	err = env.service.ChangePassword(context.Background(), registered.ID, dto.ChangePasswordRequest{
		OldPassword: "secret123",
		NewPassword: "newsecret",
	})
	require.NoError(t, err)

	_, err = env.service.Login(context.Background(), dto.LoginRequest{
		Email:    "asha@campus.edu",
		Password: "newsecret",
	})
	assert.NoError(t, err)
}

func TestOTPFlow(t *testing.T) {
	env := setupUserTest(t)

	require.NoError(t, env.service.SendOTP(context.Background(), dto.SendOTPRequest{Email: "asha@campus.edu"}))

	code := env.mailer.sent["asha@campus.edu"]
	require.Len(t, code, 6)

	wrongCode := "000000"
	if code == wrongCode {
		wrongCode = "111111"
	}
	err := env.service.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: "asha@campus.edu", Code: wrongCode})
	assert.ErrorIs(t, err, errs.ErrInvalidOTP)

	require.NoError(t, env.service.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: "asha@campus.edu", Code: code}))

	// The code is single use.
	err = env.service.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: "asha@campus.edu", Code: code})
	assert.ErrorIs(t, err, errs.ErrInvalidOTP)
}
