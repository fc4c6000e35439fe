package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/azor-ahai1/SwapSpace/config"
	"github.com/azor-ahai1/SwapSpace/internal/domain"
	"github.com/azor-ahai1/SwapSpace/internal/dto"
	"github.com/azor-ahai1/SwapSpace/internal/infrastructure/imagehost"
	"github.com/azor-ahai1/SwapSpace/internal/infrastructure/mailer"
	"github.com/azor-ahai1/SwapSpace/internal/repository"
	"github.com/azor-ahai1/SwapSpace/pkg/errs"
	"github.com/azor-ahai1/SwapSpace/pkg/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const otpExpiry = 10 * time.Minute

type UserServiceImpl struct {
	userRepo repository.UserRepository
	otpRepo  repository.OTPRepository
	mailer   mailer.Mailer
	uploader imagehost.Uploader
	config   config.Config
}

func CreateUserService(userRepo repository.UserRepository, otpRepo repository.OTPRepository, mailer mailer.Mailer, uploader imagehost.Uploader, config config.Config) UserService {
	return &UserServiceImpl{userRepo: userRepo, otpRepo: otpRepo, mailer: mailer, uploader: uploader, config: config}
}

func (s *UserServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (resp dto.UserResponse, err error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" || email == "" || req.Password == "" {
		return resp, errs.ErrClient
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return
	}
	if !existing.ID.IsZero() {
		return resp, errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	user := domain.User{
		Name:           name,
		Email:          email,
		HashedPassword: string(hash),
	}

	id, err := s.userRepo.AddUser(ctx, user)
	if err != nil {
		return
	}

	user.ID = id
	return userResponse(user), nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error) {
	if req.Email == "" || req.Password == "" {
		return resp, errs.ErrClient
	}

	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return
	}
	if user.ID.IsZero() {
		return resp, errs.ErrAccountNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return
	}

	resp.User = userResponse(user)
	resp.AccessToken = accessToken
	resp.RefreshToken = refreshToken

	return resp, nil
}

func (s *UserServiceImpl) Logout(ctx context.Context, userID string) (err error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errs.ErrNotLoggedIn
	}

	return s.userRepo.UpdateRefreshToken(ctx, id, "")
}

// RefreshToken rotates both tokens. The presented refresh token must both
// verify and match the copy stored on the user document, so a stolen token
// stops working after the next legitimate rotation.
func (s *UserServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (resp dto.TokenPairResponse, err error) {
	if refreshToken == "" {
		return resp, errs.ErrNotLoggedIn
	}

	userID, _, err := utils.ParseToken(refreshToken, s.config.JWTConfig.RefreshTokenSecret)
	if err != nil {
		return
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return resp, errs.ErrNotLoggedIn
	}

	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return resp, errs.ErrExpiredToken
	}

	accessToken, newRefreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return
	}

	resp.AccessToken = accessToken
	resp.RefreshToken = newRefreshToken

	return resp, nil
}

func (s *UserServiceImpl) issueTokens(ctx context.Context, user domain.User) (accessToken string, refreshToken string, err error) {
	accessToken, err = utils.CreateAccessToken(user.ID.Hex(), user.Email, user.Name, s.config.JWTConfig.AccessTokenSecret, s.config.JWTConfig.AccessTokenExpiry)
	if err != nil {
		return
	}

	refreshToken, err = utils.CreateRefreshToken(user.ID.Hex(), s.config.JWTConfig.RefreshTokenSecret, s.config.JWTConfig.RefreshTokenExpiry)
	if err != nil {
		return
	}

	err = s.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken)

	return
}

func (s *UserServiceImpl) GetCurrentUser(ctx context.Context, userID string) (resp dto.UserResponse, err error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return
	}

	return userResponse(user), nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest, profileImage io.Reader) (resp dto.UserResponse, err error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		return resp, errs.ErrClient
	}

	user.Name = name
	user.Email = email
	user.PhoneNumber = req.PhoneNumber
	user.InstaID = req.InstaID
	user.ProfileImage = ""

	if profileImage != nil {
		url, err := s.uploader.UploadImage(ctx, profileImage, profileImageFolder)
		if err != nil {
			return resp, err
		}
		user.ProfileImage = url
	}

	if err = s.userRepo.UpdateProfile(ctx, user); err != nil {
		return
	}

	return s.GetCurrentUser(ctx, userID)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) (err error) {
	if req.NewPassword == "" {
		return errs.ErrClient
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.OldPassword))
	if err != nil {
		return errs.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, string(hash))
}

func (s *UserServiceImpl) GetOrderHistory(ctx context.Context, userID string) (view repository.OrderHistoryView, err error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return view, errs.ErrClient
	}

	return s.userRepo.GetUserOrderHistory(ctx, id)
}

func (s *UserServiceImpl) GetProductHistory(ctx context.Context, userID string) (view repository.ProductHistoryView, err error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return view, errs.ErrClient
	}

	return s.userRepo.GetUserProductHistory(ctx, id)
}

func (s *UserServiceImpl) GetDashboard(ctx context.Context, userID string) (view repository.DashboardView, err error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return view, errs.ErrClient
	}

	return s.userRepo.GetUserDashboard(ctx, id)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (view repository.ProfileView, err error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return view, errs.ErrClient
	}

	return s.userRepo.GetUserProfile(ctx, id)
}

func (s *UserServiceImpl) SendOTP(ctx context.Context, req dto.SendOTPRequest) (err error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return errs.ErrClient
	}

	code, err := generateOTPCode()
	if err != nil {
		return
	}

	err = s.otpRepo.UpsertOTP(ctx, domain.OTP{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(otpExpiry),
	})
	if err != nil {
		return
	}

	if err = s.mailer.SendOTPEmail(email, code); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SendOTP").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (s *UserServiceImpl) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (err error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Code == "" {
		return errs.ErrClient
	}

	otp, err := s.otpRepo.GetOTPByEmail(ctx, email)
	if err != nil {
		return
	}

	if otp.Code != req.Code || time.Now().After(otp.ExpiresAt) {
		return errs.ErrInvalidOTP
	}

	return s.otpRepo.DeleteOTPByEmail(ctx, email)
}

func (s *UserServiceImpl) getUser(ctx context.Context, userID string) (user domain.User, err error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return user, errs.ErrNotLoggedIn
	}

	return s.userRepo.GetUserByID(ctx, id)
}

func userResponse(user domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           user.ID.Hex(),
		Name:         user.Name,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		InstaID:      user.InstaID,
		ProfileImage: user.ProfileImage,
		CreatedAt:    user.CreatedAt,
	}
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
