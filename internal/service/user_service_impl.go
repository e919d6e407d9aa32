package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AsadUllahBilal/TechThrive/config"
	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/repository"
	pkgdto "github.com/AsadUllahBilal/TechThrive/pkg/dto"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/AsadUllahBilal/TechThrive/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/gomail.v2"
)

const otpTTL = 10 * time.Minute

type UserServiceImpl struct {
	userRepo repository.UserRepository
	config   config.Config
}

func CreateUserService(userRepo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{userRepo: userRepo, config: config}
}

func (s *UserServiceImpl) Register(ctx context.Context, data dto.UserRequest) (err error) {
	if data.Name == "" || data.Email == "" || data.Password == "" {
		return errs.ErrClient
	}

	_, err = s.userRepo.GetUserByEmail(ctx, data.Email)
	if err == nil {
		return errs.ErrEmailAlreadyUsed
	}
	if err != errs.ErrNotFound {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = s.userRepo.AddUser(ctx, domain.User{
		Name:           data.Name,
		Email:          data.Email,
		HashedPassword: string(hash),
		Role:           domain.RoleUser,
		ExternalID:     ulid.Make().String(),
		Verified:       false,
		OTP:            otp,
		OTPExpiresAt:   now.Add(otpTTL).Unix(),
		CreatedAt:      now.Unix(),
		UpdatedAt:      now.Unix(),
	})
	if err != nil {
		return
	}

	if err = s.sendVerificationEmail(data.Email, data.Name, otp); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Register").Msg("")
		return err
	}

	return nil
}

func (s *UserServiceImpl) VerifyEmail(ctx context.Context, data dto.VerifyRequest) (err error) {
	user, err := s.userRepo.GetUserByEmail(ctx, data.Email)
	if err != nil {
		return errs.ErrClient
	}

	if user.Verified {
		return errs.ErrClient
	}

	if user.OTP != data.OTP {
		return errs.ErrInvalidOTP
	}

	if time.Now().Unix() > user.OTPExpiresAt {
		return errs.ErrExpiredOTP
	}

	return s.userRepo.MarkUserVerified(ctx, user.ID.Hex())
}

func (s *UserServiceImpl) Login(ctx context.Context, data dto.UserRequest) (respPayload dto.LoginResponse, err error) {
	user, err := s.userRepo.GetUserByEmail(ctx, data.Email)
	if err != nil {
		if err == errs.ErrNotFound {
			return respPayload, errs.ErrAccountNotFound
		}
		return
	}

	if !user.Verified {
		return respPayload, errs.ErrUnverifiedUser
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(data.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(user.ID.Hex(), user.Name, user.Role, user.ExternalID, s.config.JWTSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.UserID = user.ID.Hex()
	respPayload.Role = user.Role

	return
}

func (s *UserServiceImpl) GetUsers(ctx context.Context, param pkgdto.Filter) (data []dto.UserResponse, err error) {
	users, err := s.userRepo.GetUsers(ctx, param)
	if err != nil {
		return
	}

	for _, user := range users {
		data = append(data, dto.UserResponse{
			ID:        user.ID.Hex(),
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			Verified:  user.Verified,
			CreatedAt: user.CreatedAt,
		})
	}

	return data, nil
}

func (s *UserServiceImpl) sendVerificationEmail(email string, name string, otp string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPConfig.Sender)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Verify your TechThrive account")
	m.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nYour verification code is %s. It expires in 10 minutes.\n", name, otp))

	return utils.SendEmail(m, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port)
}
