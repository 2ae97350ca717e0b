package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
	"github.com/dyingroomdev/memshaheb-sub001/internal/repositories"
	"github.com/dyingroomdev/memshaheb-sub001/internal/utils"
)

const (
	otpExpirationMinutes    = 10
	otpPurposeResetPassword = "reset_password"
)

// OTPService handles one-time codes for the password reset flow.
type OTPService interface {
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, otpCode, newPassword string) error
}

type otpService struct {
	userRepo     repositories.UserRepository
	otpRepo      repositories.OTPRepository
	emailService EmailService
}

func NewOTPService(userRepo repositories.UserRepository, otpRepo repositories.OTPRepository, emailService EmailService) OTPService {
	s := &otpService{userRepo: userRepo, otpRepo: otpRepo, emailService: emailService}
	go s.purgeExpiredPeriodically()
	return s
}

func (s *otpService) purgeExpiredPeriodically() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s.otpRepo.DeleteExpired(ctx); err != nil {
			log.Error().Err(err).Msg("Error purging expired one-time codes")
		}
		cancel()
	}
}

func (s *otpService) RequestPasswordReset(ctx context.Context, email string) error {
	log.Debug().Str("email", email).Msg("Password reset requested")
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn().Str("email", email).Msg("Password reset requested for unknown email")
			return fmt.Errorf("user not found")
		}
		log.Error().Err(err).Str("email", email).Msg("Error looking up user for password reset")
		return fmt.Errorf("internal server error")
	}

	otpCode, err := utils.GenerateSecureOTP(6)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate one-time code")
		return fmt.Errorf("internal server error")
	}

	otp := &models.OTP{
		UserID:    user.ID,
		OTPCode:   otpCode,
		Purpose:   otpPurposeResetPassword,
		ExpiresAt: time.Now().Add(otpExpirationMinutes * time.Minute),
		IsUsed:    false,
	}

	if _, err := s.otpRepo.Create(ctx, otp); err != nil {
		log.Error().Err(err).Str("user_id", user.ID.Hex()).Msg("Failed to store one-time code")
		return fmt.Errorf("internal server error")
	}

	subject := "Your Password Reset Code"
	body := fmt.Sprintf("Your password reset code is: <b>%s</b><br>It expires in %d minutes.", otpCode, otpExpirationMinutes)
	if err := s.emailService.SendEmail(user.Email, subject, body); err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("Failed to send password reset email")
		return fmt.Errorf("failed to send email")
	}

	log.Info().Str("user_id", user.ID.Hex()).Msg("Password reset code sent")
	return nil
}

func (s *otpService) ResetPassword(ctx context.Context, email, otpCode, newPassword string) error {
	log.Debug().Str("email", email).Msg("Attempting password reset")
	if newPassword == "" {
		return fmt.Errorf("new password is required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("user not found")
		}
		log.Error().Err(err).Str("email", email).Msg("Error looking up user for password reset")
		return fmt.Errorf("internal server error")
	}

	otp, err := s.otpRepo.FindActive(ctx, user.ID, otpCode, otpPurposeResetPassword)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID.Hex()).Msg("Error looking up one-time code")
		return fmt.Errorf("internal server error")
	}
	if otp == nil {
		log.Warn().Str("user_id", user.ID.Hex()).Msg("Invalid or expired one-time code")
		return fmt.Errorf("invalid or expired code")
	}

	if err := s.otpRepo.MarkAsUsed(ctx, otp.ID); err != nil {
		log.Error().Err(err).Str("otp_id", otp.ID.Hex()).Msg("Failed to mark one-time code as used")
		return fmt.Errorf("internal server error")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), 8)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash new password during reset")
		return fmt.Errorf("internal server error")
	}

	updateFields := bson.M{"password": string(hashedPassword), "updated_at": time.Now().UTC()}
	if _, err := s.userRepo.Update(ctx, user.ID, updateFields); err != nil {
		return err
	}

	log.Info().Str("user_id", user.ID.Hex()).Msg("Password reset successfully")
	return nil
}
