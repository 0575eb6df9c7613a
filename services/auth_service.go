package services

import (
	"context"

	"storefront/logger"
	"storefront/models"
	"storefront/repositories"
	"storefront/utils"
)

type AuthService struct {
	userRepo repositories.UserRepository
	sessions SessionStore
	email    EmailSender
}

// NewAuthService wires the auth flow. email may be nil when SMTP is not
// configured; forgot-password then fails with a clear message instead of
// silently dropping mail.
func NewAuthService(userRepo repositories.UserRepository, sessions SessionStore, email EmailSender) *AuthService {
	return &AuthService{userRepo: userRepo, sessions: sessions, email: email}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	if existing, _ := s.userRepo.FindByEmail(ctx, req.Email); existing != nil {
		return nil, ErrEmailTaken
	}
	if existing, _ := s.userRepo.FindByPhone(ctx, req.Phone); existing != nil {
		return nil, ErrPhoneTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashedPassword,
		Phone:    req.Phone,
		Role:     models.RoleCustomer,
		Status:   models.UserStatusActive,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Create(ctx, user.ID, false); err != nil {
		logger.Log.Warn().Err(err).Int("user_id", user.ID).Msg("failed to create session record")
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	switch user.Status {
	case models.UserStatusBanned:
		return nil, ErrAccountBanned
	case models.UserStatusInactive:
		return nil, ErrAccountInactive
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Create(ctx, user.ID, req.RememberMe); err != nil {
		logger.Log.Warn().Err(err).Int("user_id", user.ID).Msg("failed to create session record")
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID int) error {
	return s.sessions.Destroy(ctx, userID)
}

// ForgotPassword resets the account to a generated temporary password and
// mails it to the user. The password is only changed when the mail goes out.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return ErrUserNotFound
	}

	if s.email == nil {
		return ErrEmailNotConfigured
	}

	tempPassword := utils.GenerateTempPassword()
	hashedPassword, err := utils.HashPassword(tempPassword)
	if err != nil {
		return err
	}

	if err := s.email.SendTemporaryPassword(user.Email, user.FullName, tempPassword); err != nil {
		logger.Log.Error().Err(err).Str("email", user.Email).Msg("failed to send password reset email")
		return ErrEmailSendFailed
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword)
}

func (s *AuthService) GetProfile(ctx context.Context, userID int) (*models.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Phone != "" && req.Phone != user.Phone {
		if existing, _ := s.userRepo.FindByPhone(ctx, req.Phone); existing != nil {
			return nil, ErrPhoneTaken
		}
		user.Phone = req.Phone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID int, req models.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}

	valid, err := utils.VerifyPassword(user.Password, req.OldPassword)
	if err != nil || !valid {
		return ErrInvalidOldPassword
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, hashedPassword)
}
