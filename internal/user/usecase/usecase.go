package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/amalpanikulangara/arreWhatsapp/config"
	"github.com/amalpanikulangara/arreWhatsapp/internal/user"
	models "github.com/amalpanikulangara/arreWhatsapp/internal/user/model"
	"github.com/amalpanikulangara/arreWhatsapp/internal/user/repository"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/errors"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/logger"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/utils"
)

const minPasswordLen = 8

var mobileNumberRegex = regexp.MustCompile(`^\d{10}$`)

type UserUsecase struct {
	repo   user.UserRepository
	logger *logger.Logger
	config *config.Config
}

func NewUserUsecase(repo user.UserRepository, logger *logger.Logger, config *config.Config) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger, config: config}
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.UserDTO, error) {
	if strings.TrimSpace(cmd.UserID) == "" {
		return nil, errors.ErrInvalidUserID
	}
	username := strings.ToLower(strings.TrimSpace(cmd.Username))
	if username == "" {
		return nil, errors.ErrInvalidUsername
	}
	if !mobileNumberRegex.MatchString(cmd.MobileNumber) {
		return nil, errors.ErrInvalidMobileNumber
	}
	if len(cmd.Password) < minPasswordLen {
		return nil, errors.ErrInvalidPassword
	}

	if exists, err := uc.repo.UserIDExists(ctx, cmd.UserID); err != nil {
		uc.logger.Error("database error checking userId", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrUserIDTaken
	}

	if exists, err := uc.repo.UsernameExists(ctx, username); err != nil {
		uc.logger.Error("database error checking username", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrUsernameTaken
	}

	if exists, err := uc.repo.MobileNumberExists(ctx, cmd.MobileNumber); err != nil {
		uc.logger.Error("database error checking mobile number", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrMobileNumberTaken
	}

	hash, err := utils.HashPassword(cmd.Password)
	if err != nil {
		uc.logger.Error("failed to hash password", "err", err)
		return nil, errors.Internal("internal server error")
	}

	u := &models.User{
		ID:             cmd.UserID,
		Username:       username,
		MobileNumber:   cmd.MobileNumber,
		PasswordHash:   hash,
		AdminAccess:    cmd.AdminAccess,
		ProfilePicture: cmd.ProfilePicture,
		StatusMessage:  cmd.StatusMessage,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		// A concurrent registration can win the unique index after our
		// pre-checks passed; that is still a constraint failure.
		switch {
		case errors.Is(err, repository.ErrDuplicateUserID):
			return nil, errors.ErrUserIDTaken
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, errors.ErrUsernameTaken
		case errors.Is(err, repository.ErrDuplicateMobileNumber):
			return nil, errors.ErrMobileNumberTaken
		}
		uc.logger.Errorf("error while saving user in db: %v", err)
		return nil, errors.ErrRegistrationFailed(errors.Internal("database error"))
	}

	return toUserDTO(u), nil
}

func (uc *UserUsecase) Touch(ctx context.Context, userID string, active bool) error {
	err := uc.repo.TouchActivity(ctx, userID, active, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.ErrUserNotFound
		}
		uc.logger.Error("failed to update activity", "user_id", userID, "err", err)
		return errors.Internal("error while updating activity")
	}
	return nil
}

func (uc *UserUsecase) Verify(ctx context.Context, userID, password string) (bool, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to load user for verification", "user_id", userID, "err", err)
		return false, errors.Internal("internal server error")
	}
	return utils.CheckPassword(u.PasswordHash, password), nil
}

func (uc *UserUsecase) Login(ctx context.Context, userID, password string) (*user.LoginResponse, error) {
	ok, err := uc.Verify(ctx, userID, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ErrWrongPassword
	}

	token, err := utils.GenerateAccessToken(userID, uc.config)
	if err != nil {
		uc.logger.Error("failed to sign access token", "err", err)
		return nil, errors.Internal("error while creating token")
	}

	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.Internal("internal server error")
	}

	return &user.LoginResponse{
		AccessToken: token,
		ExpiresIn:   uc.config.JWT.ExpiredIn,
		TokenType:   "Bearer",
		User:        toUserDTO(u),
	}, nil
}

func (uc *UserUsecase) GetProfile(ctx context.Context, userID string) (*user.UserDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.Internal("internal server error")
	}
	return toUserDTO(u), nil
}

func toUserDTO(u *models.User) *user.UserDTO {
	return &user.UserDTO{
		ID:             u.ID,
		Username:       u.Username,
		MobileNumber:   u.MobileNumber,
		AdminAccess:    u.AdminAccess,
		IsActive:       u.IsActive,
		LastSeenAt:     u.LastSeenAt,
		ProfilePicture: u.ProfilePicture,
		StatusMessage:  u.StatusMessage,
	}
}
