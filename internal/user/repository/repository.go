package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	models "github.com/amalpanikulangara/arreWhatsapp/internal/user/model"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/logger"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrUserNotFound = errors.New("user not found")

	// Duplicate sentinels cover the race where two registrations pass the
	// Exists pre-checks and the unique index rejects the loser.
	ErrDuplicateUserID       = errors.New("userId already registered")
	ErrDuplicateUsername     = errors.New("userName already registered")
	ErrDuplicateMobileNumber = errors.New("mobileNumber already registered")
)

func NewUserRepository(db *bun.DB, logger *logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {

	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch {
			case strings.Contains(constraint, "username"):
				return ErrDuplicateUsername
			case strings.Contains(constraint, "mobile_number"):
				return ErrDuplicateMobileNumber
			default:
				return ErrDuplicateUserID
			}
		}
		return errors.Wrap(err, "userRepo.CreateUser.InsertUser: ")
	}
	return nil
}

// uniqueViolation reports the violated constraint name when the server
// rejected a write with SQLSTATE 23505.
func uniqueViolation(err error) (string, bool) {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == "23505" {
		return pgErr.Field('n'), true
	}
	return "", false
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {

	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) UserIDExists(ctx context.Context, id string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.UserIDExists.Exists: ")
	}
	return exists, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Where("username = ?", username).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.UsernameExists.Exists: ")
	}
	return exists, nil
}

func (r *UserRepository) MobileNumberExists(ctx context.Context, mobileNumber string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Where("mobile_number = ?", mobileNumber).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.MobileNumberExists.Exists: ")
	}
	return exists, nil
}

func (r *UserRepository) TouchActivity(ctx context.Context, id string, active bool, seenAt time.Time) error {
	res, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("is_active = ?", active).
		Set("last_seen_at = ?", seenAt).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.TouchActivity.Update: ")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "userRepo.TouchActivity.RowsAffected: ")
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
