package user

import (
	"context"
	"time"

	models "github.com/amalpanikulangara/arreWhatsapp/internal/user/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	UserIDExists(ctx context.Context, id string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	MobileNumberExists(ctx context.Context, mobileNumber string) (bool, error)

	// TouchActivity updates is_active and last_seen_at in one statement
	TouchActivity(ctx context.Context, id string, active bool, seenAt time.Time) error
}
