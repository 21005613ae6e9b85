package user

import (
	"context"
)

type UserUsecase interface {
	// Register validates the candidate, hashes the credential and inserts.
	// Uniqueness of userId, userName (case-insensitive) and mobileNumber is
	// checked against the whole directory.
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)

	// Touch records activity: flips is_active and stamps last_seen_at.
	Touch(ctx context.Context, userID string, active bool) error

	// Verify compares a candidate password against the stored credential.
	Verify(ctx context.Context, userID, password string) (bool, error)

	Login(ctx context.Context, userID, password string) (*LoginResponse, error)

	GetProfile(ctx context.Context, userID string) (*UserDTO, error)
}
