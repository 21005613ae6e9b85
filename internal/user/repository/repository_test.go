package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	models "github.com/amalpanikulangara/arreWhatsapp/internal/user/model"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("arre"),
		postgres.WithUsername("arre"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	if _, err := testDB.NewCreateTable().Model((*models.User)(nil)).IfNotExists().Exec(ctx); err != nil {
		testDB.Close()
		log.Fatalf("failed to create users table: %v", err)
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func cleanupUsers(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE users CASCADE`)
		require.NoError(t, err)
	})
}

func newTestUser(id, username, mobile string) *models.User {
	return &models.User{
		ID:           id,
		Username:     username,
		MobileNumber: mobile,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	}
}

func Test_CreateUser(t *testing.T) {
	cleanupUsers(t)

	repo := NewUserRepository(testDB, nil)
	err := repo.CreateUser(context.Background(), newTestUser("u-1", "aayush", "9876543210"))
	require.NoError(t, err)
}

func Test_CreateUser_DuplicateUsername(t *testing.T) {
	cleanupUsers(t)

	repo := NewUserRepository(testDB, nil)
	require.NoError(t, repo.CreateUser(context.Background(), newTestUser("u-1", "aayush", "9876543210")))

	err := repo.CreateUser(context.Background(), newTestUser("u-2", "aayush", "9876543211"))
	assert.ErrorIs(t, err, ErrDuplicateUsername, "unique index on username must reject the second insert")

	err = repo.CreateUser(context.Background(), newTestUser("u-2", "bhavesh", "9876543210"))
	assert.ErrorIs(t, err, ErrDuplicateMobileNumber)

	err = repo.CreateUser(context.Background(), newTestUser("u-1", "bhavesh", "9876543211"))
	assert.ErrorIs(t, err, ErrDuplicateUserID)
}

func Test_GetUserByID(t *testing.T) {
	cleanupUsers(t)

	repo := NewUserRepository(testDB, nil)
	u := newTestUser("u-1", "aayush", "9876543210")
	require.NoError(t, repo.CreateUser(context.Background(), u))

	fetched, err := repo.GetUserByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, u.Username, fetched.Username)
	assert.Equal(t, u.MobileNumber, fetched.MobileNumber)

	_, err = repo.GetUserByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func Test_ExistsChecks(t *testing.T) {
	cleanupUsers(t)

	repo := NewUserRepository(testDB, nil)
	require.NoError(t, repo.CreateUser(context.Background(), newTestUser("u-1", "aayush", "9876543210")))

	ok, err := repo.UserIDExists(context.Background(), "u-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UsernameExists(context.Background(), "aayush")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MobileNumberExists(context.Background(), "0000000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_TouchActivity(t *testing.T) {
	cleanupUsers(t)

	repo := NewUserRepository(testDB, nil)
	require.NoError(t, repo.CreateUser(context.Background(), newTestUser("u-1", "aayush", "9876543210")))

	seenAt := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.TouchActivity(context.Background(), "u-1", true, seenAt))

	fetched, err := repo.GetUserByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.True(t, fetched.IsActive)
	assert.WithinDuration(t, seenAt, fetched.LastSeenAt, time.Second)

	err = repo.TouchActivity(context.Background(), "ghost", true, seenAt)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
