package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	models "github.com/amalpanikulangara/arreWhatsapp/internal/group/model"
	usermodels "github.com/amalpanikulangara/arreWhatsapp/internal/user/model"
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

	tables := []any{
		(*usermodels.User)(nil),
		(*models.Group)(nil),
		(*models.GroupMember)(nil),
	}
	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func cleanup(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(),
			`TRUNCATE TABLE group_members, groups, users CASCADE`)
		require.NoError(t, err)
	})
}

func seedUsers(t *testing.T, ids ...string) {
	for _, id := range ids {
		u := &usermodels.User{
			ID:           id,
			Username:     id,
			MobileNumber: "55500" + id,
			PasswordHash: "x",
		}
		_, err := testDB.NewInsert().Model(u).Exec(context.Background())
		require.NoError(t, err)
	}
}

func mustCreateGroup(t *testing.T, repo *GroupRepository, name, founder string, participants ...string) *models.Group {
	g := &models.Group{GroupName: name, CreatedBy: founder}
	require.NoError(t, repo.CreateGroup(context.Background(), g, participants))
	return g
}

func adminIDs(members []models.GroupMember) []string {
	var out []string
	for _, m := range members {
		if m.Role == models.RoleAdmin {
			out = append(out, m.UserID)
		}
	}
	return out
}

func Test_CreateGroup(t *testing.T) {
	cleanup(t)
	seedUsers(t, "u-1", "u-2", "u-3")

	repo := NewGroupRepository(testDB, nil)
	g := mustCreateGroup(t, repo, "family", "u-1", "u-2", "u-3")

	members, err := repo.ListMembers(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Len(t, members, 3)
	assert.Equal(t, []string{"u-1"}, adminIDs(members))
}

func Test_CreateGroup_UnknownParticipant(t *testing.T) {
	cleanup(t)
	seedUsers(t, "u-1")

	repo := NewGroupRepository(testDB, nil)
	g := &models.Group{GroupName: "family", CreatedBy: "u-1"}
	err := repo.CreateGroup(context.Background(), g, []string{"ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func Test_CreateGroup_DuplicateName(t *testing.T) {
	cleanup(t)
	seedUsers(t, "u-1")

	repo := NewGroupRepository(testDB, nil)
	mustCreateGroup(t, repo, "family", "u-1")

	g := &models.Group{GroupName: "family", CreatedBy: "u-1"}
	err := repo.CreateGroup(context.Background(), g, nil)
	assert.ErrorIs(t, err, ErrDuplicateGroupName, "unique index on group_name must reject the second insert")
}

func Test_RemoveMember_DropsAdminRoleAtomically(t *testing.T) {
	cleanup(t)
	seedUsers(t, "u-1", "u-2")

	repo := NewGroupRepository(testDB, nil)
	g := mustCreateGroup(t, repo, "family", "u-1", "u-2")
	require.NoError(t, repo.SetMemberRole(context.Background(), g.ID, "u-2", models.RoleAdmin))

	require.NoError(t, repo.RemoveMember(context.Background(), g.ID, "u-2"))

	members, err := repo.ListMembers(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Len(t, members, 1)
	assert.Equal(t, []string{"u-1"}, adminIDs(members), "admin role must not survive participant removal")
}

func Test_SetMemberRole_NonParticipant(t *testing.T) {
	cleanup(t)
	seedUsers(t, "u-1", "u-2")

	repo := NewGroupRepository(testDB, nil)
	g := mustCreateGroup(t, repo, "family", "u-1")

	err := repo.SetMemberRole(context.Background(), g.ID, "u-2", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func Test_AddMember_Idempotent(t *testing.T) {
	cleanup(t)
	seedUsers(t, "u-1", "u-2")

	repo := NewGroupRepository(testDB, nil)
	g := mustCreateGroup(t, repo, "family", "u-1")

	require.NoError(t, repo.AddMember(context.Background(), g.ID, "u-2", models.RoleMember))
	require.NoError(t, repo.AddMember(context.Background(), g.ID, "u-2", models.RoleMember))

	members, err := repo.ListMembers(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func Test_AddMember_UnknownGroup(t *testing.T) {
	cleanup(t)
	seedUsers(t, "u-1")

	repo := NewGroupRepository(testDB, nil)
	err := repo.AddMember(context.Background(), uuid.New(), "u-1", models.RoleMember)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func Test_SetDisappearingMessages(t *testing.T) {
	cleanup(t)
	seedUsers(t, "u-1")

	repo := NewGroupRepository(testDB, nil)
	g := mustCreateGroup(t, repo, "family", "u-1")

	require.NoError(t, repo.SetDisappearingMessages(context.Background(), g.ID, true))

	fetched, err := repo.GetGroupByID(context.Background(), g.ID)
	require.NoError(t, err)
	assert.True(t, fetched.DisappearingMessages)

	err = repo.SetDisappearingMessages(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func Test_GetGroupByName(t *testing.T) {
	cleanup(t)
	seedUsers(t, "u-1")

	repo := NewGroupRepository(testDB, nil)
	g := mustCreateGroup(t, repo, "family", "u-1")

	fetched, err := repo.GetGroupByName(context.Background(), "family")
	require.NoError(t, err)
	assert.Equal(t, g.ID, fetched.ID)

	_, err = repo.GetGroupByName(context.Background(), "ghosts")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func Test_IsMember(t *testing.T) {
	cleanup(t)
	seedUsers(t, "u-1", "u-2")

	repo := NewGroupRepository(testDB, nil)
	g := mustCreateGroup(t, repo, "family", "u-1")

	ok, err := repo.IsMember(context.Background(), g.ID, "u-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsMember(context.Background(), g.ID, "u-2")
	require.NoError(t, err)
	assert.False(t, ok)
}
