package repository_test

import (
	"context"
	"testing"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateWithProfile(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateWithProfile(ctx, user))

	var count int64
	require.NoError(t, db.Model(&model.Profile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	require.NotNil(t, user.Profile)
	assert.Equal(t, user.ID, user.Profile.UserID)
}

func TestUserRepository_CreateWithProfile_DuplicateUsername(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateWithProfile(ctx, &model.User{Username: "alice", PasswordHash: "x"}))
	err := repo.CreateWithProfile(ctx, &model.User{Username: "alice", PasswordHash: "y"})
	require.Error(t, err)

	var users, profiles int64
	db.Model(&model.User{}).Count(&users)
	db.Model(&model.Profile{}).Count(&profiles)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), profiles, "failed sign-up must not leave an orphan profile")
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()
	created := testutil.CreateUser(t, db, "bob")

	user, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	exists, err := repo.ExistsByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProfileRepository_FindByUserID_CreatesMissingProfile(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProfileRepository(db)
	ctx := context.Background()

	user := &model.User{Username: "legacy", PasswordHash: "x"}
	require.NoError(t, db.Omit("Profile").Create(user).Error)

	profile, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)

	again, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
}

func TestProfileRepository_Update(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewProfileRepository(db)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	profile, err := repo.FindByUserID(ctx, alice.ID)
	require.NoError(t, err)
	profile.Skills = "Go, SQL"
	require.NoError(t, repo.Update(ctx, alice.ID, profile))

	reloaded, err := repo.FindByUserID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go, SQL", reloaded.Skills)

	profile.Skills = "hijacked"
	assert.ErrorIs(t, repo.Update(ctx, bob.ID, profile), repository.ErrNotFound)
}
