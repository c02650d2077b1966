package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devjournal/internal/journal/adapters/memory"
	"devjournal/internal/journal/domain/entities"
)

func strPtr(s string) *string { return &s }

func TestUserRepository_Create(t *testing.T) {
	store, snaps, _ := openStore(t)
	repo := memory.NewUserRepository(store)
	ctx := context.Background()

	user, err := repo.Create(ctx, entities.UserRegistration{
		Username: "alice",
		Password: "hash",
		Email:    strPtr("alice@example.com"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	assert.Equal(t, 1, snaps.Saves())

	byName, ok := repo.GetByUsername(ctx, "alice")
	require.True(t, ok)
	assert.Equal(t, user, byName)

	byID, ok := repo.GetByID(ctx, user.ID)
	require.True(t, ok)
	assert.Equal(t, user, byID)
}

func TestUserRepository_CreateErrors(t *testing.T) {
	tests := []struct {
		name    string
		reg     entities.UserRegistration
		wantErr error
	}{
		{
			name:    "duplicate username",
			reg:     entities.UserRegistration{Username: "alice", Password: "other"},
			wantErr: entities.ErrDuplicateUsername,
		},
		{
			name:    "empty username",
			reg:     entities.UserRegistration{Password: "x"},
			wantErr: entities.ErrEmptyUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, snaps, _ := openStore(t)
			repo := memory.NewUserRepository(store)
			ctx := context.Background()

			original, err := repo.Create(ctx, entities.UserRegistration{Username: "alice", Password: "hash"})
			require.NoError(t, err)

			_, err = repo.Create(ctx, tt.reg)
			require.ErrorIs(t, err, tt.wantErr)

			got, ok := repo.GetByUsername(ctx, "alice")
			require.True(t, ok)
			assert.Equal(t, original, got)
			assert.Len(t, repo.GetAll(ctx), 1)
			assert.Equal(t, 1, snaps.Saves())
		})
	}
}

func TestUserRepository_GetByUsernameMissing(t *testing.T) {
	store, _, _ := openStore(t)

	_, ok := memory.NewUserRepository(store).GetByUsername(context.Background(), "nobody")

	assert.False(t, ok)
}

func TestUserRepository_UpsertExistingKeepsCreatedAt(t *testing.T) {
	store, _, _ := openStore(t)
	repo := memory.NewUserRepository(store)
	ctx := context.Background()

	user, err := repo.Create(ctx, entities.UserRegistration{Username: "alice", Password: "hash"})
	require.NoError(t, err)

	merged, err := repo.Upsert(ctx, entities.UserUpsert{
		ID:        user.ID,
		FirstName: strPtr("Alice"),
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, merged.ID)
	assert.Equal(t, "alice", merged.Username)
	assert.Equal(t, "hash", merged.Password)
	require.NotNil(t, merged.FirstName)
	assert.Equal(t, "Alice", *merged.FirstName)
	assert.Equal(t, user.CreatedAt, merged.CreatedAt)
	assert.True(t, merged.UpdatedAt.After(user.UpdatedAt))
}

func TestUserRepository_UpsertNew(t *testing.T) {
	store, _, _ := openStore(t)
	repo := memory.NewUserRepository(store)
	ctx := context.Background()

	user, err := repo.Upsert(ctx, entities.UserUpsert{ID: "external-42", Username: "bob"})
	require.NoError(t, err)

	assert.Equal(t, "external-42", user.ID)
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)

	got, ok := repo.GetByID(ctx, "external-42")
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestUserRepository_UpsertRejectsForeignUsername(t *testing.T) {
	store, _, _ := openStore(t)
	repo := memory.NewUserRepository(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.UserRegistration{Username: "alice", Password: "hash"})
	require.NoError(t, err)

	_, err = repo.Upsert(ctx, entities.UserUpsert{ID: "other", Username: "alice"})
	require.ErrorIs(t, err, entities.ErrDuplicateUsername)
}

func TestUserRepository_Update(t *testing.T) {
	store, _, _ := openStore(t)
	repo := memory.NewUserRepository(store)
	ctx := context.Background()

	alice, err := repo.Create(ctx, entities.UserRegistration{Username: "alice", Password: "hash", Email: strPtr("a@x")})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.UserRegistration{Username: "bob", Password: "hash"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, alice.ID, entities.UserPatch{Username: entities.Some("bob")})
	require.ErrorIs(t, err, entities.ErrDuplicateUsername)

	_, err = repo.Update(ctx, "missing", entities.UserPatch{})
	require.ErrorIs(t, err, entities.ErrNotFound)

	updated, err := repo.Update(ctx, alice.ID, entities.UserPatch{
		Username: entities.Some("alice2"),
		Email:    entities.Some[*string](nil),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Nil(t, updated.Email)
	assert.Equal(t, alice.CreatedAt, updated.CreatedAt)

	_, ok := repo.GetByUsername(ctx, "alice")
	assert.False(t, ok)
}

func TestUserRepository_Delete(t *testing.T) {
	store, snaps, _ := openStore(t)
	repo := memory.NewUserRepository(store)
	ctx := context.Background()

	user, err := repo.Create(ctx, entities.UserRegistration{Username: "alice", Password: "hash"})
	require.NoError(t, err)

	repo.Delete(ctx, user.ID)
	repo.Delete(ctx, user.ID)

	_, ok := repo.GetByID(ctx, user.ID)
	assert.False(t, ok)
	assert.Equal(t, 3, snaps.Saves())

	_, err = repo.Create(ctx, entities.UserRegistration{Username: "alice", Password: "hash"})
	assert.NoError(t, err, "username is free again after delete")
}
