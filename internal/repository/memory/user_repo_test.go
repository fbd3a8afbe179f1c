package memory

import (
	"context"
	"testing"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepoCreateAndLookup(t *testing.T) {
	r := NewUserRepo()
	ctx := context.Background()

	u, err := r.Create(ctx, "John.Student@University.EDU", "John Anderson", models.RoleReporter, "Computer Science", "hash1")
	require.NoError(t, err)
	assert.Equal(t, "john.student@university.edu", u.Email)
	assert.True(t, u.Active)

	// email lookup is case-insensitive
	got, hash, err := r.GetByEmail(ctx, "JOHN.STUDENT@university.edu")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash1", hash)

	_, err = r.Create(ctx, "john.student@university.edu", "Imposter", models.RoleReporter, "", "hash2")
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, _, err = r.GetByEmail(ctx, "nobody@university.edu")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepoMutations(t *testing.T) {
	r := NewUserRepo()
	ctx := context.Background()

	u, err := r.Create(ctx, "prof@university.edu", "Dr. Williams", models.RoleReporter, "Engineering", "h")
	require.NoError(t, err)

	promoted, err := r.UpdateRole(ctx, u.ID, models.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, promoted.Role)

	disabled, err := r.SetActive(ctx, u.ID, false)
	require.NoError(t, err)
	assert.False(t, disabled.Active)

	updated, err := r.UpdateBasic(ctx, u.ID, "Robert Williams", "Engineering", "+1 555-0789")
	require.NoError(t, err)
	assert.Equal(t, "Robert Williams", updated.Name)
	assert.Equal(t, "+1 555-0789", updated.Phone)

	require.NoError(t, r.UpdatePasswordHash(ctx, u.ID, "h2"))
	_, hash, err := r.GetByEmail(ctx, "prof@university.edu")
	require.NoError(t, err)
	assert.Equal(t, "h2", hash)

	_, err = r.UpdateRole(ctx, "missing", models.RoleAdmin)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepoList(t *testing.T) {
	r := NewUserRepo()
	ctx := context.Background()

	_, err := r.Create(ctx, "a@university.edu", "Alice", models.RoleReporter, "CS", "h")
	require.NoError(t, err)
	staff, err := r.Create(ctx, "b@university.edu", "Bob", models.RoleStaff, "Ops", "h")
	require.NoError(t, err)

	all, total, err := r.List(ctx, "", "", nil, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)

	onlyStaff, total, err := r.List(ctx, "", models.RoleStaff, nil, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, onlyStaff, 1)
	assert.Equal(t, staff.ID, onlyStaff[0].ID)

	byName, _, err := r.List(ctx, "ali", "", nil, 50, 0)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Alice", byName[0].Name)
}
