package services

import (
	"testing"

	"food-express/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserCreateHashesPassword(t *testing.T) {
	users := NewUserService(newTestDB(t))

	user, err := users.Create("Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)

	assert.NotEqual(t, "secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	_, err := users.Create("Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)

	_, err = users.Create("Imposter", "alice@example.com", "other", "")
	assert.ErrorIs(t, err, ErrConflict)

	// the failed insert must not have left a second row
	list, err := users.All()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUserVerify(t *testing.T) {
	users := NewUserService(newTestDB(t))
	_, err := users.Create("Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)

	user, err := users.Verify("alice@example.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice@example.com", user.Email)

	user, err = users.Verify("alice@example.com", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = users.Verify("nobody@example.com", "secret")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserUpdateEmptyIsNoOp(t *testing.T) {
	users := NewUserService(newTestDB(t))
	created, err := users.Create("Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)

	before, err := users.FindByID(created.ID)
	require.NoError(t, err)

	changes, err := users.Update(created.ID, UserUpdate{})
	require.NoError(t, err)
	assert.Zero(t, changes)

	after, err := users.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUserUpdatePartial(t *testing.T) {
	users := NewUserService(newTestDB(t))
	created, err := users.Create("Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)

	name := "Alicia"
	changes, err := users.Update(created.ID, UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.EqualValues(t, 1, changes)

	after, err := users.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", after.Name)
	assert.Equal(t, "alice@example.com", after.Email)
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	users := NewUserService(newTestDB(t))
	created, err := users.Create("Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)

	password := "newsecret"
	changes, err := users.Update(created.ID, UserUpdate{Password: &password})
	require.NoError(t, err)
	assert.EqualValues(t, 1, changes)

	after, err := users.FindByID(created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "newsecret", after.Password)

	user, err := users.Verify("alice@example.com", "newsecret")
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestUserUpdateDuplicateEmail(t *testing.T) {
	users := NewUserService(newTestDB(t))
	_, err := users.Create("Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)
	bob, err := users.Create("Bob", "bob@example.com", "secret", "")
	require.NoError(t, err)

	email := "alice@example.com"
	_, err = users.Update(bob.ID, UserUpdate{Email: &email})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserDelete(t *testing.T) {
	users := NewUserService(newTestDB(t))
	created, err := users.Create("Alice", "alice@example.com", "secret", "")
	require.NoError(t, err)

	changes, err := users.DeleteByID(created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, changes)

	changes, err = users.DeleteByID(created.ID)
	require.NoError(t, err)
	assert.Zero(t, changes)
}

func TestUserDeleteAll(t *testing.T) {
	users := NewUserService(newTestDB(t))
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := users.Create("U", email, "secret", "")
		require.NoError(t, err)
	}

	deleted, err := users.DeleteAll()
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)

	list, err := users.All()
	require.NoError(t, err)
	assert.Empty(t, list)
}
