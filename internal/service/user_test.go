package service

import (
	"testing"

	"petstore/internal/apperr"
	"petstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	conn := openTestDB(t)
	users := NewUserService(conn)

	user, err := users.Register("Alice@Example.com", "s3cretpass", "Alice", "Smith")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Roles)
	assert.NotEqual(t, "s3cretpass", user.Password) // Stored hashed

	authed, err := users.Authenticate("alice@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	// Wrong password and unknown email fail the same way
	_, err = users.Authenticate("alice@example.com", "wrongpass")
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeAuthenticationFailed, e.Code)
	_, err = users.Authenticate("nobody@example.com", "s3cretpass")
	require.Error(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	conn := openTestDB(t)
	users := NewUserService(conn)

	_, err := users.Register("alice@example.com", "s3cretpass", "Alice", "Smith")
	require.NoError(t, err)
	_, err = users.Register("ALICE@example.com", "otherpass1", "Other", "Alice")
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeEmailInUse, e.Code)
}

func TestUpdateUserAppliesOnlyProvidedFields(t *testing.T) {
	conn := openTestDB(t)
	users := NewUserService(conn)
	user, err := users.Register("alice@example.com", "s3cretpass", "Alice", "Smith")
	require.NoError(t, err)

	newName := "Alicia"
	updated, err := users.Update(user.ID, &UserUpdate{FirstName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, "Smith", updated.LastName)
	assert.Equal(t, "alice@example.com", updated.Email)

	// Changing email onto another account is rejected
	_, err = users.Register("bob@example.com", "s3cretpass", "Bob", "Jones")
	require.NoError(t, err)
	taken := "bob@example.com"
	_, err = users.Update(user.ID, &UserUpdate{Email: &taken})
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeEmailInUse, e.Code)
}

func TestDeleteUserBlockedByPets(t *testing.T) {
	conn := openTestDB(t)
	users := NewUserService(conn)
	owner := seedUser(t, conn, "owner@example.com", domain.RoleUser)
	category := seedCategory(t, conn, "Dogs")
	rex := seedPet(t, conn, "Rex", "100.00", category.ID)
	require.NoError(t, conn.Model(&domain.Pet{}).Where("id = ?", rex.ID).
		Update("owner_id", owner.ID).Error)

	err := users.Delete(owner.ID)
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeUserInUse, e.Code)
	assert.Contains(t, e.Message, "ownership of 1 pet(s)")

	free := seedUser(t, conn, "free@example.com", domain.RoleUser)
	require.NoError(t, users.Delete(free.ID))
	_, err = users.ByID(free.ID)
	require.Error(t, err)
}

func TestHasRole(t *testing.T) {
	admin := seedUser(t, openTestDB(t), "admin@example.com", "USER,ADMIN")
	assert.True(t, admin.HasRole(domain.RoleAdmin))
	assert.True(t, admin.HasRole(domain.RoleUser))
	assert.True(t, admin.IsAdmin())

	plain := domain.User{Roles: domain.RoleUser}
	assert.False(t, plain.IsAdmin())
}
