package service

import (
	"testing"

	"petstore/internal/apperr"
	"petstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	conn := openTestDB(t)
	categories := NewCategoryService(conn)

	require.NoError(t, categories.Create(&domain.Category{Name: "  Dogs  "}))
	found, err := categories.All()
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Dogs", found[0].Name)

	err = categories.Create(&domain.Category{Name: "Dogs"})
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeCategoryExists, e.Code)

	err = categories.Create(&domain.Category{Name: "   "})
	e = apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeInvalidCategory, e.Code)
}

func TestUpdateCategoryRejectsDuplicateName(t *testing.T) {
	conn := openTestDB(t)
	categories := NewCategoryService(conn)
	dogs := seedCategory(t, conn, "Dogs")
	seedCategory(t, conn, "Cats")

	// Renaming onto another category's name is rejected
	_, err := categories.Update(dogs.ID, &domain.Category{Name: "Cats"})
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeCategoryExists, e.Code)

	// Keeping its own name is fine
	renamed, err := categories.Update(dogs.ID, &domain.Category{Name: "Dogs"})
	require.NoError(t, err)
	assert.Equal(t, "Dogs", renamed.Name)
}

func TestDeleteCategoryBlockedByPets(t *testing.T) {
	conn := openTestDB(t)
	categories := NewCategoryService(conn)
	dogs := seedCategory(t, conn, "Dogs")
	seedPet(t, conn, "Rex", "100.00", dogs.ID)
	seedPet(t, conn, "Milo", "55.50", dogs.ID)

	err := categories.Delete(dogs.ID)
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeCategoryInUse, e.Code)
	assert.Contains(t, e.Message, "2 pet(s)")

	empty := seedCategory(t, conn, "Cats")
	require.NoError(t, categories.Delete(empty.ID))
	_, err = categories.ByID(empty.ID)
	require.Error(t, err)
}
