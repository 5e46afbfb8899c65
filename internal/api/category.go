package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"petstore/internal/domain"  // Importing domain models
	"petstore/internal/service" // Domain services

	"github.com/gin-gonic/gin" // Gin web framework
)

// CategoryRequest is the body of a category create or update call
type CategoryRequest struct {
	Name string `json:"name" binding:"required"` // Category name must be provided
}

// ListCategoriesHandler returns every category, public route
func ListCategoriesHandler(categories *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := categories.All()
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetCategoryHandler returns a single category by id
func GetCategoryHandler(categories *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}
		category, err := categories.ByID(uint(id))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// CreateCategoryHandler stores a new category, admin only
func CreateCategoryHandler(categories *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		category := domain.Category{Name: req.Name}
		if err := categories.Create(&category); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategoryHandler renames a category, admin only
func UpdateCategoryHandler(categories *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}
		var req CategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		category, err := categories.Update(uint(id), &domain.Category{Name: req.Name})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategoryHandler removes a category, admin only. Categories still
// referenced by pets are rejected with a conflict.
func DeleteCategoryHandler(categories *service.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}
		if err := categories.Delete(uint(id)); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
