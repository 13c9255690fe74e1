package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/bookcatalog/internal/helpers"
	"github.com/farellandr/bookcatalog/internal/middleware"
	"github.com/farellandr/bookcatalog/internal/validation"
)

func ListCategories(c *gin.Context) {
	page, err := middleware.GetCategoryService(c).ListAllCategories(c.Request.Context(), helpers.PageFromQuery(c))
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	helpers.RespondSuccess(c, http.StatusOK, "Categories retrieved successfully", helpers.NewPagePayload(c, page))
}

func CreateCategory(c *gin.Context) {
	var req validation.CategoryRequest
	if !bindBody(c, &req) {
		return
	}

	category, err := middleware.GetValidator(c).ValidateStoreCategory(c.Request.Context(), req)
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	created, err := middleware.GetCategoryService(c).CreateCategory(c.Request.Context(), category)
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	helpers.RespondSuccess(c, http.StatusCreated, "Category created successfully", created)
}

func GetCategory(c *gin.Context) {
	id, ok := pathID(c, categoryNotFound)
	if !ok {
		return
	}

	category, err := middleware.GetCategoryService(c).ShowCategory(c.Request.Context(), id)
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	helpers.RespondSuccess(c, http.StatusOK, "Category retrieved successfully", category)
}

func UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, categoryNotFound)
	if !ok {
		return
	}

	var req validation.CategoryRequest
	if !bindBody(c, &req) {
		return
	}

	changes, err := middleware.GetValidator(c).ValidateUpdateCategory(c.Request.Context(), req)
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	category, err := middleware.GetCategoryService(c).UpdateCategory(c.Request.Context(), id, changes)
	if err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	helpers.RespondSuccess(c, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory also removes every book of the category.
func DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, categoryNotFound)
	if !ok {
		return
	}

	if _, err := middleware.GetCategoryService(c).DeleteCategory(c.Request.Context(), id); err != nil {
		helpers.RespondAppError(c, err)
		return
	}

	helpers.RespondSuccess(c, http.StatusOK, "Category deleted successfully", nil)
}
