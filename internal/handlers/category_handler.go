package handlers

import (
	"github.com/gin-gonic/gin"

	"todoapp/internal/response"
	"todoapp/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
	activityService services.ActivityServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer, activityService services.ActivityServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, activityService: activityService}
}

// CategoryRequest represents the request payload for creating or updating a
// category. On update, empty fields keep their current value.
type CategoryRequest struct {
	Name  string `json:"name" example:"Work"`
	Color string `json:"color" example:"#3B82F6"`
}

// ListCategories handles the retrieval of all categories
// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Success     200 {object} response.Envelope{data=[]models.Category} "Categories, oldest first"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	response.OK(c, categories)
}

// GetCategory handles the retrieval of a category by ID
// @Summary     Get a category
// @Tags        categories
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} response.Envelope{data=models.Category} "Category"
// @Failure     404 {object} response.Envelope "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	response.OK(c, category)
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CategoryRequest true "Category details"
// @Success     201 {object} response.Envelope{data=models.Category} "Category created"
// @Failure     400 {object} response.Envelope "Invalid input or duplicate name"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityService.Log(activityContext(c), services.ActionCreateCategory, services.ResourceCategory, category.ID, c.ClientIP(),
		map[string]interface{}{"name": category.Name, "color": category.Color})

	response.Created(c, category)
}

// UpdateCategory handles updates to a category
// @Summary     Update a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id      path int             true "Category ID"
// @Param       request body CategoryRequest true "Fields to update"
// @Success     200 {object} response.Envelope{data=models.Category} "Category updated"
// @Failure     400 {object} response.Envelope "Invalid input or duplicate name"
// @Failure     404 {object} response.Envelope "Category not found"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, req.Name, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activityService.Log(activityContext(c), services.ActionUpdateCategory, services.ResourceCategory, category.ID, c.ClientIP(),
		map[string]interface{}{"name": category.Name, "color": category.Color})

	response.OK(c, category)
}

// DeleteCategory handles the deletion of a category. Categories that still
// have todos are refused.
// @Summary     Delete a category
// @Tags        categories
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} response.Envelope "Category deleted"
// @Failure     400 {object} response.Envelope "Category has todos"
// @Failure     404 {object} response.Envelope "Category not found"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.activityService.Log(activityContext(c), services.ActionDeleteCategory, services.ResourceCategory, id, c.ClientIP(), nil)

	response.Message(c, "Category deleted successfully")
}
