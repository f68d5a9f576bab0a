package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "todoapp/internal/errors"
	"todoapp/internal/models"
	"todoapp/internal/services"
)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/categories", handler.ListCategories)
	r.GET("/categories/:id", handler.GetCategory)
	r.POST("/categories", handler.CreateCategory)
	r.PUT("/categories/:id", handler.UpdateCategory)
	r.DELETE("/categories/:id", handler.DeleteCategory)
	return r
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	t.Run("returns 200 with categories", func(t *testing.T) {
		svc := &mockCategoryService{
			listCategoriesFn: func(context.Context) ([]models.Category, error) {
				return []models.Category{
					{Base: models.Base{ID: 1}, Name: "Work", Color: "#3B82F6"},
					{Base: models.Base{ID: 2}, Name: "Personal", Color: "#10B981"},
				}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockActivityService{}))

		rec := doRequest(r, http.MethodGet, "/categories", "")

		assertStatus(t, rec, http.StatusOK)
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(data))
		}
		if _, ok := result["pagination"]; ok {
			t.Error("expected the category list to be unpaginated")
		}
	})

	t.Run("returns empty array when there are none", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockActivityService{}))

		rec := doRequest(r, http.MethodGet, "/categories", "")

		assertStatus(t, rec, http.StatusOK)
		if data, ok := parseJSON(t, rec)["data"].([]interface{}); !ok || len(data) != 0 {
			t.Errorf("expected empty data array, got %s", rec.Body.String())
		}
	})
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockCategoryService{
			getCategoryFn: func(context.Context, uint) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockActivityService{}))

		rec := doRequest(r, http.MethodGet, "/categories/9", "")

		assertStatus(t, rec, http.StatusNotFound)
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "CATEGORY_NOT_FOUND")
		if result["error"] != "Category not found" {
			t.Errorf("unexpected message %v", result["error"])
		}
	})
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201 and records activity", func(t *testing.T) {
		var gotName, gotColor string
		svc := &mockCategoryService{
			createCategoryFn: func(_ context.Context, name, color string) (*models.Category, error) {
				gotName, gotColor = name, color
				return &models.Category{Base: models.Base{ID: 8}, Name: name, Color: "#3B82F6"}, nil
			},
		}
		activity := &mockActivityService{}
		r := setupCategoryRouter(NewCategoryHandler(svc, activity))

		rec := doRequest(r, http.MethodPost, "/categories", `{"name":"Errands"}`)

		assertStatus(t, rec, http.StatusCreated)
		if gotName != "Errands" || gotColor != "" {
			t.Errorf("unexpected arguments %q %q", gotName, gotColor)
		}
		data := parseJSON(t, rec)["data"].(map[string]interface{})
		if data["color"] != "#3B82F6" {
			t.Errorf("expected default color, got %v", data["color"])
		}
		logged := activity.logged()
		if len(logged) != 1 || logged[0].action != services.ActionCreateCategory || logged[0].resourceType != services.ResourceCategory {
			t.Errorf("unexpected activity %+v", logged)
		}
	})

	t.Run("returns 400 on duplicate name", func(t *testing.T) {
		svc := &mockCategoryService{
			createCategoryFn: func(context.Context, string, string) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNameTaken
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockActivityService{}))

		rec := doRequest(r, http.MethodPost, "/categories", `{"name":"Work"}`)

		assertStatus(t, rec, http.StatusBadRequest)
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "CATEGORY_NAME_TAKEN")
		if result["error"] != "Category name already exists" {
			t.Errorf("unexpected message %v", result["error"])
		}
	})

	t.Run("returns 400 on empty body", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockActivityService{}))

		rec := doRequest(r, http.MethodPost, "/categories", "")

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	t.Run("returns 200 with the updated category", func(t *testing.T) {
		var gotID uint
		svc := &mockCategoryService{
			updateCategoryFn: func(_ context.Context, id uint, name, color string) (*models.Category, error) {
				gotID = id
				return &models.Category{Base: models.Base{ID: id}, Name: "Work", Color: color}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockActivityService{}))

		rec := doRequest(r, http.MethodPut, "/categories/2", `{"color":"#000000"}`)

		assertStatus(t, rec, http.StatusOK)
		if gotID != 2 {
			t.Errorf("expected id 2, got %d", gotID)
		}
	})

	t.Run("returns 400 on invalid color", func(t *testing.T) {
		svc := &mockCategoryService{
			updateCategoryFn: func(context.Context, uint, string, string) (*models.Category, error) {
				return nil, apperrors.ErrInvalidColor
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockActivityService{}))

		rec := doRequest(r, http.MethodPut, "/categories/2", `{"color":"blue"}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_COLOR")
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("returns success message", func(t *testing.T) {
		activity := &mockActivityService{}
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, activity))

		rec := doRequest(r, http.MethodDelete, "/categories/4", "")

		assertStatus(t, rec, http.StatusOK)
		if msg := parseJSON(t, rec)["message"]; msg != "Category deleted successfully" {
			t.Errorf("unexpected message %v", msg)
		}
		if logged := activity.logged(); len(logged) != 1 || logged[0].action != services.ActionDeleteCategory {
			t.Errorf("unexpected activity %+v", logged)
		}
	})

	t.Run("returns 400 when todos reference it", func(t *testing.T) {
		activity := &mockActivityService{}
		svc := &mockCategoryService{
			deleteCategoryFn: func(context.Context, uint) error { return apperrors.ErrCategoryHasTodos },
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, activity))

		rec := doRequest(r, http.MethodDelete, "/categories/4", "")

		assertStatus(t, rec, http.StatusBadRequest)
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "CATEGORY_HAS_TODOS")
		if result["error"] != "Cannot delete category with associated todos" {
			t.Errorf("unexpected message %v", result["error"])
		}
		if len(activity.logged()) != 0 {
			t.Error("expected no activity on failure")
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockCategoryService{
			deleteCategoryFn: func(context.Context, uint) error { return apperrors.ErrCategoryNotFound },
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockActivityService{}))

		rec := doRequest(r, http.MethodDelete, "/categories/4", "")

		assertStatus(t, rec, http.StatusNotFound)
	})
}
