package services

import (
	"context"
	"testing"

	"todoapp/internal/models"
	"todoapp/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)

		cat, err := svc.CreateCategory(ctx, "  Errands ", "#10B981")
		testutil.AssertNoError(t, err)

		if cat.ID == 0 {
			t.Fatal("expected non-zero category ID")
		}
		if cat.Name != "Errands" {
			t.Errorf("expected trimmed name Errands, got %q", cat.Name)
		}
		if cat.Color != "#10B981" {
			t.Errorf("expected color #10B981, got %s", cat.Color)
		}
		if cat.CreatedAt.IsZero() {
			t.Error("expected created_at to be set")
		}
	})

	t.Run("default_color", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)

		cat, err := svc.CreateCategory(ctx, "Reading", "")
		testutil.AssertNoError(t, err)

		if cat.Color != models.DefaultCategoryColor {
			t.Errorf("expected default color, got %s", cat.Color)
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory(ctx, "Work", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(ctx, "Work", "#EF4444")
		testutil.AssertAppError(t, err, "CATEGORY_NAME_TAKEN")
	})

	t.Run("duplicate_caught_by_unique_index", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.CreateTestCategoryWithName(t, db, "Work")

		err := translateCategoryWriteError(db.Create(&models.Category{Name: "Work"}).Error)
		testutil.AssertAppError(t, err, "CATEGORY_NAME_TAKEN")
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory(ctx, "   ", "")
		testutil.AssertAppError(t, err, "CATEGORY_NAME_REQUIRED")
	})

	t.Run("invalid_color", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)

		for _, color := range []string{"blue", "#FFF", "3B82F6", "#3B82F6FF"} {
			_, err := svc.CreateCategory(ctx, "Colorful", color)
			testutil.AssertAppError(t, err, "INVALID_COLOR")
		}
	})
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("oldest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)
		first := testutil.CreateTestCategory(t, db)
		second := testutil.CreateTestCategory(t, db)

		categories, err := svc.ListCategories(ctx)
		testutil.AssertNoError(t, err)

		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		if categories[0].ID != first.ID || categories[1].ID != second.ID {
			t.Errorf("expected [%d %d], got [%d %d]", first.ID, second.ID, categories[0].ID, categories[1].ID)
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)

		categories, err := svc.ListCategories(ctx)
		testutil.AssertNoError(t, err)

		if categories == nil || len(categories) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", categories)
		}
	})
}

func TestGetCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)
		created := testutil.CreateTestCategory(t, db)

		cat, err := svc.GetCategory(ctx, created.ID)
		testutil.AssertNoError(t, err)

		if cat.Name != created.Name {
			t.Errorf("expected name %q, got %q", created.Name, cat.Name)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)

		_, err := svc.GetCategory(ctx, 99999)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)
		created := testutil.CreateTestCategory(t, db)

		cat, err := svc.UpdateCategory(ctx, created.ID, "Renamed", "#000000")
		testutil.AssertNoError(t, err)

		if cat.Name != "Renamed" || cat.Color != "#000000" {
			t.Errorf("expected Renamed/#000000, got %s/%s", cat.Name, cat.Color)
		}

		reloaded, err := svc.GetCategory(ctx, created.ID)
		testutil.AssertNoError(t, err)
		if reloaded.Name != "Renamed" {
			t.Errorf("expected persisted name Renamed, got %s", reloaded.Name)
		}
	})

	t.Run("empty_fields_keep_values", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)
		created := testutil.CreateTestCategory(t, db)

		cat, err := svc.UpdateCategory(ctx, created.ID, "", "")
		testutil.AssertNoError(t, err)

		if cat.Name != created.Name || cat.Color != created.Color {
			t.Errorf("expected unchanged category, got %s/%s", cat.Name, cat.Color)
		}
	})

	t.Run("rename_to_own_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)
		created := testutil.CreateTestCategory(t, db)

		_, err := svc.UpdateCategory(ctx, created.ID, created.Name, "#111111")
		testutil.AssertNoError(t, err)
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)
		testutil.CreateTestCategoryWithName(t, db, "Taken")
		other := testutil.CreateTestCategory(t, db)

		_, err := svc.UpdateCategory(ctx, other.ID, "Taken", "")
		testutil.AssertAppError(t, err, "CATEGORY_NAME_TAKEN")
	})

	t.Run("invalid_color", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)
		created := testutil.CreateTestCategory(t, db)

		_, err := svc.UpdateCategory(ctx, created.ID, "", "red")
		testutil.AssertAppError(t, err, "INVALID_COLOR")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)

		_, err := svc.UpdateCategory(ctx, 99999, "Ghost", "")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("without_todos", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)
		created := testutil.CreateTestCategory(t, db)

		testutil.AssertNoError(t, svc.DeleteCategory(ctx, created.ID))

		categories, err := svc.ListCategories(ctx)
		testutil.AssertNoError(t, err)
		if len(categories) != 0 {
			t.Errorf("expected category to be gone, found %d", len(categories))
		}
	})

	t.Run("with_todos_is_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)
		created := testutil.CreateTestCategory(t, db)
		todo := testutil.CreateTestTodo(t, db, testutil.WithCategory(created.ID))

		err := svc.DeleteCategory(ctx, created.ID)
		testutil.AssertAppError(t, err, "CATEGORY_HAS_TODOS")

		// No mutation: the category and the todo's reference both survive.
		_, err = svc.GetCategory(ctx, created.ID)
		testutil.AssertNoError(t, err)

		var stored models.Todo
		if err := db.First(&stored, todo.ID).Error; err != nil {
			t.Fatalf("failed to reload todo: %v", err)
		}
		if stored.CategoryID == nil || *stored.CategoryID != created.ID {
			t.Errorf("expected todo to keep category %d, got %v", created.ID, stored.CategoryID)
		}
	})

	t.Run("after_todos_move_away", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)
		todoSvc := NewTodoService(db)
		created := testutil.CreateTestCategory(t, db)
		todo := testutil.CreateTestTodo(t, db, testutil.WithCategory(created.ID))

		_, err := todoSvc.UpdateTodo(ctx, todo.ID, TodoUpdate{ClearCategory: true})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.DeleteCategory(ctx, created.ID))
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)

		err := svc.DeleteCategory(ctx, 99999)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}
