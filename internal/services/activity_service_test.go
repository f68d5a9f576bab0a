package services

import (
	"context"
	"encoding/json"
	"testing"

	"todoapp/internal/models"
	"todoapp/internal/pagination"
	"todoapp/internal/testutil"
)

func TestActivityLog(t *testing.T) {
	ctx := context.Background()

	t.Run("records_entry_with_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewActivityService(db)

		svc.Log(ctx, ActionCreateTodo, ResourceTodo, 7, "10.0.0.1", map[string]interface{}{"title": "Buy milk"})

		var entry models.ActivityLog
		if err := db.First(&entry).Error; err != nil {
			t.Fatalf("expected an activity entry: %v", err)
		}
		if entry.Action != ActionCreateTodo || entry.ResourceType != ResourceTodo || entry.ResourceID != 7 {
			t.Errorf("unexpected entry: %+v", entry)
		}

		var changes map[string]interface{}
		if err := json.Unmarshal([]byte(entry.Changes), &changes); err != nil {
			t.Fatalf("changes should be JSON: %v", err)
		}
		if changes["title"] != "Buy milk" {
			t.Errorf("expected title change, got %v", changes)
		}
	})

	t.Run("unmarshalable_changes_fall_back", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewActivityService(db)

		svc.Log(ctx, ActionUpdateTodo, ResourceTodo, 1, "", map[string]interface{}{"bad": make(chan int)})

		var entry models.ActivityLog
		if err := db.First(&entry).Error; err != nil {
			t.Fatalf("expected an activity entry: %v", err)
		}
		if entry.Changes != "{}" {
			t.Errorf("expected {} fallback, got %q", entry.Changes)
		}
	})

	t.Run("lists_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewActivityService(db)

		svc.Log(ctx, ActionCreateCategory, ResourceCategory, 1, "", nil)
		svc.Log(ctx, ActionDeleteCategory, ResourceCategory, 1, "", nil)
		svc.Log(ctx, ActionCreateTodo, ResourceTodo, 2, "", nil)

		page, err := svc.ListActivity(ctx, pagination.Window{Page: 1, Limit: 2})
		testutil.AssertNoError(t, err)

		if page.Meta.Total != 3 || page.Meta.TotalPages != 2 {
			t.Errorf("unexpected meta: %+v", page.Meta)
		}
		if len(page.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(page.Items))
		}
		if page.Items[0].Action != ActionCreateTodo {
			t.Errorf("expected newest entry first, got %s", page.Items[0].Action)
		}
	})

	t.Run("rejects_invalid_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewActivityService(db)

		_, err := svc.ListActivity(ctx, pagination.Window{Page: 1, Limit: 0})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
