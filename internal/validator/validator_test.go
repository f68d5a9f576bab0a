package validator

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Color    string `validate:"omitempty,hex_color"`
	Priority string `validate:"omitempty,priority"`
}

type query struct {
	Limit     int    `form:"limit" validate:"max=100"`
	Page      int    `form:"page" validate:"min=1"`
	Completed string `form:"completed" validate:"omitempty,oneof=true false"`
	Title     string `json:"title" validate:"max=5"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	configure(v)
	return v
}

func TestHexColor(t *testing.T) {
	v := newValidate(t)
	valid := []string{"#3B82F6", "#ffffff", "#000000", "#aBcDeF"}
	invalid := []string{"3B82F6", "#FFF", "#GGGGGG", "#3B82F6A", "blue"}

	for _, c := range valid {
		if err := v.Struct(sample{Color: c}); err != nil {
			t.Errorf("expected %q to be valid: %v", c, err)
		}
	}
	for _, c := range invalid {
		if err := v.Struct(sample{Color: c}); err == nil {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}

func TestPriority(t *testing.T) {
	v := newValidate(t)
	for _, p := range []string{"low", "medium", "high"} {
		if err := v.Struct(sample{Priority: p}); err != nil {
			t.Errorf("expected %q to be valid: %v", p, err)
		}
	}
	for _, p := range []string{"urgent", "HIGH", "none"} {
		if err := v.Struct(sample{Priority: p}); err == nil {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}

func TestRegisteredTags(t *testing.T) {
	v := newValidate(t)
	for _, tag := range []string{"hex_color", "priority"} {
		if err := v.Var("x", tag); err == nil {
			t.Errorf("expected %q to reject \"x\"", tag)
		}
	}
	assertPanics(t, func() { _ = v.Var("x", "notblank") })
}

func assertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected an unregistered tag to panic")
		}
	}()
	fn()
}

func TestMessage(t *testing.T) {
	v := newValidate(t)

	tests := []struct {
		name string
		in   query
		want string
	}{
		{"max on number", query{Page: 1, Limit: 101}, "limit must be at most 100"},
		{"min on number", query{Page: 0}, "page must be at least 1"},
		{"oneof", query{Page: 1, Completed: "yes"}, "completed must be one of true, false"},
		{"max on string", query{Page: 1, Title: "toolong"}, "title must be at most 5 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if got := Message(err); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}

	t.Run("hex color", func(t *testing.T) {
		got := Message(v.Struct(sample{Color: "blue"}))
		if got != "Invalid color format. Use hex format like #3B82F6" {
			t.Errorf("unexpected message %q", got)
		}
	})

	t.Run("number parse", func(t *testing.T) {
		_, err := strconv.Atoi("abc")
		if got := Message(err); got != `Invalid number "abc"` {
			t.Errorf("unexpected message %q", got)
		}
	})

	t.Run("bool parse", func(t *testing.T) {
		_, err := strconv.ParseBool("maybe")
		if got := Message(err); got != `Invalid boolean "maybe"` {
			t.Errorf("unexpected message %q", got)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		var out map[string]interface{}
		err := json.Unmarshal([]byte(`{"title":`), &out)
		if got := Message(err); got != "Malformed JSON body" && got != "Invalid input" {
			t.Errorf("unexpected message %q", got)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		var out struct {
			Title string `json:"title"`
		}
		err := json.Unmarshal([]byte(`{"title":5}`), &out)
		if got := Message(err); got != "title must be a string" {
			t.Errorf("unexpected message %q", got)
		}
	})
}
