// Package errors provides the application error type for the todo API.
// Services return only *AppError so the route layer can map every failure
// onto a status code by its Kind without inspecting messages.
package errors

// Kind classifies an AppError. The set is closed; the route layer switches
// over it exhaustively.
type Kind int

const (
	// KindInternal is an unexpected store or runtime failure.
	KindInternal Kind = iota
	// KindValidation is a missing or malformed input.
	KindValidation
	// KindNotFound is an unknown resource id.
	KindNotFound
	// KindConflict is a duplicate unique value or a delete blocked by dependents.
	KindConflict
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// AppError represents a structured application error with a kind, an error
// code, a human-readable message, and an optional internal cause.
type AppError struct {
	Kind     Kind   `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Internal error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches two AppErrors by code so sentinels survive Wrap and WithMessage.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same kind/code/message but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Kind:     sentinel.Kind,
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Internal: internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Kind:     sentinel.Kind,
		Code:     sentinel.Code,
		Message:  message,
		Internal: sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Kind: KindValidation, Code: "INVALID_INPUT", Message: "Invalid input"}
	ErrRouteNotFound  = &AppError{Kind: KindNotFound, Code: "ROUTE_NOT_FOUND", Message: "Endpoint not found. Visit /api-docs for documentation."}
	ErrInternalServer = &AppError{Kind: KindInternal, Code: "INTERNAL_ERROR", Message: "Internal server error"}
)

// Todo errors.
var (
	ErrTodoNotFound    = &AppError{Kind: KindNotFound, Code: "TODO_NOT_FOUND", Message: "Todo not found"}
	ErrTitleRequired   = &AppError{Kind: KindValidation, Code: "TITLE_REQUIRED", Message: "Title is required"}
	ErrInvalidPriority = &AppError{Kind: KindValidation, Code: "INVALID_PRIORITY", Message: "Priority must be one of low, medium, high"}
	ErrInvalidCategory = &AppError{Kind: KindValidation, Code: "INVALID_CATEGORY", Message: "Referenced category does not exist"}
)

// Category errors.
var (
	ErrCategoryNotFound     = &AppError{Kind: KindNotFound, Code: "CATEGORY_NOT_FOUND", Message: "Category not found"}
	ErrCategoryNameRequired = &AppError{Kind: KindValidation, Code: "CATEGORY_NAME_REQUIRED", Message: "Category name is required"}
	ErrInvalidColor         = &AppError{Kind: KindValidation, Code: "INVALID_COLOR", Message: "Invalid color format. Use hex format like #3B82F6"}
	ErrCategoryNameTaken    = &AppError{Kind: KindConflict, Code: "CATEGORY_NAME_TAKEN", Message: "Category name already exists"}
	ErrCategoryHasTodos     = &AppError{Kind: KindConflict, Code: "CATEGORY_HAS_TODOS", Message: "Cannot delete category with associated todos"}
)
