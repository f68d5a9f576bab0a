package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "todoapp/internal/errors"
	"todoapp/internal/response"
	"todoapp/internal/validator"
)

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// bindingError converts a gin binding failure into a validation AppError.
func bindingError(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, validator.Message(err))
}

// respondWithError writes the error envelope for err.
func respondWithError(c *gin.Context, err error) {
	response.Error(c, err)
}

// activityContext detaches activity recording from the request so a client
// disconnect after a successful write does not drop the log entry.
func activityContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

// Nullable is a JSON field that distinguishes an absent key from an
// explicit null. Set is true when the key appears in the body.
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Null = true
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}
