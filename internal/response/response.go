// Package response writes the JSON envelope shared by every endpoint:
// {success, data?, pagination?, error?, code?, message?}.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "todoapp/internal/errors"
	"todoapp/internal/logger"
	"todoapp/internal/pagination"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success    bool             `json:"success"`
	Data       interface{}      `json:"data,omitempty"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
	Error      string           `json:"error,omitempty"`
	Code       string           `json:"code,omitempty"`
	Message    string           `json:"message,omitempty"`
}

// OK writes a 200 envelope carrying data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 envelope carrying data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Paginated writes a 200 envelope carrying one page of rows and its metadata.
func Paginated[T any](c *gin.Context, page *pagination.Page[T]) {
	meta := page.Meta
	c.JSON(http.StatusOK, Envelope{Success: true, Data: page.Items, Pagination: &meta})
}

// Message writes a 200 envelope carrying only a message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// StatusFor maps an error kind onto its HTTP status code.
func StatusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusBadRequest
	case apperrors.KindInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// Error writes an error envelope and aborts the handler chain. AppErrors
// are rendered with their code and message; anything else is logged and
// rendered as a generic internal error so internals never leak.
func Error(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if appErr.Internal != nil {
		logger.Get().Errorw("request failed",
			"code", appErr.Code,
			"kind", appErr.Kind.String(),
			"internal", appErr.Internal.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}

	message := appErr.Message
	if appErr.Kind == apperrors.KindInternal {
		message = apperrors.ErrInternalServer.Message
	}

	c.AbortWithStatusJSON(StatusFor(appErr.Kind), Envelope{
		Success: false,
		Error:   message,
		Code:    appErr.Code,
	})
}
