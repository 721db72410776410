package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goliatone/go-resumegen/internal/store"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/resume"
)

// ErrBadRequest reports a malformed request.
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

// HTTPStatus returns the status code for err.
func HTTPStatus(err error) int {
	var (
		badRequest *ErrBadRequest
		validation *resume.ValidationError
		pathErr    *resume.PathError
		schemaErr  *resume.SchemaError
	)
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, resume.ErrItemNotFound),
		errors.Is(err, render.ErrUnknownFormat):
		return http.StatusNotFound
	case errors.As(err, &badRequest),
		errors.As(err, &validation),
		errors.As(err, &pathErr),
		errors.As(err, &schemaErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
