package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

// ErrResponse renderer type for handling all sorts of errors.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	AppCode    int64  `json:"code,omitempty"`  // application-specific error code
	ErrorText  string `json:"error,omitempty"` // application-level error message, for debugging
}

// Render implements the render.Renderer interface.
func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// ErrInvalidRequest returns a 400 response with the error message.
func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

// ErrRender returns a 422 response for errors raised while rendering.
func ErrRender(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		StatusText:     "Error rendering response.",
		ErrorText:      err.Error(),
	}
}

// ErrInternalServerError returns a 500 response with the error message.
func ErrInternalServerError(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}

func errNotFound(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusNotFound,
		StatusText:     "Resource not found.",
		ErrorText:      err.Error(),
	}
}

func errConflict(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusConflict,
		StatusText:     "Conflict.",
		ErrorText:      err.Error(),
	}
}

// errRenderer maps domain errors to the matching http response.
func errRenderer(err error) render.Renderer {
	switch {
	case errors.Is(err, entity.ErrProductNotFound),
		errors.Is(err, entity.ErrSaleNotFound),
		errors.Is(err, entity.ErrCouponNotFound):
		return errNotFound(err)
	case errors.Is(err, entity.ErrDuplicateCoupon),
		errors.Is(err, entity.ErrDuplicateCategory),
		errors.Is(err, entity.ErrAlreadyCancelled):
		return errConflict(err)
	case errors.Is(err, entity.ErrInsufficientStock),
		errors.Is(err, entity.ErrNegativeStock),
		errors.Is(err, entity.ErrNegativePrice),
		errors.Is(err, entity.ErrSellPriceBelowBuy),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrUnknownSource),
		errors.Is(err, entity.ErrUnknownStockType),
		errors.Is(err, entity.ErrCouponInactive),
		errors.Is(err, entity.ErrEmptyCouponCode),
		errors.Is(err, entity.ErrUnknownCouponType),
		errors.Is(err, entity.ErrCouponValueTooHigh),
		errors.Is(err, entity.ErrCouponMissingEndDate),
		errors.Is(err, entity.ErrCouponMinimumNotMet):
		return ErrInvalidRequest(err)
	default:
		return ErrInternalServerError(err)
	}
}
