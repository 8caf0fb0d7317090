package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/device-quote/internal/engine"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// engineError maps engine sentinels onto HTTP errors. Anything else is a
// store or infrastructure failure.
func engineError(action string, err error) error {
	switch {
	case errors.Is(err, engine.ErrDeviceNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, engine.ErrInvalidRequest):
		return huma.Error400BadRequest(err.Error())
	default:
		return huma.Error500InternalServerError("failed to " + action + ": " + err.Error())
	}
}
