package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mailwright/mailwright/pkg/brand"
	"github.com/mailwright/mailwright/pkg/delivery"
	"github.com/mailwright/mailwright/pkg/draft"
	"github.com/mailwright/mailwright/pkg/session"
	"github.com/mailwright/mailwright/pkg/validator"
)

// errorBody is the uniform error envelope.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (h *handler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("failed to encode response", "error", err)
	}
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := mapError(err)
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	h.respond(w, status, errorBody{Error: detail})
}

// mapError translates pipeline errors to HTTP semantics: validation issues
// name the offending fields at 422, provider rejections carry their remote
// status, everything else is a 500.
func mapError(err error) (int, errorDetail) {
	if ve := validator.Extract(err); ve != nil {
		fields := make(map[string]string, len(ve))
		for _, e := range ve {
			if _, ok := fields[e.Field]; !ok {
				fields[e.Field] = e.Message
			}
		}
		return http.StatusUnprocessableEntity, errorDetail{Message: "validation failed", Fields: fields}
	}

	switch {
	case errors.Is(err, draft.ErrMissingRecipient):
		return http.StatusUnprocessableEntity, errorDetail{
			Message: "validation failed",
			Fields:  map[string]string{"recipient.email": "is required"},
		}
	case errors.Is(err, draft.ErrInvalidRecipient):
		return http.StatusUnprocessableEntity, errorDetail{
			Message: "validation failed",
			Fields:  map[string]string{"recipient.email": "must be a valid email address"},
		}
	case errors.Is(err, brand.ErrBrandNotFound), errors.Is(err, brand.ErrInvalidBrand):
		return http.StatusUnprocessableEntity, errorDetail{
			Message: err.Error(),
			Fields:  map[string]string{"brand_id": "must name a loadable brand"},
		}
	case errors.Is(err, delivery.ErrInvalidMode):
		return http.StatusBadRequest, errorDetail{Message: err.Error()}
	case errors.Is(err, session.ErrEmptyConversationID):
		return http.StatusBadRequest, errorDetail{Message: err.Error()}
	}

	if f := delivery.AsFailure(err); f != nil {
		return f.StatusCode, errorDetail{Message: f.Detail}
	}
	return http.StatusInternalServerError, errorDetail{Message: "internal error"}
}

// decode parses a JSON request body into dst, rejecting unparseable input.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respond(w, http.StatusBadRequest, errorBody{
			Error: errorDetail{Message: "invalid JSON body: " + err.Error()},
		})
		return false
	}
	return true
}
