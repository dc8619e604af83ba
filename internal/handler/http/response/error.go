package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/go-chi/httplog/v3"
	"github.com/google/uuid"
)

// Classification is the transport view of a failure.
type Classification struct {
	Status int
	Code   string
	Title  string
}

// Classify maps a failure to its HTTP status by category alone.
func Classify(err error) Classification {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		return Classification{Status: http.StatusBadRequest, Code: "VALIDATION_ERROR", Title: "Validation failed"}
	case apperror.KindNotFound:
		return Classification{Status: http.StatusNotFound, Code: "NOT_FOUND", Title: "Not found"}
	case apperror.KindConflict:
		return Classification{Status: http.StatusConflict, Code: "CONFLICT", Title: "Conflict"}
	default:
		return Classification{Status: http.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR", Title: "Unexpected error"}
	}
}

// HandleError renders err. action names the attempted operation, for example
// "creating the department", and is the only detail an unexpected failure
// exposes; the error itself is logged under a generated error_id.
func HandleError(w http.ResponseWriter, r *http.Request, action string, err error) {
	c := Classify(err)
	detail := ErrorDetail{
		Status: c.Status,
		Code:   c.Code,
		Title:  c.Title,
	}

	switch c.Status {
	case http.StatusInternalServerError:
		errorID := uuid.NewString()
		httplog.SetAttrs(r.Context(), slog.String("error_id", errorID), slog.String("error", err.Error()))
		slog.ErrorContext(r.Context(), "unexpected error",
			slog.String("error_id", errorID),
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
		detail.Message = "An unexpected error occurred while " + action + "."
		detail.Details = map[string]string{"error_id": errorID}

	case http.StatusBadRequest:
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			detail.Message = "One or more fields are invalid"
			detail.Details = validationErrs.ToMap()
		} else {
			detail.Message = apperror.Message(err)
		}

	default:
		detail.Message = apperror.Message(err)
	}

	Error(w, detail)
}
