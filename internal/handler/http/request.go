package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/paging"
	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const apiPrefix = "/api/v1"

// pagingFromQuery reads page, size and search. Absent parameters yield nil;
// non-integer page or size is a validation failure.
func pagingFromQuery(r *http.Request) (*paging.Request, error) {
	query := r.URL.Query()

	var errs validator.ValidationErrors
	var page, size *int
	if v, ok := validator.ParseInt(&errs, "page", query.Get("page")); ok {
		page = &v
	}
	if v, ok := validator.ParseInt(&errs, "size", query.Get("size")); ok {
		size = &v
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	return paging.FromQuery(page, size, query.Get("search")), nil
}

func pathID(r *http.Request) (int64, error) {
	return validator.ParseID("id", chi.URLParam(r, "id"))
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
