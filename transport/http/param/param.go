// Package param reads typed values out of chi path and query parameters.
package param

import (
	"net/http"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ID parses the {id} path parameter as a positive int64.
func ID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constant.RequestParamID)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("invalid id: " + raw) // nolint:wrapcheck
	}

	return id, nil
}

// Bool parses a required boolean query parameter.
func Bool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, failure.BadRequestFromString("invalid " + name + " parameter: " + raw) // nolint:wrapcheck
	}

	return value, nil
}
