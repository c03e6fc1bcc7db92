package dto

import (
	"net/http"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type Sort struct {
	Field string
	Dir   string
}

type QueryParams struct {
	Offset  int    `json:"from"     validate:"min=0"`
	Limit   int    `json:"size"     validate:"omitempty,gt=0"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
	Sorts   []Sort `json:"-"`
}

// FromRequest populates QueryParams from the from and size query parameters.
// Missing parameters take the defaults; malformed or out of range ones are rejected.
//
//	q := dto.QueryParams{}
//	if err := q.FromRequest(req); err != nil {
//		response.WithError(w, err)
//	}
func (q *QueryParams) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	q.Offset = constant.DefaultValueFrom
	q.Limit = constant.DefaultValueSize

	if from := queryParams.Get(constant.RequestParamFrom); from != "" {
		fromInt, err := strconv.Atoi(from)
		if err != nil {
			return failure.InvalidFromParam
		}

		q.Offset = fromInt
	}

	if size := queryParams.Get(constant.RequestParamSize); size != "" {
		sizeInt, err := strconv.Atoi(size)
		if err != nil {
			return failure.InvalidSizeParam
		}

		q.Limit = sizeInt
	}

	return q.Validate()
}

// Validate enforces from >= 0 and size > 0.
func (q *QueryParams) Validate() error {
	if q.Offset < 0 {
		return failure.InvalidFromParam
	}

	if q.Limit <= 0 {
		return failure.InvalidSizeParam
	}

	return nil
}

// OrderBy appends a sort key after any already present.
func (q QueryParams) OrderBy(field, dir string) QueryParams {
	q.Sorts = append(append([]Sort{}, q.Sorts...), Sort{Field: field, Dir: strings.ToUpper(dir)})

	return q
}

// OrderClause renders the ORDER BY clause, or an empty string when no sort is set.
func (q QueryParams) OrderClause() string {
	parts := []string{}

	if q.SortBy != "" && q.SortDir != "" {
		parts = append(parts, q.SortBy+" "+q.SortDir)
	}

	for _, sort := range q.Sorts {
		dir := sort.Dir
		if dir != SortDirAsc {
			dir = SortDirDesc
		}

		parts = append(parts, sort.Field+" "+dir)
	}

	if len(parts) == 0 {
		return ""
	}

	return "ORDER BY " + strings.Join(parts, ", ")
}
