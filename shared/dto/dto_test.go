package dto_test

import (
	"net/http"
	"net/url"
	"shareit/shared/constant"
	"shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt, ModifiedAt: modifiedAt})

	parsedCreated, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	assert.NoError(t, err)
	assert.True(t, parsedCreated.Equal(createdAt))

	parsedModified, err := time.Parse(constant.DateFormat, metadata.ModifiedAt)
	assert.NoError(t, err)
	assert.True(t, parsedModified.Equal(modifiedAt))
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name        string
		queryParams map[string]string
		expected    dto.QueryParams
		expectedErr error
	}{
		{
			name:        "defaults when nothing is given",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{Offset: constant.DefaultValueFrom, Limit: constant.DefaultValueSize},
		},
		{
			name:        "explicit from and size",
			queryParams: map[string]string{"from": "20", "size": "5"},
			expected:    dto.QueryParams{Offset: 20, Limit: 5},
		},
		{
			name:        "from is an offset not a page",
			queryParams: map[string]string{"from": "3", "size": "2"},
			expected:    dto.QueryParams{Offset: 3, Limit: 2},
		},
		{
			name:        "negative from",
			queryParams: map[string]string{"from": "-1"},
			expectedErr: failure.InvalidFromParam,
		},
		{
			name:        "non numeric from",
			queryParams: map[string]string{"from": "abc"},
			expectedErr: failure.InvalidFromParam,
		},
		{
			name:        "zero size",
			queryParams: map[string]string{"size": "0"},
			expectedErr: failure.InvalidSizeParam,
		},
		{
			name:        "negative size",
			queryParams: map[string]string{"size": "-10"},
			expectedErr: failure.InvalidSizeParam,
		},
		{
			name:        "non numeric size",
			queryParams: map[string]string{"size": "ten"},
			expectedErr: failure.InvalidSizeParam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/test")
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := dto.QueryParams{}
			err = queryParams.FromRequest(req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.True(t, failure.IsKind(err, failure.KindInvalidInput))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected.Offset, queryParams.Offset)
			assert.Equal(t, tt.expected.Limit, queryParams.Limit)
		})
	}
}

func TestQueryParams_OrderClause(t *testing.T) {
	assert.Empty(t, dto.QueryParams{}.OrderClause())

	q := dto.QueryParams{Limit: 10}.
		OrderBy("bookings.end_date", dto.SortDirDesc).
		OrderBy("bookings.id", "desc")

	assert.Equal(t, "ORDER BY bookings.end_date DESC, bookings.id DESC", q.OrderClause())

	q = dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc}.OrderBy("id", dto.SortDirAsc)
	assert.Equal(t, "ORDER BY name ASC, id ASC", q.OrderClause())
}

func TestQueryParams_OrderByDoesNotAlias(t *testing.T) {
	base := dto.QueryParams{}.OrderBy("a", dto.SortDirAsc)
	first := base.OrderBy("b", dto.SortDirAsc)
	second := base.OrderBy("c", dto.SortDirAsc)

	assert.Equal(t, "ORDER BY a ASC, b ASC", first.OrderClause())
	assert.Equal(t, "ORDER BY a ASC, c ASC", second.OrderClause())
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		where    string
		argCount int
	}{
		{"eq", dto.Eq("bookings", "booker_id", int64(1)), "bookings.booker_id = :bookings_booker_id", 1},
		{"eq without table", dto.Eq("", "email", "a@b.c"), "email = :email", 1},
		{"less", dto.Filter{Table: "bookings", Field: "end_date", ArgName: "now", Operator: dto.FilterOperatorLess, Value: time.Now()}, "bookings.end_date < :now", 1},
		{"greater", dto.Filter{Table: "bookings", Field: "start_date", ArgName: "now", Operator: dto.FilterOperatorGreater, Value: time.Now()}, "bookings.start_date > :now", 1},
		{"less eq", dto.Filter{Field: "start_date", ArgName: "now", Operator: dto.FilterOperatorLessEq, Value: 1}, "start_date <= :now", 1},
		{"in", dto.Filter{Field: "item_id", Operator: dto.FilterOperatorIn, Value: []int64{1, 2}}, "item_id IN (:item_id_0, :item_id_1) ", 2},
		{"empty in", dto.Filter{Field: "item_id", Operator: dto.FilterOperatorIn, Value: []int64{}}, "FALSE", 0},
		{"is null", dto.Filter{Field: "request_id", Operator: dto.FilterIsNull}, "request_id IS NULL", 0},
		{"plain", dto.Filter{Operator: dto.FilterPlainQuery, Value: "items.available"}, "(items.available)", 0},
		{"unknown", dto.Filter{Field: "x", Operator: "nope"}, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()
			assert.Equal(t, tt.where, where)
			assert.Len(t, args, tt.argCount)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.And(
		dto.Eq("bookings", "booker_id", int64(1)),
		dto.Or(
			dto.Eq("items", "name", "drill"),
			dto.Eq("items", "description", "drill"),
		),
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.booker_id = :bookings_booker_id AND (items.name = :items_name OR items.description = :items_description))", where)
	assert.Len(t, args, 3)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterOperatorConstants(t *testing.T) {
	assert.Equal(t, "plain", dto.FilterPlainQuery)
	assert.Equal(t, "is_null", dto.FilterIsNull)
}

func TestSortDirectionConstants(t *testing.T) {
	assert.Equal(t, "ASC", dto.SortDirAsc)
	assert.Equal(t, "DESC", dto.SortDirDesc)
}
