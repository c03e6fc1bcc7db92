package shared_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"shareit/shared"
	cacheMocks "shareit/shared/cache/mocks"
	"shareit/shared/constant"
	"shareit/shared/dto"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTransformFields(t *testing.T) {
	type patch struct {
		Name        string `db:"name"`
		Description string `db:"description"`
		Available   *bool  `db:"available"`
		NoDBTag     string
		Ignored     string `db:"-"`
	}

	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name:     "all fields",
			data:     patch{Name: "drill", Description: "cordless", Available: boolPtr(false), NoDBTag: "x", Ignored: "y"},
			expected: map[string]any{"name": "drill", "description": "cordless", "available": false},
		},
		{
			name:     "blank name is skipped",
			data:     patch{Name: "   ", Description: "cordless"},
			expected: map[string]any{"description": "cordless"},
		},
		{
			name:     "empty patch only touches modified_at",
			data:     patch{},
			expected: map[string]any{},
		},
		{
			name:     "pointer to true is dereferenced",
			data:     patch{Available: boolPtr(true)},
			expected: map[string]any{"available": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)

			result := shared.TransformFields(tt.data, now)

			assert.Equal(t, now, result[constant.FieldModifiedAt])

			delete(result, constant.FieldModifiedAt)

			if !reflect.DeepEqual(tt.expected, result) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(42, "id", "items")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(items.id = :items_id)", where)
	assert.Equal(t, map[string]any{"items_id": int64(42)}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "user:get:7", shared.BuildCacheKey("user:get", int64(7)))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Offset: 10, Limit: 5}

	first := shared.BuildCacheKeyWithQuery("item:gets", params, dto.And(dto.Eq("items", "owner_id", int64(1))))
	same := shared.BuildCacheKeyWithQuery("item:gets", params, dto.And(dto.Eq("items", "owner_id", int64(1))))
	other := shared.BuildCacheKeyWithQuery("item:gets", params, dto.And(dto.Eq("items", "owner_id", int64(2))))
	otherPage := shared.BuildCacheKeyWithQuery("item:gets", dto.QueryParams{Offset: 15, Limit: 5}, dto.And(dto.Eq("items", "owner_id", int64(1))))

	assert.True(t, strings.HasPrefix(first, "item:gets:10:5:"))
	assert.Equal(t, first, same)
	assert.NotEqual(t, first, other)
	assert.NotEqual(t, first, otherPage)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "item:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), redisCache, "item:gets")

	redisCache.EXPECT().Clear(gomock.Any(), "user:gets*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), redisCache, "user:gets")
}

func TestIsUniqueViolation(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pq.Error{Code: constant.PqErrorCodeUniqueViolation})
	fk := &pq.Error{Code: constant.PqErrorCodeFkViolation}

	assert.True(t, shared.IsUniqueViolation(unique))
	assert.False(t, shared.IsUniqueViolation(fk))
	assert.False(t, shared.IsUniqueViolation(errors.New("plain")))

	assert.True(t, shared.IsFkViolation(fk))
	assert.False(t, shared.IsFkViolation(unique))
}

func boolPtr(b bool) *bool {
	return &b
}
