package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shareit/config"
	"shareit/infras/metrics"
	"shareit/infras/otel/mocks"
	userMocks "shareit/internal/domains/user/mocks"
	"shareit/internal/domains/user/model"
	"shareit/internal/domains/user/model/dto"
	"shareit/internal/domains/user/service"
	cacheMocks "shareit/shared/cache/mocks"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/timezone"
)

var fixedNow = time.Date(2030, time.January, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	repo  *userMocks.MockUser
	cache *cacheMocks.MockRedisCache
	svc   service.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := userMocks.NewMockUser(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	clock := timezone.ClockFunc(func() time.Time { return fixedNow })

	return fixture{
		repo:  repo,
		cache: cache,
		svc:   service.New(repo, cfg, cache, mocks.NewOtel(), clock, metrics.New()),
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		setupMock func(f fixture)
		want      dto.UserResponse
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "successful creation normalizes email",
			req:  dto.CreateUserRequest{Name: " Ann ", Email: "Ann@Example.com"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) (int64, error) {
						assert.Equal(t, "ann@example.com", user.Email)
						assert.Equal(t, fixedNow, user.CreatedAt)

						return 1, nil
					})
			},
			want: dto.UserResponse{ID: 1, Name: "Ann", Email: "ann@example.com"},
		},
		{
			name: "email already registered",
			req:  dto.CreateUserRequest{Name: "Ann", Email: "ann@example.com"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "unique violation on insert",
			req:  dto.CreateUserRequest{Name: "Ann", Email: "ann@example.com"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), &pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "repository error",
			req:  dto.CreateUserRequest{Name: "Ann", Email: "ann@example.com"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantErr:  true,
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	t.Run("cache hit skips repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "user:get:1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*dto.UserResponse)) = dto.UserResponse{ID: 1, Name: "Ann", Email: "ann@example.com"}

				return nil
			})

		res, err := f.svc.Get(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), res.ID)
	})

	t.Run("cache miss reads repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: 2, Name: "Bob", Email: "bob@example.com"}, nil)

		res, err := f.svc.Get(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, dto.UserResponse{ID: 2, Name: "Bob", Email: "bob@example.com"}, res)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := f.svc.Get(context.Background(), 3)

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestUserService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.User, error) {
			assert.Equal(t, "ORDER BY users.id ASC", params.OrderClause())

			return []model.User{{ID: 1, Name: "Ann"}, {ID: 2, Name: "Bob"}}, nil
		})

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10})

	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestUserService_Update(t *testing.T) {
	current := model.User{ID: 1, Name: "Ann", Email: "ann@example.com"}

	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		setupMock func(f fixture)
		want      dto.UserResponse
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "name only",
			req:  dto.UpdateUserRequest{Name: ptr("Anna")},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Anna", fields[model.FieldName])
						assert.NotContains(t, fields, model.FieldEmail)

						return nil
					})
			},
			want: dto.UserResponse{ID: 1, Name: "Anna", Email: "ann@example.com"},
		},
		{
			name: "email taken by another user",
			req:  dto.UpdateUserRequest{Email: ptr("bob@example.com")},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "same email is not a conflict",
			req:  dto.UpdateUserRequest{Email: ptr("ANN@example.com")},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			want: dto.UserResponse{ID: 1, Name: "Ann", Email: "ann@example.com"},
		},
		{
			name: "user not found",
			req:  dto.UpdateUserRequest{Name: ptr("Anna")},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Update(context.Background(), tt.req, 1)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deletes existing user", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Delete(context.Background(), 1))
	})

	t.Run("missing user", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(context.Background(), 1)
		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}
