package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shareit/infras/otel/mocks"
	itemMocks "shareit/internal/domains/item/mocks"
	itemModel "shareit/internal/domains/item/model"
	requestMocks "shareit/internal/domains/request/mocks"
	"shareit/internal/domains/request/model"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/domains/request/service"
	userMocks "shareit/internal/domains/user/mocks"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/timezone"
)

var fixedNow = time.Date(2030, time.February, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	repo     *requestMocks.MockRequest
	userRepo *userMocks.MockUser
	itemRepo *itemMocks.MockItem
	svc      service.Request
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     requestMocks.NewMockRequest(ctrl),
		userRepo: userMocks.NewMockUser(ctrl),
		itemRepo: itemMocks.NewMockItem(ctrl),
	}

	clock := timezone.ClockFunc(func() time.Time { return fixedNow })
	f.svc = service.New(f.repo, f.userRepo, f.itemRepo, mocks.NewOtel(), clock)

	return f
}

func TestRequestService_Create(t *testing.T) {
	t.Run("stores request for existing user", func(t *testing.T) {
		f := newFixture(t)

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, request model.Request) (int64, error) {
				assert.Equal(t, int64(5), request.RequesterID)
				assert.Equal(t, fixedNow, request.CreatedAt)

				return 9, nil
			})

		res, err := f.svc.Create(context.Background(), dto.CreateRequestRequest{Description: "a tent"}, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(9), res.ID)
		assert.Equal(t, fixedNow, res.Created)
		assert.Empty(t, res.Items)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), dto.CreateRequestRequest{Description: "a tent"}, 5)

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestRequestService_ListOwn(t *testing.T) {
	f := newFixture(t)

	requestID := int64(2)

	f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Request, error) {
			assert.Equal(t, "ORDER BY requests.created_at DESC, requests.id DESC", params.OrderClause())

			_, args := filter.GetWhereClause()
			assert.Equal(t, int64(5), args["requests_requester_id"])

			return []model.Request{{ID: 2}, {ID: 1}}, nil
		})
	f.itemRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]itemModel.Item{{ID: 30, Name: "Tent", RequestID: &requestID}}, nil)

	res, err := f.svc.ListOwn(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Len(t, res[0].Items, 1)
	assert.Empty(t, res[1].Items)
}

func TestRequestService_ListOthers(t *testing.T) {
	t.Run("invalid size", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ListOthers(context.Background(), 5, gDto.QueryParams{Offset: 0, Limit: 0})

		assert.True(t, failure.IsKind(err, failure.KindInvalidInput))
	})

	t.Run("no requests skips item lookup", func(t *testing.T) {
		f := newFixture(t)

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Request{}, nil)

		res, err := f.svc.ListOthers(context.Background(), 5, gDto.QueryParams{Limit: 10})

		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(t)

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := f.svc.ListOthers(context.Background(), 5, gDto.QueryParams{Limit: 10})

		assert.Error(t, err)
	})
}

func TestRequestService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Request{}, nil)

		_, err := f.svc.Get(context.Background(), 5, 77)

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("found with answers", func(t *testing.T) {
		f := newFixture(t)

		requestID := int64(77)

		f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Request{ID: 77, Description: "kayak"}, nil)
		f.itemRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]itemModel.Item{{ID: 1, Name: "Kayak", OwnerID: 3, RequestID: &requestID}}, nil)

		res, err := f.svc.Get(context.Background(), 5, 77)

		require.NoError(t, err)
		assert.Equal(t, "kayak", res.Description)
		assert.Equal(t, []dto.ItemAnswer{{ID: 1, Name: "Kayak", OwnerID: 3, RequestID: 77}}, res.Items)
	})
}
