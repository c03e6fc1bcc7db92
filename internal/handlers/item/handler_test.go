package item_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"shareit/infras/otel/mocks"
	commentDto "shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/item/model/dto"
	serviceMocks "shareit/internal/domains/item/service/mocks"
	"shareit/internal/handlers/item"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/transport/http/middleware"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockItem) {
	t.Helper()

	svc := serviceMocks.NewMockItem(gomock.NewController(t))
	handler := item.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(middleware.Identity)
	handler.Router(router)

	return router, svc
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(constant.RequestHeaderUserID, "1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_CreateItem(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Create(gomock.Any(), gomock.Any(), int64(1)).
			DoAndReturn(func(_ any, req dto.CreateItemRequest, _ int64) (dto.ItemResponse, error) {
				assert.True(t, *req.Available)

				return dto.ItemResponse{ID: 3, Name: req.Name, Available: true}, nil
			})

		rec := do(router, http.MethodPost, "/items", `{"name":"Drill","description":"Cordless","available":true}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("availability required", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := do(router, http.MethodPost, "/items", `{"name":"Drill","description":"Cordless"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"available is required"}`, rec.Body.String())
	})
}

func TestHandler_UpdateItem(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		Update(gomock.Any(), gomock.Any(), int64(1), int64(3)).
		Return(dto.ItemResponse{}, failure.Forbidden("user is not the owner"))

	rec := do(router, http.MethodPatch, "/items/3", `{"available":false}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_GetItemByID(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), int64(1), int64(3)).Return(dto.ItemResponse{ID: 3, Comments: []commentDto.CommentResponse{}}, nil)

	rec := do(router, http.MethodGet, "/items/3", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"comments":[]`)
}

func TestHandler_GetOwnItems(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().ListByOwner(gomock.Any(), int64(1), gDto.QueryParams{Offset: 5, Limit: 10}).Return([]dto.ItemResponse{}, nil)

	rec := do(router, http.MethodGet, "/items?from=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_SearchItems(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Search(gomock.Any(), "drill", gomock.Any()).Return([]dto.ItemResponse{{ID: 3}}, nil)

	rec := do(router, http.MethodGet, "/items/search?text=drill", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(router, http.MethodGet, "/items/search?text=drill&size=0", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, http.MethodGet, "/items/search?text="+strings.Repeat("a", 256), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateComment(t *testing.T) {
	t.Run("lease not ended", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			CreateComment(gomock.Any(), commentDto.CreateCommentRequest{Text: "great"}, int64(1), int64(3)).
			Return(commentDto.CommentResponse{}, failure.BadRequestFromString("comments are left after the end of the lease"))

		rec := do(router, http.MethodPost, "/items/3/comment", `{"text":"great"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("blank text", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := do(router, http.MethodPost, "/items/3/comment", `{"text":"   "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
