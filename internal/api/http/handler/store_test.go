package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/flarewebs/flarewebs-server/internal/mocks"
	"github.com/flarewebs/flarewebs-server/internal/model"
	"github.com/flarewebs/flarewebs-server/internal/testutil"
)

func TestStore_UploadImage(t *testing.T) {
	t.Parallel()

	svc := mocks.NewStoreService(t)
	file := model.Upload{Filename: "cat.png", ContentType: "image/png", Content: []byte("png-bytes")}
	svc.On("Upload", mock.Anything, file, "public").
		Return(model.StoreLinks{Link: "http://minio/b/public/cat.png", Thumb: model.Ptr("http://minio/b/public/thumb_cat.png")}, nil)

	h := NewStore(svc, testutil.MakeNoopLogger())
	body, ct := multipartBody(t, "cat.png", "image/png", []byte("png-bytes"))
	rec := serve(t, http.MethodPost, "/store/upload-image/", "/store/upload-image/?loc=public", body, ct, nil, h.UploadImage)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"link":"http://minio/b/public/cat.png","thumb":"http://minio/b/public/thumb_cat.png"}`, rec.Body.String())
}

func TestStore_Create(t *testing.T) {
	t.Parallel()

	svc := mocks.NewStoreService(t)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(f model.Upload) bool { return f.Filename == "doc.pdf" }), "").
		Return(model.Store{ID: 4, Link: "http://minio/b/media/doc.pdf"}, nil)

	h := NewStore(svc, testutil.MakeNoopLogger())
	body, ct := multipartBody(t, "doc.pdf", "application/pdf", []byte("%PDF"))
	rec := serve(t, http.MethodPost, "/store/", "/store/", body, ct, nil, h.Create)

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeMap(t, rec)
	assert.Equal(t, float64(4), out["id"])
	assert.Nil(t, out["thumb"])
}

func TestStore_Create_MissingFile(t *testing.T) {
	t.Parallel()

	h := NewStore(mocks.NewStoreService(t), testutil.MakeNoopLogger())
	rec := serve(t, http.MethodPost, "/store/", "/store/", strings.NewReader("{}"), "application/json", nil, h.Create)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail":{"body":{"file":"field required"},"path":[]}}`, rec.Body.String())
}

func TestStore_Create_StorageDown(t *testing.T) {
	t.Parallel()

	svc := mocks.NewStoreService(t)
	svc.On("Create", mock.Anything, mock.Anything, "").Return(model.Store{}, model.ErrStorageUnavailable)

	h := NewStore(svc, testutil.MakeNoopLogger())
	body, ct := multipartBody(t, "a.txt", "text/plain", []byte("a"))
	rec := serve(t, http.MethodPost, "/store/", "/store/", body, ct, nil, h.Create)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStore_List(t *testing.T) {
	t.Parallel()

	svc := mocks.NewStoreService(t)
	svc.On("List", mock.Anything, 1, 10).
		Return(model.NewPage([]model.Store{{ID: 11}}, 25, 1, 10), nil)

	h := NewStore(svc, testutil.MakeNoopLogger())
	rec := serve(t, http.MethodGet, "/store/", "/store/?skip=1&limit=10", nil, "", nil, h.List)

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeMap(t, rec)
	assert.Equal(t, float64(2), out["next"])
	assert.Equal(t, float64(0), out["prev"])
}

func TestStore_Get(t *testing.T) {
	t.Parallel()

	svc := mocks.NewStoreService(t)
	svc.On("Get", mock.Anything, int64(3)).Return(model.Store{}, model.NewErrRecordNotFound())

	h := NewStore(svc, testutil.MakeNoopLogger())
	rec := serve(t, http.MethodGet, "/store/{id}", "/store/3", nil, "", nil, h.Get)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStore_Update(t *testing.T) {
	t.Parallel()

	svc := mocks.NewStoreService(t)
	svc.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(f model.Upload) bool { return string(f.Content) == "v2" }), "").
		Return(model.Store{ID: 3, Link: "http://minio/b/media/a_1.txt"}, nil)

	h := NewStore(svc, testutil.MakeNoopLogger())
	body, ct := multipartBody(t, "a.txt", "text/plain", []byte("v2"))
	rec := serve(t, http.MethodPut, "/store/{id}", "/store/3", body, ct, nil, h.Update)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://minio/b/media/a_1.txt", decodeMap(t, rec)["link"])
}

func TestStore_Update_InvalidLocation(t *testing.T) {
	t.Parallel()

	svc := mocks.NewStoreService(t)
	svc.On("Update", mock.Anything, int64(3), mock.Anything, "../etc").
		Return(model.Store{}, model.NewErrValidation(nil, []string{"query loc : invalid location"}))

	h := NewStore(svc, testutil.MakeNoopLogger())
	body, ct := multipartBody(t, "a.txt", "text/plain", []byte("v2"))
	rec := serve(t, http.MethodPut, "/store/{id}", "/store/3?loc=../etc", body, ct, nil, h.Update)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "query loc : invalid location")
}

func TestStore_Destroy(t *testing.T) {
	t.Parallel()

	svc := mocks.NewStoreService(t)
	svc.On("Destroy", mock.Anything, int64(3)).Return(model.Store{ID: 3, Link: "media/a.txt"}, nil)

	h := NewStore(svc, testutil.MakeNoopLogger())
	rec := serve(t, http.MethodDelete, "/store/{id}", "/store/3", nil, "", nil, h.Destroy)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "media/a.txt", decodeMap(t, rec)["link"])
}
