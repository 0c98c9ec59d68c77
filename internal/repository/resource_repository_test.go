package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/models"
)

type recordedRequest struct {
	Method      string
	Path        string
	Query       string
	ContentType string
	JSON        map[string]interface{}
	Form        map[string]string
	Files       map[string]string
}

// fakeAPI records every request and answers with a fixed envelope
type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newFakeAPI(t *testing.T, status int, body string) (*fakeAPI, *apiclient.Client) {
	api := &fakeAPI{status: status, body: body}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)
	return api, apiclient.New(apiclient.Config{BaseURL: server.URL})
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := recordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		Query:       r.URL.RawQuery,
		ContentType: r.Header.Get("Content-Type"),
	}

	switch {
	case strings.HasPrefix(rec.ContentType, "multipart/form-data"):
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			rec.Form = map[string]string{}
			for k, v := range r.MultipartForm.Value {
				rec.Form[k] = v[0]
			}
			rec.Files = map[string]string{}
			for k, headers := range r.MultipartForm.File {
				file, err := headers[0].Open()
				if err == nil {
					content, _ := io.ReadAll(file)
					file.Close()
					rec.Files[k] = headers[0].Filename + ":" + string(content)
				}
			}
		}
	case rec.ContentType == "application/json":
		_ = json.NewDecoder(r.Body).Decode(&rec.JSON)
	}

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func (f *fakeAPI) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func TestRemoteResource_CreateJSON(t *testing.T) {
	api, client := newFakeAPI(t, http.StatusCreated, `{"message":"Society created","result":{"id":7,"name":"Green Valley","city":"Pune"}}`)
	repo := NewSocietyRepository(client)

	society, err := repo.Create(context.Background(), map[string]interface{}{
		"name":       "Green Valley",
		"city":       "Pune",
		"totalUnits": 240,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, uint(7), society.ID)

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, "/societies", requests[0].Path)
	assert.Equal(t, "application/json", requests[0].ContentType)
	assert.Equal(t, "Green Valley", requests[0].JSON["name"])
	assert.Equal(t, "Pune", requests[0].JSON["city"])
	assert.Equal(t, float64(240), requests[0].JSON["totalUnits"])
}

func TestRemoteResource_CreateMultipart(t *testing.T) {
	api, client := newFakeAPI(t, http.StatusCreated, `{"message":"Amenity created","result":{"id":3,"name":"Pool"}}`)
	repo := NewAmenityRepository(client)

	amenity, err := repo.Create(context.Background(), map[string]interface{}{
		"name":            "Pool",
		"societyId":       1,
		"requiresPayment": true,
		"fee":             250.5,
	}, []apiclient.File{{Field: "image", Name: "pool.jpg", Reader: strings.NewReader("jpeg")}})
	require.NoError(t, err)
	assert.Equal(t, "Pool", amenity.Name)

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, "/amenities", requests[0].Path)
	assert.Equal(t, "Pool", requests[0].Form["name"])
	assert.Equal(t, "1", requests[0].Form["societyId"])
	assert.Equal(t, "true", requests[0].Form["requiresPayment"])
	assert.Equal(t, "250.5", requests[0].Form["fee"])
	assert.Equal(t, "pool.jpg:jpeg", requests[0].Files["image"])
}

func TestRemoteResource_List(t *testing.T) {
	api, client := newFakeAPI(t, http.StatusOK, `{"message":"ok","result":{"items":[{"id":1,"title":"Lift"}],"pagination":{"page":2,"limit":5,"total":6,"totalPages":2}}}`)
	repo := NewComplaintRepository(client)

	page, err := repo.List(context.Background(), models.ListParams{
		Page:    2,
		Limit:   5,
		Sort:    "createdAt",
		Order:   "desc",
		Filters: map[string]string{"status": "open"},
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Lift", page.Items[0].Title)
	assert.Equal(t, int64(6), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/complaints", requests[0].Path)
	assert.Equal(t, "limit=5&order=desc&page=2&sort=createdAt&status=open", requests[0].Query)
}

func TestRemoteResource_ListEmptyItems(t *testing.T) {
	_, client := newFakeAPI(t, http.StatusOK, `{"message":"ok","result":{"pagination":{"page":1,"limit":10,"total":0,"totalPages":0}}}`)

	page, err := NewNoticeRepository(client).List(context.Background(), models.ListParams{})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestRemoteResource_ItemOperations(t *testing.T) {
	api, client := newFakeAPI(t, http.StatusOK, `{"message":"ok","result":{"id":4,"title":"Updated"}}`)
	repo := NewNoticeRepository(client)
	ctx := context.Background()

	notice, err := repo.Get(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Updated", notice.Title)

	_, err = repo.Update(ctx, 4, map[string]string{"title": "Updated"}, nil)
	require.NoError(t, err)
	_, err = repo.Patch(ctx, 4, map[string]bool{"isPinned": true})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, 4))

	requests := api.recorded()
	require.Len(t, requests, 4)
	assert.Equal(t, []string{"GET", "PUT", "PATCH", "DELETE"}, []string{
		requests[0].Method, requests[1].Method, requests[2].Method, requests[3].Method,
	})
	for _, req := range requests {
		assert.Equal(t, "/notices/4", req.Path)
	}
	assert.Equal(t, true, requests[2].JSON["isPinned"])
}

func TestComplaintRepository_UpdateStatus(t *testing.T) {
	api, client := newFakeAPI(t, http.StatusOK, `{"message":"ok","result":{"id":9,"status":"resolved"}}`)

	complaint, err := NewComplaintRepository(client).UpdateStatus(context.Background(), 9, "resolved", "Fixed the lift motor")
	require.NoError(t, err)
	assert.Equal(t, "resolved", complaint.Status)

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPatch, requests[0].Method)
	assert.Equal(t, "/complaints/9/status", requests[0].Path)
	assert.Equal(t, "resolved", requests[0].JSON["status"])
	assert.Equal(t, "Fixed the lift motor", requests[0].JSON["remarks"])
}

func TestPaymentRepository_ListBySociety(t *testing.T) {
	api, client := newFakeAPI(t, http.StatusOK, `{"message":"ok","result":{"items":[{"id":1,"amount":2500}],"pagination":{"total":1}}}`)

	page, err := NewPaymentRepository(client).ListBySociety(context.Background(), 3, models.ListParams{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 2500.0, page.Items[0].Amount)

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/societies/3/payments", requests[0].Path)
	assert.Equal(t, "page=1", requests[0].Query)
}

func TestAuthRepository(t *testing.T) {
	api, client := newFakeAPI(t, http.StatusOK, `{"message":"Login successful","result":{"token":"jwt","user":{"id":1,"email":"a@b.c","role":"admin"}}}`)
	repo := NewAuthRepository(client)

	result, err := repo.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt", result.Token)
	assert.Equal(t, "admin", result.User.Role)

	requests := api.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/auth/login", requests[0].Path)
	assert.Equal(t, "secret", requests[0].JSON["password"])
}

func TestRemoteResource_PropagatesAPIError(t *testing.T) {
	_, client := newFakeAPI(t, http.StatusUnprocessableEntity, `{"message":"Name already taken"}`)

	_, err := NewSocietyRepository(client).Create(context.Background(), map[string]string{"name": "Dup"}, nil)
	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Name already taken", apiErr.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
}
