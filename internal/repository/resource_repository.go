package repository

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/models"
)

// Collection paths of the society API
const (
	SocietiesPath  = "/societies"
	NoticesPath    = "/notices"
	AmenitiesPath  = "/amenities"
	ComplaintsPath = "/complaints"
	PaymentsPath   = "/payments"
	UsersPath      = "/users"
)

// RemoteResource is the CRUD surface of one REST collection of the society API
type RemoteResource[T any] interface {
	List(ctx context.Context, params models.ListParams) (*models.Page[T], error)
	Get(ctx context.Context, id uint) (*T, error)
	// Create sends input as JSON, or as multipart form data when files are attached
	Create(ctx context.Context, input interface{}, files []apiclient.File) (*T, error)
	// Update replaces a record with PUT, as JSON or multipart like Create
	Update(ctx context.Context, id uint, input interface{}, files []apiclient.File) (*T, error)
	Patch(ctx context.Context, id uint, input interface{}) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// remoteResource implements RemoteResource over the shared API client
type remoteResource[T any] struct {
	client *apiclient.Client
	path   string
}

func newRemoteResource[T any](client *apiclient.Client, path string) *remoteResource[T] {
	return &remoteResource[T]{client: client, path: "/" + strings.Trim(path, "/")}
}

func (r *remoteResource[T]) itemPath(id uint) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

func (r *remoteResource[T]) List(ctx context.Context, params models.ListParams) (*models.Page[T], error) {
	return listPage[T](ctx, r.client, r.path, params)
}

func (r *remoteResource[T]) Get(ctx context.Context, id uint) (*T, error) {
	var record T
	if _, err := r.client.Get(ctx, r.itemPath(id), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *remoteResource[T]) Create(ctx context.Context, input interface{}, files []apiclient.File) (*T, error) {
	return r.send(ctx, http.MethodPost, r.path, input, files)
}

func (r *remoteResource[T]) Update(ctx context.Context, id uint, input interface{}, files []apiclient.File) (*T, error) {
	return r.send(ctx, http.MethodPut, r.itemPath(id), input, files)
}

func (r *remoteResource[T]) Patch(ctx context.Context, id uint, input interface{}) (*T, error) {
	return r.send(ctx, http.MethodPatch, r.itemPath(id), input, nil)
}

func (r *remoteResource[T]) Delete(ctx context.Context, id uint) error {
	_, err := r.client.Delete(ctx, r.itemPath(id), nil)
	return err
}

func (r *remoteResource[T]) send(ctx context.Context, method, path string, input interface{}, files []apiclient.File) (*T, error) {
	req := apiclient.Request{Method: method, Path: path, Body: input}
	if len(files) > 0 {
		form, err := apiclient.FormFromBody(input, files)
		if err != nil {
			return nil, err
		}
		req = apiclient.Request{Method: method, Path: path, Form: form}
	}

	var record T
	if _, err := r.client.Do(ctx, req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// listPage fetches one page of a list endpoint
func listPage[T any](ctx context.Context, client *apiclient.Client, path string, params models.ListParams) (*models.Page[T], error) {
	var page models.Page[T]
	if _, err := client.Get(ctx, path, params.Values(), &page); err != nil {
		return nil, err
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	return &page, nil
}
