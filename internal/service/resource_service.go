package service

import (
	"context"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/models"
	"society-admin-svc/internal/repository"
	"society-admin-svc/pkg/logger"
)

// ResourceService is the CRUD surface shared by every managed resource.
// T is the record type and I the create/replace input.
type ResourceService[T any, I any] interface {
	List(ctx context.Context, params models.ListParams) (*models.Page[T], error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, input *I, files []apiclient.File) (*T, error)
	Update(ctx context.Context, id uint, input *I, files []apiclient.File) (*T, error)
	Patch(ctx context.Context, id uint, fields map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// resourceService implements ResourceService on top of a remote repository
type resourceService[T any, I any] struct {
	name     string
	repo     repository.RemoteResource[T]
	validate func(*I) error
	// validatePatch checks partial updates; nil accepts any non-empty patch
	validatePatch func(map[string]interface{}) error
	logger        *logger.Logger
}

func (s *resourceService[T, I]) List(ctx context.Context, params models.ListParams) (*models.Page[T], error) {
	page, err := s.repo.List(ctx, params)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"resource": s.name,
			"page":     params.Page,
			"limit":    params.Limit,
		}).Error("Failed to list records")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"resource": s.name,
		"count":    len(page.Items),
		"total":    page.Pagination.Total,
	}).Debug("Records listed")
	return page, nil
}

func (s *resourceService[T, I]) Get(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{"resource": s.name, "id": id}).Error("Failed to get record")
		return nil, err
	}
	return record, nil
}

func (s *resourceService[T, I]) Create(ctx context.Context, input *I, files []apiclient.File) (*T, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	record, err := s.repo.Create(ctx, input, files)
	if err != nil {
		s.logger.WithError(err).WithField("resource", s.name).Error("Failed to create record")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{"resource": s.name, "files": len(files)}).Info("Record created successfully")
	return record, nil
}

func (s *resourceService[T, I]) Update(ctx context.Context, id uint, input *I, files []apiclient.File) (*T, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	if err := s.check(input); err != nil {
		return nil, err
	}

	record, err := s.repo.Update(ctx, id, input, files)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{"resource": s.name, "id": id}).Error("Failed to update record")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{"resource": s.name, "id": id}).Info("Record updated successfully")
	return record, nil
}

func (s *resourceService[T, I]) Patch(ctx context.Context, id uint, fields map[string]interface{}) (*T, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	if len(fields) == 0 {
		return nil, newValidationError("body", "at least one field is required")
	}
	if s.validatePatch != nil {
		if err := s.validatePatch(fields); err != nil {
			return nil, err
		}
	}

	record, err := s.repo.Patch(ctx, id, fields)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{"resource": s.name, "id": id}).Error("Failed to patch record")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{"resource": s.name, "id": id, "fields": len(fields)}).Info("Record patched successfully")
	return record, nil
}

func (s *resourceService[T, I]) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{"resource": s.name, "id": id}).Error("Failed to delete record")
		return err
	}

	s.logger.WithFields(map[string]interface{}{"resource": s.name, "id": id}).Info("Record deleted successfully")
	return nil
}

func (s *resourceService[T, I]) check(input *I) error {
	if input == nil {
		return newValidationError("body", "request body is required")
	}
	if s.validate != nil {
		return s.validate(input)
	}
	return nil
}
