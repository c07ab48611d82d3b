package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/repository"
	appErrors "github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/errors"
)

// Crud is the one generic resource service. Each resource instantiates it
// with its repository, projection function, and input→store-field mappers;
// there is no per-resource pass-through layer beyond that wiring.
type Crud[Row any, Out any, In any, Upd any] struct {
	repo         *repository.Repository[Row]
	project      func(Row, bool) Out
	createFields func(In) map[string]interface{}
	updateFields func(Upd) map[string]interface{}
	validator    *validator.Validate
	logger       *zap.Logger
	resource     string
}

// NewCrud wires a resource service.
func NewCrud[Row any, Out any, In any, Upd any](
	resource string,
	repo *repository.Repository[Row],
	project func(Row, bool) Out,
	createFields func(In) map[string]interface{},
	updateFields func(Upd) map[string]interface{},
	validate *validator.Validate,
	logger *zap.Logger,
) *Crud[Row, Out, In, Upd] {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Crud[Row, Out, In, Upd]{
		repo:         repo,
		project:      project,
		createFields: createFields,
		updateFields: updateFields,
		validator:    validate,
		logger:       logger,
		resource:     resource,
	}
}

// SortColumns exposes the resource's sort-field mapping for request parsing.
func (s *Crud[Row, Out, In, Upd]) SortColumns() query.FieldMapping {
	return s.repo.SortColumns()
}

// Resource returns the resource name used in messages and cache keys.
func (s *Crud[Row, Out, In, Upd]) Resource() string {
	return s.resource
}

// List returns one projected page plus the total match count. A failure of
// either the fetch or the count fails the whole call; no partial page leaks.
func (s *Crud[Row, Out, In, Upd]) List(ctx context.Context, pred query.Predicate, sort query.Sort, light bool) ([]Out, int, error) {
	rows, total, err := s.repo.List(ctx, pred, sort)
	if err != nil {
		s.logger.Error("list failed", zap.String("resource", s.resource), zap.Error(err))
		return nil, 0, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to list "+s.resource)
	}

	out := make([]Out, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.project(row, light))
	}
	return out, total, nil
}

// Get returns a single projected entity, failing NotFound when absent.
func (s *Crud[Row, Out, In, Upd]) Get(ctx context.Context, id string, light bool) (*Out, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, s.resource+" not found")
		}
		s.logger.Error("get failed", zap.String("resource", s.resource), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to load "+s.resource)
	}
	out := s.project(*row, light)
	return &out, nil
}

// Create validates the input, stores it, and returns the stored entity.
func (s *Crud[Row, Out, In, Upd]) Create(ctx context.Context, in In, light bool) (*Out, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid "+s.resource+" payload")
	}
	row, err := s.repo.Insert(ctx, s.createFields(in))
	if err != nil {
		s.logger.Error("create failed", zap.String("resource", s.resource), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to create "+s.resource)
	}
	out := s.project(*row, light)
	return &out, nil
}

// Update applies a partial update, failing NotFound when the row is absent.
// Fields absent from the input leave their columns untouched.
func (s *Crud[Row, Out, In, Upd]) Update(ctx context.Context, id string, upd Upd, light bool) (*Out, error) {
	if err := s.validator.Struct(upd); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid "+s.resource+" payload")
	}
	row, err := s.repo.Update(ctx, id, s.updateFields(upd))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, s.resource+" not found")
		}
		s.logger.Error("update failed", zap.String("resource", s.resource), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to update "+s.resource)
	}
	out := s.project(*row, light)
	return &out, nil
}

// Delete removes a row, failing NotFound when nothing matched.
func (s *Crud[Row, Out, In, Upd]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, s.resource+" not found")
		}
		s.logger.Error("delete failed", zap.String("resource", s.resource), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to delete "+s.resource)
	}
	return nil
}
