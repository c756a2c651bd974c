package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mohae/deepcopy"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/flarewebs/flarewebs-server/internal/model"
)

// CRUD implements create, read, update, destroy and paginated listing for
// one table. C and U are the create and update shapes; only the fields they
// set are written.
type CRUD[M model.Entity, C model.Patch[M], U model.Patch[M]] struct {
	db    *Connection
	order clause.OrderByColumn
}

func NewCRUD[M model.Entity, C model.Patch[M], U model.Patch[M]](db *Connection, order clause.OrderByColumn) *CRUD[M, C, U] {
	return &CRUD[M, C, U]{
		db:    db,
		order: order,
	}
}

func (r *CRUD[M, C, U]) ReadOne(ctx context.Context, id int64) (M, error) {
	var m M
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, model.ErrNotFound
		}
		return m, fmt.Errorf("failed to read row %d: %w", id, err)
	}

	return m, nil
}

// ReadList returns page skip of size limit together with the unfiltered row count.
func (r *CRUD[M, C, U]) ReadList(ctx context.Context, skip, limit int) (model.Page[M], error) {
	return r.list(ctx, nil, r.order, skip, limit)
}

func (r *CRUD[M, C, U]) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB, order clause.OrderByColumn, skip, limit int) (model.Page[M], error) {
	if scope == nil {
		scope = func(db *gorm.DB) *gorm.DB { return db }
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(new(M)).Scopes(scope).Count(&count).Error; err != nil {
		return model.Page[M]{}, fmt.Errorf("failed to count rows: %w", err)
	}

	var items []M
	err := r.db.WithContext(ctx).
		Model(new(M)).
		Scopes(scope).
		Order(order).
		Offset(skip * limit).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return model.Page[M]{}, fmt.Errorf("failed to list rows: %w", err)
	}

	return model.NewPage(items, count, skip, limit), nil
}

// Create inserts the fields set on patch and returns the stored row.
func (r *CRUD[M, C, U]) Create(ctx context.Context, patch C) (M, error) {
	var m M
	cols := patch.Apply(&m)
	if len(cols) == 0 {
		return m, fmt.Errorf("failed to create row: no fields set")
	}

	if err := r.db.WithContext(ctx).Select(cols).Create(&m).Error; err != nil {
		return m, fmt.Errorf("failed to create row: %w", conflict(err))
	}

	return r.ReadOne(ctx, m.PrimaryKey())
}

// Update writes the fields set on patch and returns the new and the previous state.
func (r *CRUD[M, C, U]) Update(ctx context.Context, id int64, patch U) (M, M, error) {
	var zero M

	current, err := r.ReadOne(ctx, id)
	if err != nil {
		return zero, zero, err
	}
	old := deepcopy.Copy(current).(M)

	next := current
	cols := patch.Apply(&next)
	if len(cols) > 0 {
		if err := r.db.WithContext(ctx).Model(&next).Select(cols).Updates(&next).Error; err != nil {
			return zero, zero, fmt.Errorf("failed to update row %d: %w", id, conflict(err))
		}
	}

	updated, err := r.ReadOne(ctx, id)
	if err != nil {
		return zero, zero, err
	}

	return updated, old, nil
}

// Destroy deletes the row and returns its last state.
func (r *CRUD[M, C, U]) Destroy(ctx context.Context, id int64) (M, error) {
	current, err := r.ReadOne(ctx, id)
	if err != nil {
		return current, err
	}

	if err := r.db.WithContext(ctx).Delete(new(M), "id = ?", id).Error; err != nil {
		return current, fmt.Errorf("failed to delete row %d: %w", id, err)
	}

	return current, nil
}

const uniqueViolation = "23505"

// conflict marks unique constraint violations as model.ErrConflict.
func conflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", model.ErrConflict, pgErr.ConstraintName)
	}
	return err
}
