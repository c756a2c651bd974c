package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/flarewebs/flarewebs-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	*CRUD[model.User, model.UserPatch, model.UserPatch]
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		CRUD: NewCRUD[model.User, model.UserPatch, model.UserPatch](db, clause.OrderByColumn{
			Column: clause.Column{Name: string(model.OrderByDateJoined)},
		}),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ReadList filters and orders users. The count honours the filter.
func (r *UserRepository) ReadList(ctx context.Context, skip, limit int, filter model.UserFilter) (model.Page[model.User], error) {
	orderBy := model.OrderByDateJoined
	if filter.OrderBy == model.OrderByEmail {
		orderBy = model.OrderByEmail
	}

	order := clause.OrderByColumn{
		Column: clause.Column{Name: string(orderBy)},
		Desc:   filter.Desc,
	}

	return r.list(ctx, userFilterScope(filter), order, skip, limit)
}

func userFilterScope(filter model.UserFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Search != "" {
			pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
			db = db.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern, pattern)
		}
		if filter.IsVerified != nil {
			db = db.Where("is_verified = ?", *filter.IsVerified)
		}
		if filter.IsActive != nil {
			db = db.Where("is_active = ?", *filter.IsActive)
		}
		return db
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}
