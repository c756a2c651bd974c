package postgres

import (
	"gorm.io/gorm/clause"

	"github.com/flarewebs/flarewebs-server/internal/model"
)

var _ model.StoreRepository = (*StoreRepository)(nil)

// StoreRepository lists newest uploads first.
type StoreRepository struct {
	*CRUD[model.Store, model.StorePatch, model.StorePatch]
}

func NewStoreRepository(db *Connection) *StoreRepository {
	return &StoreRepository{
		CRUD: NewCRUD[model.Store, model.StorePatch, model.StorePatch](db, clause.OrderByColumn{
			Column: clause.Column{Name: "created_at"},
			Desc:   true,
		}),
	}
}
