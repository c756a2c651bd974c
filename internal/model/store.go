package model

import (
	"context"
	"time"
)

// Store points at an uploaded object and its optional thumbnail.
type Store struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Link      string    `json:"link"`
	Thumb     *string   `json:"thumb"`
	CreatedAt time.Time `json:"created_at"`
}

func (Store) TableName() string { return "store" }

func (s Store) PrimaryKey() int64 { return s.ID }

// StorePatch is the create and update shape for store rows.
// ClearThumb writes NULL to thumb when Thumb is nil.
type StorePatch struct {
	Link       *string
	Thumb      *string
	ClearThumb bool
}

func (p StorePatch) Apply(s *Store) []string {
	var cols []string
	if p.Link != nil {
		s.Link = *p.Link
		cols = append(cols, "link")
	}
	switch {
	case p.Thumb != nil:
		s.Thumb = p.Thumb
		cols = append(cols, "thumb")
	case p.ClearThumb:
		s.Thumb = nil
		cols = append(cols, "thumb")
	}
	return cols
}

// StoreRepository defines persistence operations for store rows.
type StoreRepository interface {
	ReadOne(ctx context.Context, id int64) (Store, error)
	ReadList(ctx context.Context, skip, limit int) (Page[Store], error)
	Create(ctx context.Context, patch StorePatch) (Store, error)
	Update(ctx context.Context, id int64, patch StorePatch) (Store, Store, error)
	Destroy(ctx context.Context, id int64) (Store, error)
}

// StoreLinks are the object paths produced by an upload.
type StoreLinks struct {
	Link  string  `json:"link"`
	Thumb *string `json:"thumb"`
}
