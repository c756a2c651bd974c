package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/model"
	"github.com/flarewebs/flarewebs-server/internal/storage"
)

// DefaultLocation is the folder uploads go to when none is given.
const DefaultLocation = "media"

type Store struct {
	repo      model.StoreRepository
	objects   model.ObjectStorage
	scheduler model.Scheduler
	logger    *logger.Logger
}

func NewStore(
	repo model.StoreRepository,
	objects model.ObjectStorage,
	scheduler model.Scheduler,
	logger *logger.Logger,
) *Store {
	return &Store{
		repo:      repo,
		objects:   objects,
		scheduler: scheduler,
		logger:    logger,
	}
}

// Upload stores the file under loc and schedules its thumbnail. No row is created.
func (s *Store) Upload(ctx context.Context, file model.Upload, loc string) (model.StoreLinks, error) {
	links, err := s.upload(ctx, file, loc)
	if err != nil {
		return model.StoreLinks{}, err
	}

	if links.Thumb != nil {
		s.deferThumbnail(ctx, links.Link, *links.Thumb, file.Content, nil)
	}

	return links, nil
}

// Create uploads the file and inserts a row pointing at it.
func (s *Store) Create(ctx context.Context, file model.Upload, loc string) (model.Store, error) {
	links, err := s.upload(ctx, file, loc)
	if err != nil {
		return model.Store{}, err
	}

	row, err := s.repo.Create(ctx, model.StorePatch{Link: &links.Link, Thumb: links.Thumb})
	if err != nil {
		s.deferDelete(ctx, links.Link)
		return model.Store{}, fmt.Errorf("failed to create store: %w", err)
	}

	if links.Thumb != nil {
		s.deferThumbnail(ctx, links.Link, *links.Thumb, file.Content, s.correctThumb(row.ID))
	}

	s.logger.Info("Store service: store created",
		"store_id", row.ID,
		"link", row.Link)

	return s.resolve(ctx, row)
}

func (s *Store) List(ctx context.Context, skip, limit int) (model.Page[model.Store], error) {
	skip, limit = pageBounds(skip, limit)

	page, err := s.repo.ReadList(ctx, skip, limit)
	if err != nil {
		return model.Page[model.Store]{}, fmt.Errorf("failed to list store: %w", err)
	}

	for i, row := range page.Data {
		if page.Data[i], err = s.resolve(ctx, row); err != nil {
			return model.Page[model.Store]{}, err
		}
	}

	return page, nil
}

func (s *Store) Get(ctx context.Context, id int64) (model.Store, error) {
	row, err := s.read(ctx, id)
	if err != nil {
		return model.Store{}, err
	}
	return s.resolve(ctx, row)
}

// Update uploads the new file, repoints the row and schedules removal of
// the objects it pointed at before.
func (s *Store) Update(ctx context.Context, id int64, file model.Upload, loc string) (model.Store, error) {
	if _, err := s.read(ctx, id); err != nil {
		return model.Store{}, err
	}

	links, err := s.upload(ctx, file, loc)
	if err != nil {
		return model.Store{}, err
	}

	patch := model.StorePatch{Link: &links.Link, Thumb: links.Thumb, ClearThumb: links.Thumb == nil}
	updated, old, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, model.ErrNotFound) {
		s.deferDelete(ctx, links.Link)
		return model.Store{}, model.NewErrRecordNotFound()
	}
	if err != nil {
		s.deferDelete(ctx, links.Link)
		return model.Store{}, fmt.Errorf("failed to update store %d: %w", id, err)
	}

	if links.Thumb != nil {
		s.deferThumbnail(ctx, links.Link, *links.Thumb, file.Content, s.correctThumb(id))
	}
	s.deferDelete(ctx, old.Link)
	if old.Thumb != nil {
		s.deferDelete(ctx, *old.Thumb)
	}

	s.logger.Info("Store service: store updated",
		"store_id", id,
		"link", updated.Link,
		"old_link", old.Link)

	return s.resolve(ctx, updated)
}

// Destroy deletes the row and schedules removal of its objects.
func (s *Store) Destroy(ctx context.Context, id int64) (model.Store, error) {
	row, err := s.repo.Destroy(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Store{}, model.NewErrRecordNotFound()
	}
	if err != nil {
		return model.Store{}, fmt.Errorf("failed to delete store %d: %w", id, err)
	}

	s.deferDelete(ctx, row.Link)
	if row.Thumb != nil {
		s.deferDelete(ctx, *row.Thumb)
	}

	s.logger.Info("Store service: store deleted",
		"store_id", id)

	return row, nil
}

func (s *Store) read(ctx context.Context, id int64) (model.Store, error) {
	row, err := s.repo.ReadOne(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Store{}, model.NewErrRecordNotFound()
	}
	if err != nil {
		return model.Store{}, fmt.Errorf("failed to get store %d: %w", id, err)
	}
	return row, nil
}

// upload saves the file as loc/<file name>. Image uploads also get the path
// their thumbnail is expected at.
func (s *Store) upload(ctx context.Context, file model.Upload, loc string) (model.StoreLinks, error) {
	name := path.Base(strings.ReplaceAll(file.Filename, `\`, "/"))
	if name == "." || name == "/" || name == "" {
		return model.StoreLinks{}, model.NewErrBadRequest("File name is required")
	}

	loc, err := cleanLocation(loc)
	if err != nil {
		return model.StoreLinks{}, err
	}

	link, err := s.objects.Save(ctx, loc+"/"+name, file, false)
	if err != nil {
		s.logger.Error("Store service: failed to save object",
			"location", loc,
			"file_name", name,
			"error", err.Error())
		return model.StoreLinks{}, fmt.Errorf("failed to save object: %w", err)
	}

	links := model.StoreLinks{Link: link}
	if isImage(file) {
		links.Thumb = model.Ptr(storage.ThumbPath(link))
	}

	return links, nil
}

// deferThumbnail renders the thumbnail after the response. When the
// thumbnail lands on another name than expected, onMoved gets the real one.
func (s *Store) deferThumbnail(ctx context.Context, link, expected string, content []byte, onMoved func(ctx context.Context, thumb string) error) {
	s.scheduler.Defer(ctx, "generate_thumbnail", func(ctx context.Context) error {
		thumb, err := s.objects.GenerateThumbnail(ctx, link, content)
		if err != nil {
			return err
		}
		if thumb != expected && onMoved != nil {
			return onMoved(ctx, thumb)
		}
		return nil
	})
}

func (s *Store) correctThumb(id int64) func(ctx context.Context, thumb string) error {
	return func(ctx context.Context, thumb string) error {
		s.logger.Warn("Store service: thumbnail stored under another name",
			"store_id", id,
			"thumb", thumb)
		if _, _, err := s.repo.Update(ctx, id, model.StorePatch{Thumb: &thumb}); err != nil {
			return fmt.Errorf("failed to correct thumbnail of store %d: %w", id, err)
		}
		return nil
	}
}

func (s *Store) deferDelete(ctx context.Context, objectPath string) {
	s.scheduler.Defer(ctx, "delete_object", func(ctx context.Context) error {
		return s.objects.Delete(ctx, objectPath)
	})
}

// resolve swaps object paths for URLs.
func (s *Store) resolve(ctx context.Context, row model.Store) (model.Store, error) {
	link, err := s.objects.URL(ctx, row.Link)
	if err != nil {
		return model.Store{}, fmt.Errorf("failed to resolve link of store %d: %w", row.ID, err)
	}
	row.Link = link

	if row.Thumb != nil && *row.Thumb != "" {
		thumb, err := s.objects.URL(ctx, *row.Thumb)
		if err != nil {
			return model.Store{}, fmt.Errorf("failed to resolve thumb of store %d: %w", row.ID, err)
		}
		row.Thumb = &thumb
	} else {
		row.Thumb = nil
	}

	return row, nil
}

func cleanLocation(loc string) (string, error) {
	loc = strings.Trim(loc, "/")
	if loc == "" {
		return DefaultLocation, nil
	}
	for _, part := range strings.Split(loc, "/") {
		if part == "" || part == "." || part == ".." {
			return "", model.NewErrValidation(nil, []string{"query loc : invalid location"})
		}
	}
	return loc, nil
}

func isImage(file model.Upload) bool {
	ct := file.ContentType
	if ct == "" || ct == "application/octet-stream" {
		ct = mime.TypeByExtension(path.Ext(file.Filename))
	}
	return strings.HasPrefix(ct, "image/")
}
