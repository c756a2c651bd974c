package handler

import (
	"net/http"

	"github.com/flarewebs/flarewebs-server/internal/logger"
)

// Store handles the /store endpoints.
type Store struct {
	storeService StoreService
	logger       *logger.Logger
}

// NewStore creates a new Store handler.
func NewStore(storeService StoreService, logger *logger.Logger) *Store {
	return &Store{storeService: storeService, logger: logger}
}

// UploadImage saves a file without recording it.
func (h *Store) UploadImage(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	loc := p.queryString("loc", "")
	file := p.upload(w)
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	links, err := h.storeService.Upload(r.Context(), file, loc)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, links)
}

func (h *Store) List(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	skip, limit := p.pagination()
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	page, err := h.storeService.List(r.Context(), skip, limit)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *Store) Create(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	loc := p.queryString("loc", "")
	file := p.upload(w)
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	row, err := h.storeService.Create(r.Context(), file, loc)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	h.logger.Info("Store handler: object stored",
		"id", row.ID,
		"link", row.Link)

	writeJSON(w, http.StatusOK, row)
}

func (h *Store) Get(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	id := p.pathID("id")
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	row, err := h.storeService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, row)
}

// Update replaces the object behind a row.
func (h *Store) Update(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	id := p.pathID("id")
	loc := p.queryString("loc", "")
	file := p.upload(w)
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	row, err := h.storeService.Update(r.Context(), id, file, loc)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, row)
}

func (h *Store) Destroy(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	id := p.pathID("id")
	if err := p.err(); err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	row, err := h.storeService.Destroy(r.Context(), id)
	if err != nil {
		WriteError(w, r, err, h.logger)
		return
	}

	h.logger.Info("Store handler: object removed",
		"id", row.ID)

	writeJSON(w, http.StatusOK, row)
}
