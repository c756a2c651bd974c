package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/flarewebs/flarewebs-server/internal/model"
)

const (
	defaultLimit  = 100
	maxBodySize   = 1 << 20
	maxUploadSize = 32 << 20

	msgRequired   = "field required"
	msgNotInteger = "value is not a valid integer"
	msgNotBoolean = "value could not be parsed to a boolean"
	msgTooLarge   = "ensure this value is less than or equal to %d"
)

// params collects request parameters and the validation failures met while
// reading them, so a request reports all its problems at once.
type params struct {
	r    *http.Request
	body map[string]string
	path []string
}

func newParams(r *http.Request) *params {
	return &params{r: r, body: map[string]string{}}
}

func (p *params) fail(in, name, msg string) {
	p.path = append(p.path, fmt.Sprintf("%s %s : %s", in, name, msg))
}

func (p *params) pathID(name string) int64 {
	id, err := strconv.ParseInt(chi.URLParam(p.r, name), 10, 64)
	if err != nil {
		p.fail("path", name, msgNotInteger)
	}
	return id
}

func (p *params) queryInt(name string, def int) int {
	raw := p.r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail("query", name, msgNotInteger)
		return def
	}
	return v
}

func (p *params) requiredInt64(name string) int64 {
	raw := p.r.URL.Query().Get(name)
	if raw == "" {
		p.fail("query", name, msgRequired)
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.fail("query", name, msgNotInteger)
	}
	return v
}

func (p *params) requiredString(name string) string {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		p.fail("query", name, msgRequired)
	}
	return v
}

func (p *params) queryString(name, def string) string {
	if v := p.r.URL.Query().Get(name); v != "" {
		return v
	}
	return def
}

func (p *params) queryBool(name string) *bool {
	raw := p.r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail("query", name, msgNotBoolean)
		return nil
	}
	return &v
}

func (p *params) pagination() (int, int) {
	skip, limit := p.queryInt("skip", 0), p.queryInt("limit", defaultLimit)
	if skip > model.MaxPageIndex {
		p.fail("query", "skip", fmt.Sprintf(msgTooLarge, model.MaxPageIndex))
		skip = 0
	}
	if limit > model.MaxPageSize {
		p.fail("query", "limit", fmt.Sprintf(msgTooLarge, model.MaxPageSize))
		limit = defaultLimit
	}
	return skip, limit
}

// decode reads a JSON body into v. Validation messages of v, if any, are
// merged into the body failures.
func (p *params) decode(w http.ResponseWriter, v any) {
	dec := json.NewDecoder(http.MaxBytesReader(w, p.r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			p.body["__root__"] = msgRequired
			return
		}
		p.body["__root__"] = "invalid JSON body"
		return
	}
	if val, ok := v.(interface{ Validate() map[string]string }); ok {
		p.merge(val.Validate())
	}
}

func (p *params) merge(fields map[string]string) {
	for k, msg := range fields {
		p.body[k] = msg
	}
}

// upload reads the multipart "file" field.
func (p *params) upload(w http.ResponseWriter) model.Upload {
	p.r.Body = http.MaxBytesReader(w, p.r.Body, maxUploadSize)
	if err := p.r.ParseMultipartForm(maxUploadSize); err != nil {
		p.body["file"] = msgRequired
		return model.Upload{}
	}
	f, fh, err := p.r.FormFile("file")
	if err != nil {
		p.body["file"] = msgRequired
		return model.Upload{}
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		p.body["file"] = "could not read file"
		return model.Upload{}
	}

	return model.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}
}

func (p *params) err() error {
	if len(p.body) == 0 && len(p.path) == 0 {
		return nil
	}
	return model.NewErrValidation(p.body, p.path)
}
