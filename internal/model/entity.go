package model

// Entity is a row addressed by an integer primary key.
type Entity interface {
	PrimaryKey() int64
}

// Patch is an input shape that carries only explicitly-set fields.
// Apply copies them onto m and returns the column names it touched.
type Patch[M any] interface {
	Apply(m *M) []string
}

// Listing bounds. With both in place skip*limit fits in an int64.
const (
	MaxPageSize  = 1000
	MaxPageIndex = 1 << 31
)

// Page is one page of a listing. Next and Prev are page indices, nil at the edges.
type Page[M any] struct {
	Data  []M   `json:"data"`
	Count int64 `json:"count"`
	Next  *int  `json:"next"`
	Prev  *int  `json:"prev"`
}

// NewPage builds a page for the given page index. Another page exists
// while (skip+1)*limit is below count.
func NewPage[M any](data []M, count int64, skip, limit int) Page[M] {
	if data == nil {
		data = []M{}
	}
	p := Page[M]{Data: data, Count: count}
	if (int64(skip)+1)*int64(limit) < count {
		p.Next = Ptr(skip + 1)
	}
	if skip > 0 {
		p.Prev = Ptr(skip - 1)
	}
	return p
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
