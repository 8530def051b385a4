package pagination

// Request is a zero-based page request
type Request struct {
	Page int
	Size int
}

// Valid reports whether the request can be executed
func (r Request) Valid() bool {
	return r.Page >= 0 && r.Size > 0
}

func (r Request) Offset() int {
	return r.Page * r.Size
}

func (r Request) Limit() int {
	return r.Size
}

// Page is one slice of an ordered result set plus the numbers needed for navigation
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	HasPrev       bool  `json:"hasPrev"`
	HasNext       bool  `json:"hasNext"`
}

// NewPage builds a page. A page beyond the last one keeps an empty content and HasNext=false.
func NewPage[T any](content []T, req Request, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if req.Size > 0 {
		totalPages = int(total) / req.Size
		if int(total)%req.Size > 0 {
			totalPages++
		}
	}

	return &Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		HasPrev:       req.Page > 0,
		HasNext:       req.Page+1 < totalPages,
	}
}

// Map converts the content of a page while keeping its navigation data
func Map[T, R any](p *Page[T], fn func(T) R) *Page[R] {
	content := make([]R, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, fn(item))
	}

	return &Page[R]{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		HasPrev:       p.HasPrev,
		HasNext:       p.HasNext,
	}
}
