package papersum

import "context"

// Paper is a search hit from a scholarly index.
type Paper struct {
	PaperID string `json:"paperId,omitempty"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}

// PaperSearcher finds papers matching a free-text query.
type PaperSearcher interface {
	// Search returns EINVALID for an empty query.
	Search(ctx context.Context, query string) ([]Paper, error)
}
