package fs

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/papersum"
)

// Ensure Router implements papersum.PageSource at compile time.
var _ papersum.PageSource = (*Router)(nil)

// Router dispatches to a page source by file extension.
type Router struct {
	sources map[string]papersum.PageSource
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{sources: make(map[string]papersum.PageSource)}
}

// Register sets the source used for files with the given extension
// (e.g. ".pdf"). Extensions are matched case-insensitively.
// Register must not be called concurrently with Pages.
func (r *Router) Register(ext string, source papersum.PageSource) {
	r.sources[strings.ToLower(ext)] = source
}

// Supports reports whether files named like name can be read.
func (r *Router) Supports(name string) bool {
	_, ok := r.sources[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Extensions returns the registered extensions in sorted order.
func (r *Router) Extensions() []string {
	exts := make([]string, 0, len(r.sources))
	for ext := range r.sources {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Pages delegates to the source registered for the extension of path.
// Returns EINVALID if no source handles the extension.
func (r *Router) Pages(ctx context.Context, path string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	source, ok := r.sources[ext]
	if !ok {
		return nil, papersum.Errorf(papersum.EINVALID, "unsupported file type %q: expected one of %s",
			ext, strings.Join(r.Extensions(), ", "))
	}
	return source.Pages(ctx, path)
}
