package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// spaHandler serves a built front end from dir. Paths that do not name a file
// get index.html so client-side routing works; /api paths never do.
type spaHandler struct {
	dir        string
	fileServer http.Handler
	apiMissing http.HandlerFunc
}

// newSPAHandler returns nil when dir is unset or has no index.html.
func newSPAHandler(dir string, apiMissing http.HandlerFunc) *spaHandler {
	if dir == "" {
		return nil
	}
	if info, err := os.Stat(filepath.Join(dir, "index.html")); err != nil || info.IsDir() {
		return nil
	}
	return &spaHandler{
		dir:        dir,
		fileServer: http.FileServer(http.Dir(dir)),
		apiMissing: apiMissing,
	}
}

func (h *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
		h.apiMissing(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.apiMissing(w, r)
		return
	}

	clean := path.Clean("/" + r.URL.Path)
	if clean != "/" {
		if info, err := os.Stat(filepath.Join(h.dir, filepath.FromSlash(clean))); err == nil && !info.IsDir() {
			h.fileServer.ServeHTTP(w, r)
			return
		}
	}

	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}
