package web

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/assets"
)

type APIV1Config struct {
	Deps APIV1Deps
}

// RegisterAPIV1 registers the public API routes under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, cfg APIV1Config) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(cfg.Deps)))
}

// RegisterUI serves either embedded UI assets or a directory.
func RegisterUI(mux *http.ServeMux, staticDir string) {
	mux.Handle("/", StaticUIHandler(staticDir))
}

// NewDefaultMux builds the standard mux used by both the device and simulator:
// - /api/v1/* for the API
// - / for the web UI
func NewDefaultMux(staticDir string, cfg APIV1Config) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, cfg)
	RegisterUI(mux, staticDir)
	return mux
}

// StaticUIHandler serves dir, or the embedded UI when dir is empty. A dir
// that does not exist serves 404s.
func StaticUIHandler(dir string) http.Handler {
	var fileServer http.Handler
	switch {
	case dir == "":
		fileServer = http.FileServer(http.FS(assets.WebUI))
	default:
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			return http.NotFoundHandler()
		}
		fileServer = http.FileServer(http.Dir(dir))
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Clean path to avoid oddities.
		r.URL.Path = filepath.ToSlash(filepath.Clean("/" + r.URL.Path))
		fileServer.ServeHTTP(w, r)
	})
}
