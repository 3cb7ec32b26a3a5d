package docs

import (
	"embed"
	httptemplate "html/template"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const (
	openAPIRelPath = "static/openapi.json"
	indexFile      = "template/index.tpl"
)

//go:embed static
var Static embed.FS

//go:embed template
var template embed.FS

// RegisterOpenAPIService serves the OpenAPI document of the rocketfuel read
// API and a console page at / and /api/.
func RegisterOpenAPIService(appName string, rtr *mux.Router) {
	staticHandler := http.FileServer(http.FS(Static))

	rtr.PathPrefix("/static/").Handler(staticHandler)
	rtr.PathPrefix("/api/static/").Handler(http.StripPrefix("/api", staticHandler))

	rtr.HandleFunc("/", handler(appName, "/")).Methods(http.MethodGet)
	rtr.HandleFunc("/api/", handler(appName, "/api/")).Methods(http.MethodGet)
	rtr.HandleFunc("/api", handler(appName, "/api/")).Methods(http.MethodGet)
}

// handler returns an http handler that serves the OpenAPI console for a given base path.
func handler(title, basePath string) http.HandlerFunc {
	openAPIURL := normalizeBasePath(basePath) + openAPIRelPath
	t := httptemplate.Must(httptemplate.ParseFS(template, indexFile))

	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = t.Execute(w, struct {
			Title   string
			OpenAPI string
		}{
			Title:   title,
			OpenAPI: openAPIURL,
		})
	}
}

func normalizeBasePath(base string) string {
	if base == "" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}
