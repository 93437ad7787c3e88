package analysis

import (
	"net/http"
	"os"
)

// ReadmeHandler serves the bundled usage document for the analysis API.
type ReadmeHandler struct {
	// Path is the filesystem location of the markdown document.
	Path string
}

// ServeHTTP returns the usage document.
// @Summary      API usage document
// @Description  Returns the bundled markdown document describing the analysis endpoints.
// @Tags         docs
// @Produce      plain
// @Success      200 {string} string "Document content"
// @Failure      404 {string} string "Resource not found."
// @Router       /nlp-readme [get]
func (h ReadmeHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	content, err := os.ReadFile(h.Path)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Resource not found."))
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
