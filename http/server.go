package http

import (
	"log/slog"
	"net/http"
	"os"
)

// DefaultPort is used when the PORT environment variable is unset.
const DefaultPort = "5000"

// FileHandler serves the content of a single file at GET /.
// The file is read on every request so edits show up without a restart.
type FileHandler struct {
	path   string
	logger *slog.Logger
}

// NewFileHandler creates a handler serving the file at path.
// If logger is nil, slog.Default() is used.
func NewFileHandler(path string, logger *slog.Logger) *FileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileHandler{path: path, logger: logger}
}

// ServeHTTP implements http.Handler.
func (h *FileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	content, err := os.ReadFile(h.path)
	if err != nil {
		h.logger.Error("read file", "path", h.path, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write(content)
	}
}

// Port returns the value of the PORT environment variable, or DefaultPort.
func Port(getenv func(string) string) string {
	if port := getenv("PORT"); port != "" {
		return port
	}
	return DefaultPort
}
