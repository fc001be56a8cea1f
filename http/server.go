package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/papersum"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxUploadSize is the largest accepted upload in bytes.
const DefaultMaxUploadSize = 32 << 20

// ShutdownTimeout is the time given to in-flight requests on Close.
const ShutdownTimeout = 5 * time.Second

// Server serves the summarize, classify and search operations over HTTP.
// Set the service fields before calling Open or ServeHTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Bind address for the server's listener.
	Addr string

	// Largest accepted upload in bytes.
	MaxUploadSize int64

	Summarizer papersum.Summarizer
	Classifier papersum.Classifier
	Searcher   papersum.PaperSearcher
	Uploads    papersum.UploadStore
	Logger     *slog.Logger
}

// NewServer returns a new Server with its routes registered.
func NewServer() *Server {
	s := &Server{
		server:        &http.Server{ReadHeaderTimeout: 10 * time.Second},
		router:        chi.NewRouter(),
		MaxUploadSize: DefaultMaxUploadSize,
		Logger:        slog.Default(),
	}
	s.server.Handler = s

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/search", s.handleSearch)
	s.router.Post("/upload", s.handleUpload)
	s.router.Post("/classify", s.handleClassify)

	return s
}

// ServeHTTP routes the request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open starts listening on Addr and serves requests in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("http server", "err", err)
		}
	}()
	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.Searcher == nil {
		s.writeError(w, r, papersum.Errorf(papersum.ENOTIMPLEMENTED, "Search is not configured."))
		return
	}
	papers, err := s.Searcher.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, papers)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.MaxUploadSize)
	if err := r.ParseMultipartForm(s.MaxUploadSize); err != nil {
		s.writeError(w, r, papersum.Errorf(papersum.EINVALID, "Invalid upload: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, papersum.Errorf(papersum.EINVALID, "File required."))
		return
	}
	defer file.Close()

	path, err := s.Uploads.Save(r.Context(), header.Filename, file)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	summary, err := s.Summarizer.Summarize(r.Context(), path)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

// classifyRequest is the body of a classify request.
type classifyRequest struct {
	Text   string   `json:"text"`
	Topics []string `json:"topics"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, papersum.Errorf(papersum.EINVALID, "Invalid JSON body."))
		return
	}
	s.writeJSON(w, http.StatusOK, s.Classifier.Classify(req.Text, req.Topics))
}

// writeError writes err as an error record with the status matching its code.
// Internal errors are logged and reported without details.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := papersum.ErrorCode(err)
	if code == papersum.EINTERNAL {
		s.Logger.Error("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"err", err,
		)
	}
	s.writeJSON(w, ErrorStatusCode(code), papersum.ErrorRecord(err))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode response", "err", err)
	}
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	papersum.ECONFLICT:       http.StatusConflict,
	papersum.EDECODE:         http.StatusUnprocessableEntity,
	papersum.EINVALID:        http.StatusBadRequest,
	papersum.ENOTFOUND:       http.StatusNotFound,
	papersum.ENOTIMPLEMENTED: http.StatusNotImplemented,
	papersum.EINTERNAL:       http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}
