// Package web serves the task page over HTTP and turns form posts into
// controller flows.
package web

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tasksync/internal/controller"
	"tasksync/internal/logging"
	"tasksync/internal/prompt"
	"tasksync/internal/service"
)

// Server is the web host.
type Server struct {
	ctl     *controller.Controller
	logger  *log.Logger
	index   *template.Template
	confirm *template.Template

	mu    sync.Mutex
	flash []string
}

// NewServer creates a web host driving ctl.
func NewServer(ctl *controller.Controller, logger *log.Logger) (*Server, error) {
	if ctl == nil {
		return nil, errors.New("web: missing controller")
	}
	if logger == nil {
		logger = logging.Discard()
	}

	index, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return nil, err
	}
	confirm, err := template.New("confirm").Parse(confirmHTML)
	if err != nil {
		return nil, err
	}

	return &Server{
		ctl:     ctl,
		logger:  logger,
		index:   index,
		confirm: confirm,
	}, nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(withSecurityHeaders)

	r.Get("/", s.handleIndex)
	r.Get("/static/app.js", s.handleScript)
	r.Get("/static/app.css", s.handleCSS)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/tasks", s.handleAdd)
	r.Post("/tasks/{id}/toggle", s.handleToggle)
	r.Get("/tasks/{id}/delete", s.handleConfirmDelete)
	r.Post("/tasks/{id}/delete", s.handleDelete)
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

type indexModel struct {
	Page  template.HTML
	Flash []string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// A failed load keeps the last rendered page; the controller logs it.
	_ = s.ctl.Load(r.Context())

	var frag bytes.Buffer
	if err := s.ctl.Document().Snapshot().WriteHTML(&frag); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	// The fragment is built by the page writer, which escapes every value.
	_ = s.index.Execute(w, indexModel{
		Page:  template.HTML(frag.String()),
		Flash: s.takeFlash(),
	})
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	p := prompt.No()
	_ = s.ctl.WithPrompter(p).Submit(r.Context(), r.PostFormValue("title"))
	s.addFlash(p.Alerts()...)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	completed, err := strconv.ParseBool(r.PostFormValue("completed"))
	if err != nil {
		http.Error(w, "completed must be true or false", http.StatusBadRequest)
		return
	}

	id := taskID(r)
	if row, ok := s.ctl.Document().Row(id); ok {
		_ = row.Toggle(r.Context(), completed)
	} else {
		_ = s.ctl.Toggle(r.Context(), service.TaskID(id), completed)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type confirmModel struct {
	Message string
	Action  string
}

func (s *Server) handleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = s.confirm.Execute(w, confirmModel{
		Message: controller.MsgConfirmDelete,
		Action:  "/tasks/" + url.PathEscape(taskID(r)) + "/delete",
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	var p prompt.Prompter = prompt.No()
	if r.PostFormValue("confirm") == "yes" {
		p = prompt.Yes()
	}
	_ = s.ctl.WithPrompter(p).Delete(r.Context(), service.TaskID(taskID(r)))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(appJS))
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(appCSS))
}

func (s *Server) addFlash(messages ...string) {
	if len(messages) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = append(s.flash, messages...)
}

func (s *Server) takeFlash() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	flash := s.flash
	s.flash = nil
	return flash
}

// taskID returns the unescaped {id} path parameter.
func taskID(r *http.Request) string {
	raw := chi.URLParam(r, "id")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(started))
	})
}

func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; base-uri 'none'; frame-ancestors 'none'; form-action 'self'")
		next.ServeHTTP(w, r)
	})
}
