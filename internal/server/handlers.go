package server

import (
	"encoding/json"
	"errors"
	"html/template"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ziadkadry99/codeview/internal/explorer"
	"github.com/ziadkadry99/codeview/internal/metrics"
	"github.com/ziadkadry99/codeview/internal/site"
	"github.com/ziadkadry99/codeview/internal/tree"
)

var page = template.Must(template.New("page").Parse(pageTemplate))

type pageData struct {
	Title       string
	Theme       string
	Rows        []explorer.Row
	Content     explorer.Content
	Body        template.HTML
	Placeholder string
	PanelWidth  int
	PanelMin    int
	PanelMax    int
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	data := pageData{
		Title:       s.cfg.Title,
		Theme:       string(s.cfg.Theme),
		Rows:        s.state.Rows(),
		Content:     s.state.Content(),
		Placeholder: explorer.Placeholder,
		PanelWidth:  s.state.Panel.Width(),
		PanelMin:    s.state.Panel.Min,
		PanelMax:    s.state.Panel.Max,
	}
	s.mu.Unlock()

	if !data.Content.Empty {
		body, err := s.highlighter.Highlight(data.Content.Text, data.Content.Language)
		if err != nil {
			s.log.Error("highlighting failed", zap.String("path", data.Content.Path), zap.Error(err))
			http.Error(w, "highlighting failed", http.StatusInternalServerError)
			return
		}
		data.Body = template.HTML(body)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, data); err != nil {
		s.log.Error("rendering page", zap.Error(err))
	}
}

func (s *Server) handleStyle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(site.Stylesheet(s.cfg.Theme) + liveCSS))
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	path, ok := formPath(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	open, err := s.state.Toggle(path)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.RecordToggle(open)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	path, ok := formPath(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	_, err := s.state.Select(path)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.RecordSelection()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleCollapse(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.state.CollapseAll()
	s.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := tree.Encode(w, s.state.Forest()); err != nil {
		s.log.Error("encoding tree", zap.Error(err))
	}
}

type stateResponse struct {
	ActivePath string   `json:"activePath"`
	Expanded   []string `json:"expanded"`
	PanelWidth int      `json:"panelWidth"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := stateResponse{
		ActivePath: s.state.ActivePath(),
		Expanded:   s.state.Expanded(),
		PanelWidth: s.state.Panel.Width(),
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

type panelRequest struct {
	Width *int `json:"width"`
}

// handlePanel takes the width a browser drag ended at.
func (s *Server) handlePanel(w http.ResponseWriter, r *http.Request) {
	width, err := panelWidth(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.mu.Lock()
	got := s.state.Panel.Resize(width)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]int{"width": got})
}

func panelWidth(r *http.Request) (int, error) {
	if ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); ct == "application/json" {
		var req panelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return 0, errors.New("invalid request body")
		}
		if req.Width == nil {
			return 0, errors.New("width is required")
		}
		return *req.Width, nil
	}
	v := r.PostFormValue("width")
	if v == "" {
		return 0, errors.New("width is required")
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("width must be an integer")
	}
	return n, nil
}

func formPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	path := r.PostFormValue("path")
	if path == "" {
		http.Error(w, "path is required", http.StatusBadRequest)
		return "", false
	}
	return path, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, explorer.ErrUnknownPath):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, explorer.ErrNotDirectory), errors.Is(err, explorer.ErrNotFile):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
