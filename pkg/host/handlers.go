package host

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlenz/regionmap/pkg/errors"
	"github.com/mlenz/regionmap/pkg/observability"
	"github.com/mlenz/regionmap/pkg/region"
	"github.com/mlenz/regionmap/pkg/render/svgmap"
	"github.com/mlenz/regionmap/pkg/session"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	def := s.runner.Def()
	writeJSON(w, http.StatusOK, map[string]any{
		"map":     def.Name,
		"mode":    def.Mode.Name(),
		"regions": len(def.Regions),
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	def := s.runner.Def()
	sess := session.New(def.Name, def.Values, s.ttl)
	if err := s.store.Set(r.Context(), sess); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "store session"))
		return
	}

	observability.Host().OnSessionCreated(r.Context(), def.Name, sess.ID)
	s.logger.Info("session created", "map", def.Name, "session", sess.ID)

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":     sess.ID,
		"map":    sess.Map,
		"values": sess.Values,
	})
}

// handleValue re-expresses the session's value map for the definition's
// mode: a single id (or null) for single, a sorted id list for multiple,
// and the full count map otherwise.
func (s *Server) handleValue(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	mode := s.runner.Def().Mode.Name()
	body := map[string]any{"mode": mode}
	switch mode {
	case "single", "multiple":
		body["selected"] = s.runner.Export(sess.Values)
	default:
		body["values"] = s.runner.Export(sess.Values)
	}
	writeJSON(w, http.StatusOK, body)
}

type clickRequest struct {
	Region string `json:"region"`
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode click request"))
		return
	}
	if req.Region == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "missing region"))
		return
	}
	if _, found := s.runner.Def().Region(req.Region); !found {
		writeError(w, errors.New(errors.ErrCodeRegionNotFound, "unknown region: %s", req.Region))
		return
	}

	values := s.runner.Click(r.Context(), sess.Values, req.Region)
	sess.Values = values
	sess.Touch(s.ttl)
	if err := s.store.Set(r.Context(), sess); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "store session"))
		return
	}

	// In display mode the values never change; the click is still echoed
	// so consumers can treat it as a notification.
	writeJSON(w, http.StatusOK, map[string]any{
		"clicked": req.Region,
		"values":  values,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	hover := r.URL.Query().Get("hover")

	key := s.keyer.RenderKey(s.defHash, sess.Values, hover)
	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		writeSVG(w, data)
		return
	}

	out := s.runner.Pass(r.Context(), sess.Values, hover)

	var buf bytes.Buffer
	svgmap.Render(&buf, s.runner.Def(), out, svgmap.WithTitles())
	if err := s.cache.Set(r.Context(), key, buf.Bytes(), renderTTL); err != nil {
		s.logger.Warn("render cache write failed", "error", err)
	}
	writeSVG(w, buf.Bytes())
}

// session loads the request's session or writes a 404.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "load session"))
		return nil, false
	}
	if sess == nil {
		writeError(w, errors.New(errors.ErrCodeSessionNotFound, "unknown session: %s", id))
		return nil, false
	}
	if sess.Values == nil {
		sess.Values = region.ValueMap{}
	}
	return sess, true
}

func writeSVG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
