package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/simonkurtz-MSFT/drawio-go/pkg/errors"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/model"
	"github.com/simonkurtz-MSFT/drawio-go/pkg/mxfile"
)

// maxBodySize caps request bodies at 10 MiB; diagrams beyond that are
// outside this API's scope.
const maxBodySize = 10 << 20

// cellRequest is the body for POST /diagrams/{id}/cells. Nil fields
// take the model defaults.
type cellRequest struct {
	Text   *string  `json:"text"`
	Style  *string  `json:"style"`
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

// edgeRequest is the body for POST /diagrams/{id}/edges.
type edgeRequest struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Text   *string `json:"text"`
	Style  *string `json:"style"`
}

// cellResponse is the wire form of a created cell.
type cellResponse struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Label  string `json:"label"`
	Style  string `json:"style"`
	Parent string `json:"parent"`
}

func toCellResponse(c *model.Cell) cellResponse {
	return cellResponse{
		ID:     c.ID,
		Kind:   c.Kind.String(),
		Label:  c.Label,
		Style:  c.Style,
		Parent: c.Parent,
	}
}

// deleteResponse is the wire form of a cascade deletion result.
type deleteResponse struct {
	Deleted         bool     `json:"deleted"`
	CascadedEdgeIDs []string `json:"cascaded_edge_ids,omitempty"`
}

func (s *Server) handleListDiagrams(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"diagrams": names})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var stats model.Stats
	err := s.withDiagram(r.Context(), id, func(m *model.Model) error {
		stats = m.GetStats()
		return nil
	})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	opts := mxfile.ExportOptions{Compress: r.URL.Query().Get("compress") == "1"}

	var xml string
	err := s.withDiagram(r.Context(), id, func(m *model.Model) error {
		var err error
		xml, err = mxfile.Export(m, opts)
		return err
	})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, xml)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, s.logger, errors.Wrap(errors.ErrCodeInternal, err, "read request body"))
		return
	}

	var result *mxfile.ImportResult
	err = s.withDiagram(r.Context(), id, func(m *model.Model) error {
		res, err := mxfile.Import(m, string(body))
		if err != nil {
			return err
		}
		result = res
		return s.persist(r.Context(), id, m)
	})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.withDiagram(r.Context(), id, func(m *model.Model) error {
		return s.persist(r.Context(), id, m)
	})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"saved": id})
}

func (s *Server) handleAddCell(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req cellRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}

	var created *model.Cell
	err := s.withDiagram(r.Context(), id, func(m *model.Model) error {
		created = m.AddRectangle(model.Rectangle{
			Text:   req.Text,
			Style:  req.Style,
			X:      req.X,
			Y:      req.Y,
			Width:  req.Width,
			Height: req.Height,
		})
		return nil
	})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCellResponse(created))
}

func (s *Server) handleAddEdge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req edgeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}

	var created *model.Cell
	err := s.withDiagram(r.Context(), id, func(m *model.Model) error {
		cell, opErr := m.AddEdge(req.Source, req.Target, model.EdgeOptions{Text: req.Text, Style: req.Style})
		if opErr != nil {
			return opErr
		}
		created = cell
		return nil
	})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCellResponse(created))
}

func (s *Server) handleDeleteCell(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cellID := chi.URLParam(r, "cellID")

	var result model.DeleteResult
	err := s.withDiagram(r.Context(), id, func(m *model.Model) error {
		result = m.DeleteCell(cellID)
		return nil
	})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{
		Deleted:         result.Deleted,
		CascadedEdgeIDs: result.CascadedEdgeIDs,
	})
}

// decodeJSON parses a JSON request body, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, err, "invalid request body")
	}
	return nil
}
