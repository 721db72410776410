package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-resumegen/internal/store"
	"github.com/goliatone/go-resumegen/pkg/edit"
	"github.com/goliatone/go-resumegen/pkg/editable"
	"github.com/goliatone/go-resumegen/pkg/preview"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/resume"
	"github.com/goliatone/go-resumegen/pkg/sections/achievements"
	"github.com/goliatone/go-resumegen/pkg/sections/skills"
	"github.com/goliatone/go-resumegen/pkg/variant"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.specJSON)
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.preview.Templates().List())
}

// VariantInfo describes one layout tag.
type VariantInfo struct {
	Tag         string   `json:"tag"`
	Description string   `json:"description,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
}

// VariantList is the /variants/{section} payload.
type VariantList struct {
	Section  string        `json:"section"`
	Default  string        `json:"default"`
	Variants []VariantInfo `json:"variants"`
}

func listVariants[P any](registry *variant.Registry[P]) VariantList {
	out := VariantList{Section: registry.Section(), Default: registry.Default()}
	for _, entry := range registry.Entries() {
		out.Variants = append(out.Variants, VariantInfo{Tag: entry.Tag, Description: entry.Description, Aliases: entry.Aliases})
	}
	return out
}

func (s *Server) handleVariants(w http.ResponseWriter, r *http.Request) {
	switch section := r.PathValue("section"); section {
	case achievements.Section:
		s.jsonResponse(w, http.StatusOK, listVariants(achievements.Registry()))
	case skills.Section:
		s.jsonResponse(w, http.StatusOK, listVariants(skills.Registry()))
	default:
		s.jsonResponse(w, http.StatusNotFound, errorBody{Error: fmt.Sprintf("unknown section %q", section)})
	}
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if list == nil {
		list = []store.Summary{}
	}
	s.jsonResponse(w, http.StatusOK, list)
}

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	format := resume.FormatJSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = resume.FormatYAML
	}
	data, err := resume.Decode(io.LimitReader(r.Body, maxBodyBytes), format)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	record, err := s.store.Save(r.Context(), store.Record{Data: data})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, record)
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	record, err := s.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.errorResponse(w, err)
		return
	}
	s.sessions.forget(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) previewRequest(r *http.Request) (preview.Request, error) {
	q := r.URL.Query()
	req := preview.Request{
		TemplateID:   q.Get("template"),
		ThemeName:    q.Get("theme"),
		ThemeVariant: q.Get("variant"),
		ThemeColor:   q.Get("color"),
	}
	if raw := q.Get("editable"); raw != "" {
		editableMode, err := strconv.ParseBool(raw)
		if err != nil {
			return preview.Request{}, &ErrBadRequest{Message: "editable must be a boolean"}
		}
		req.Editable = editableMode
	}

	id := r.PathValue("id")
	if req.Editable {
		entry, err := s.sessions.get(r.Context(), id)
		if err != nil {
			return preview.Request{}, err
		}
		req.Session = entry.session
		req.Endpoint = "/resumes/" + id
		return req, nil
	}
	record, err := s.store.Get(r.Context(), id)
	if err != nil {
		return preview.Request{}, err
	}
	req.Resume = &record.Data
	return req, nil
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	req, err := s.previewRequest(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	result, err := s.preview.Render(r.Context(), req)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Resume-Template", result.Template.ID)
	_, _ = w.Write(result.HTML)
}

// EditRequest sets one text field.
type EditRequest struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	var body EditRequest
	if err := decodeJSON(r, &body); err != nil {
		s.errorResponse(w, err)
		return
	}
	if strings.TrimSpace(body.Path) == "" {
		s.errorResponse(w, &ErrBadRequest{Message: "path is required"})
		return
	}
	change, err := s.sessions.mutate(r.Context(), r.PathValue("id"), func(session *edit.MemorySession) (edit.Change, error) {
		if err := session.SetValue(body.Path, body.Value); err != nil {
			return edit.Change{}, err
		}
		return edit.Change{Kind: edit.ChangeSet, Path: body.Path, Version: session.Version()}, nil
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, change)
}

// ActionRequest triggers an add or remove affordance. Section names the list
// for top level sections; List takes precedence and addresses nested lists.
type ActionRequest struct {
	Action  string `json:"action"`
	List    string `json:"list,omitempty"`
	Section string `json:"section,omitempty"`
	ID      string `json:"id,omitempty"`
	Index   *int   `json:"index,omitempty"`
}

func (req ActionRequest) parse() (editable.Action, error) {
	attrs := map[string]string{
		"action": req.Action,
		"list":   req.List,
		"itemid": req.ID,
	}
	if attrs["list"] == "" {
		attrs["list"] = req.Section
	}
	if req.Index != nil {
		attrs["index"] = strconv.Itoa(*req.Index)
	}
	action, err := editable.ParseAction(attrs)
	if err != nil {
		return editable.Action{}, &ErrBadRequest{Message: err.Error()}
	}
	if action.List == "" {
		return editable.Action{}, &ErrBadRequest{Message: "list or section is required"}
	}
	return action, nil
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var body ActionRequest
	if err := decodeJSON(r, &body); err != nil {
		s.errorResponse(w, err)
		return
	}
	action, err := body.parse()
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	change, err := s.sessions.mutate(r.Context(), r.PathValue("id"), func(session *edit.MemorySession) (edit.Change, error) {
		return applyAction(session, action)
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, change)
}

func applyAction(session *edit.MemorySession, action editable.Action) (edit.Change, error) {
	switch {
	case action.Kind == editable.ActionAdd:
		id, err := session.AddItem(action.List)
		if err != nil {
			return edit.Change{}, err
		}
		return edit.Change{Kind: edit.ChangeAdd, Path: action.List, ItemID: id, Version: session.Version()}, nil
	case action.ItemID != "":
		if err := session.RemoveItem(action.List, action.ItemID); err != nil {
			return edit.Change{}, err
		}
		return edit.Change{Kind: edit.ChangeRemove, Path: action.List, ItemID: action.ItemID, Version: session.Version()}, nil
	default:
		if err := session.RemoveIndex(action.List, action.Index); err != nil {
			return edit.Change{}, err
		}
		return edit.Change{Kind: edit.ChangeRemove, Path: resume.JoinPath(action.List, action.Index), Version: session.Version()}, nil
	}
}

func (s *Server) handleExport(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer, err := s.formats.Get(format)
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		req, err := s.previewRequest(r)
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		req.Editable = false
		if req.Session != nil {
			data := req.Session.Data()
			req.Resume, req.Session = &data, nil
		}
		result, err := s.preview.Render(r.Context(), req)
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		title := ""
		if req.Resume != nil {
			title = req.Resume.PersonalInfo.FullName
		}
		out, err := renderer.Render(r.Context(), render.Document{
			Title: title,
			HTML:  result.HTML,
		}, render.RenderOptions{Paper: r.URL.Query().Get("paper")})
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		w.Header().Set("Content-Type", renderer.ContentType())
		if format == "pdf" {
			w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
		}
		_, _ = w.Write(out)
	}
}

func decodeJSON(r *http.Request, target any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return &ErrBadRequest{Message: fmt.Sprintf("invalid json: %v", err)}
	}
	return nil
}
