// Fridgechef - Pantry Tracking and Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fridgechef

package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/tomtom215/fridgechef/internal/auth"
	"github.com/tomtom215/fridgechef/internal/logging"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

const recipesPageTemplate = "recipes.html.tmpl"

// recipesPage is the data for the recommendations page.
type recipesPage struct {
	Recommendations []RecommendationView
}

func parsePageTemplates() (*template.Template, error) {
	tmpl, err := template.New("pages").Funcs(template.FuncMap{
		"join": strings.Join,
		"stars": func(n int) []struct{} {
			return make([]struct{}, max(n, 0))
		},
	}).ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return tmpl, nil
}

// RecipesPage renders the caller's top recommendations as HTML.
func (h *Handler) RecipesPage(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		NewResponseWriter(w, r).Unauthorized()
		return
	}

	views, err := h.recommend(r.Context(), userID, h.topK)
	if err != nil {
		h.writePageError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, recipesPageTemplate, recipesPage{Recommendations: views}); err != nil {
		h.writePageError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write page")
	}
}

func (h *Handler) writePageError(w http.ResponseWriter, r *http.Request, err error) {
	logging.CtxErr(r.Context(), err).Msg("Failed to render recipes page")
	http.Error(w, MessageServerError, http.StatusInternalServerError)
}
