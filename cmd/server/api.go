package main

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/Simplici0/savings/internal/form"
	"github.com/Simplici0/savings/internal/savings"
)

type errorResponse struct {
	Error string `json:"error"`
}

type packageResponse struct {
	ID       savings.Package   `json:"id"`
	Label    string            `json:"label"`
	Services []savings.Service `json:"services"`
}

func (s *server) handleAPISavings(w http.ResponseWriter, r *http.Request) {
	var req form.Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.renderError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Package == "" {
		req.Package = savings.Fulfillment
	}
	if err := req.Validate(); err != nil {
		s.renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	render.JSON(w, r, s.compute(req))
}

func (s *server) handleAPIPackages(w http.ResponseWriter, r *http.Request) {
	packages := make([]packageResponse, 0, len(savings.Packages()))
	for _, p := range savings.Packages() {
		packages = append(packages, packageResponse{ID: p, Label: p.Label(), Services: p.Services()})
	}
	render.JSON(w, r, packages)
}

func (s *server) handleAPIAssumptions(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.assumptions)
}

func (s *server) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: message})
}
