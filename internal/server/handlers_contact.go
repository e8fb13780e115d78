package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ContactRequest is the request body for POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// ContactResponse is the response body for POST /api/contact.
type ContactResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// handleContact validates and stores a contact form submission.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Contact form is not available")
		return
	}

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			s.errorResponse(w, http.StatusBadRequest,
				"Invalid field: "+fieldErrs[0].Field())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request")
		return
	}

	id, err := s.db.SaveContactMessage(r.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		log.Printf("failed to save contact message: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save message")
		return
	}

	s.jsonResponse(w, http.StatusCreated, ContactResponse{ID: id.String(), Status: "received"})
}

// handleListMessages returns recent contact messages. Reached only through
// the auth middleware.
func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Message storage is not available")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be an integer between 1 and 500")
			return
		}
		limit = parsed
	}

	messages, err := s.db.ListContactMessages(r.Context(), limit)
	if err != nil {
		log.Printf("failed to list contact messages: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load messages")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"messages": messages})
}
