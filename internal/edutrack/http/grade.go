package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/opencampus/edutrack/internal/edutrack/service"
	"github.com/opencampus/edutrack/pkg/edusdk"
	"github.com/opencampus/edutrack/pkg/httpx"
	"github.com/opencampus/edutrack/pkg/slogx"
)

type GradeHandler struct {
	GradeService *service.GradeService
}

// ServeHTTP godoc
//
//	@Summary		Record Grade Endpoint
//	@Description	Record a grade against an existing enrolment
//	@Description	The grading faculty member is taken from the bearer token and stored with the record
//	@Tags			Grades
//	@Accept			json
//	@Produce		json
//	@Param			request	body		edusdk.GradeRequest		true	"Enrollment and grade value"
//	@Success		200		{object}	edusdk.MessageResponse	"message"
//	@Failure		400		{object}	edusdk.ErrorResponse	"error"
//	@Failure		401		{object}	edusdk.ErrorResponse	"error"
//	@Failure		403		{object}	edusdk.ErrorResponse	"error"
//	@Failure		500		{object}	edusdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/api/students/grade [post].
func (h *GradeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req edusdk.GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.EnrollmentID == "" || req.Grade == "" {
		httpx.WriteError(w, http.StatusBadRequest, "enrollment_id and grade are required")
		return
	}

	enteredBy := httpx.UserIDFromContext(ctx)
	_, err := h.GradeService.RecordGrade(ctx, enteredBy, req.EnrollmentID, req.Grade)
	if err != nil {
		if errors.Is(err, service.ErrEnrollmentNotFound) {
			httpx.WriteError(w, http.StatusBadRequest, "enrollment not found")
			return
		}
		log.Error("failed to record grade", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to record grade")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, edusdk.MessageResponse{Message: "grade recorded"})
}
