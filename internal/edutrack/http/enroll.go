package http

import (
	"encoding/json"
	"net/http"

	"github.com/opencampus/edutrack/internal/edutrack/service"
	"github.com/opencampus/edutrack/pkg/edusdk"
	"github.com/opencampus/edutrack/pkg/httpx"
	"github.com/opencampus/edutrack/pkg/slogx"
)

type EnrollHandler struct {
	EnrollmentService *service.EnrollmentService
}

// HandleEnroll godoc
//
//	@Summary		Enroll Endpoint
//	@Description	Enrol the authenticated student in a course
//	@Description	The student identity is taken from the bearer token, not the request body
//	@Tags			Students
//	@Accept			json
//	@Produce		json
//	@Param			request	body		edusdk.EnrollRequest	true	"Course to enrol in"
//	@Success		200		{object}	edusdk.MessageResponse	"message"
//	@Failure		400		{object}	edusdk.ErrorResponse	"error"
//	@Failure		401		{object}	edusdk.ErrorResponse	"error"
//	@Failure		403		{object}	edusdk.ErrorResponse	"error"
//	@Failure		500		{object}	edusdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/api/students/enroll [post].
func (h *EnrollHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req edusdk.EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	studentID := httpx.UserIDFromContext(ctx)
	if _, err := h.EnrollmentService.Enroll(ctx, studentID, req.CourseID); err != nil {
		log.Error("failed to enroll student", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "enrollment failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, edusdk.MessageResponse{Message: "enrolled"})
}

// HandleList godoc
//
//	@Summary		List Enrollments Endpoint
//	@Description	List the authenticated student's own enrolment records
//	@Tags			Students
//	@Produce		json
//	@Success		200	{object}	edusdk.ListEnrollmentsResponse	"enrollments"
//	@Failure		401	{object}	edusdk.ErrorResponse			"error"
//	@Failure		403	{object}	edusdk.ErrorResponse			"error"
//	@Failure		500	{object}	edusdk.ErrorResponse			"error"
//	@Security		BearerAuth
//	@Router			/api/students/enrollments [get].
func (h *EnrollHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	studentID := httpx.UserIDFromContext(ctx)
	enrollments, err := h.EnrollmentService.ListForStudent(ctx, studentID)
	if err != nil {
		log.Error("failed to list enrollments", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list enrollments")
		return
	}

	infos := make([]edusdk.EnrollmentInfo, 0, len(enrollments))
	for _, e := range enrollments {
		infos = append(infos, edusdk.EnrollmentInfo{
			ID:        e.ID,
			CourseID:  e.CourseID,
			CreatedAt: e.CreatedAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, edusdk.ListEnrollmentsResponse{Enrollments: infos})
}
