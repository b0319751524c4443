package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/opencampus/edutrack/internal/edutrack/service"
	"github.com/opencampus/edutrack/internal/edutrack/store"
	"github.com/opencampus/edutrack/pkg/edusdk"
	"github.com/opencampus/edutrack/pkg/httpx"
	"github.com/opencampus/edutrack/pkg/slogx"
)

type CoursesHandler struct {
	CourseService *service.CourseService
}

// HandleCreate godoc
//
//	@Summary		Create Course Endpoint
//	@Description	Add a course to the catalog with a unique code and a title
//	@Tags			Courses
//	@Accept			json
//	@Produce		json
//	@Param			request	body		edusdk.CourseRequest	true	"Course code and title"
//	@Success		200		{object}	edusdk.CourseInfo		"id, code, title"
//	@Failure		400		{object}	edusdk.ErrorResponse	"error"
//	@Failure		401		{object}	edusdk.ErrorResponse	"error"
//	@Failure		403		{object}	edusdk.ErrorResponse	"error"
//	@Failure		500		{object}	edusdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/api/courses [post].
func (h *CoursesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req edusdk.CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Code == "" || req.Title == "" {
		httpx.WriteError(w, http.StatusBadRequest, "code and title are required")
		return
	}

	course, err := h.CourseService.Create(ctx, req.Code, req.Title)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			httpx.WriteError(w, http.StatusBadRequest, "course code already exists")
			return
		}
		log.Error("failed to create course", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to create course")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, edusdk.CourseInfo{
		ID:    course.ID,
		Code:  course.Code,
		Title: course.Title,
	})
}

// HandleList godoc
//
//	@Summary		List Courses Endpoint
//	@Description	List all courses in the catalog
//	@Tags			Courses
//	@Produce		json
//	@Success		200	{object}	edusdk.ListCoursesResponse	"courses"
//	@Failure		500	{object}	edusdk.ErrorResponse		"error"
//	@Router			/api/courses [get].
func (h *CoursesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	courses, err := h.CourseService.List(ctx)
	if err != nil {
		log.Error("failed to list courses", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list courses")
		return
	}

	infos := make([]edusdk.CourseInfo, 0, len(courses))
	for _, c := range courses {
		infos = append(infos, edusdk.CourseInfo{
			ID:    c.ID,
			Code:  c.Code,
			Title: c.Title,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, edusdk.ListCoursesResponse{Courses: infos})
}
