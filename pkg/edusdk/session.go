package edusdk

import (
	"context"
	"net/http"
)

// Session is an authenticated client bound to a bearer token. Sessions are
// created via Client.Login or Client.NewSessionFromToken.
type Session struct {
	client *Client
	token  string
}

// Token returns the bearer token backing this session.
func (s *Session) Token() string {
	return s.token
}

// Enroll enrols the authenticated student in the given course.
func (s *Session) Enroll(ctx context.Context, courseID int64) error {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/api/students/enroll", s.token, EnrollRequest{
		CourseID: courseID,
	})
	if err != nil {
		return err
	}

	var ack MessageResponse
	return decodeJSON(resp, &ack, http.StatusOK)
}

// ListEnrollments fetches the authenticated student's enrolment records.
func (s *Session) ListEnrollments(ctx context.Context) ([]EnrollmentInfo, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/api/students/enrollments", s.token, nil)
	if err != nil {
		return nil, err
	}

	var list ListEnrollmentsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Enrollments, nil
}

// RecordGrade records a grade against an enrolment. Requires a faculty token.
func (s *Session) RecordGrade(ctx context.Context, enrollmentID, grade string) error {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/api/students/grade", s.token, GradeRequest{
		EnrollmentID: enrollmentID,
		Grade:        grade,
	})
	if err != nil {
		return err
	}

	var ack MessageResponse
	return decodeJSON(resp, &ack, http.StatusOK)
}

// CreateCourse adds a course to the catalog. Requires a faculty token.
func (s *Session) CreateCourse(ctx context.Context, code, title string) (*CourseInfo, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/api/courses", s.token, CourseRequest{
		Code:  code,
		Title: title,
	})
	if err != nil {
		return nil, err
	}

	var course CourseInfo
	if err := decodeJSON(resp, &course, http.StatusOK); err != nil {
		return nil, err
	}
	return &course, nil
}
