package edusdk

import "time"

// ErrorResponse is the standard error body returned by the service.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is a short human-readable reason (e.g. "invalid credentials")
	Error string `json:"error"`
}

// MessageResponse acknowledges a successful write operation.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterRequest contains the data needed to create a new account.
type RegisterRequest struct {
	// Name is the display name for the account
	Name string `json:"name"`

	// Email is the login identifier and must be unique
	Email string `json:"email"`

	// Password is the plaintext password, hashed server-side before storage
	Password string `json:"password"`

	// Role is the requested role (e.g. "student", "faculty")
	Role string `json:"role"`
}

// LoginRequest contains the credentials for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the signed bearer token issued at login.
type TokenResponse struct {
	Token string `json:"token"`
}

// EnrollRequest enrols the authenticated student in a course.
type EnrollRequest struct {
	CourseID int64 `json:"course_id"`
}

// GradeRequest records a grade against an existing enrolment.
type GradeRequest struct {
	EnrollmentID string `json:"enrollment_id"`
	Grade        string `json:"grade"`
}

// EnrollmentInfo describes one enrolment record for the authenticated student.
type EnrollmentInfo struct {
	ID        string    `json:"id"`
	CourseID  int64     `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ListEnrollmentsResponse is returned by the student enrolments endpoint.
type ListEnrollmentsResponse struct {
	Enrollments []EnrollmentInfo `json:"enrollments"`
}

// CourseRequest creates a new catalog entry.
type CourseRequest struct {
	// Code is the short unique course code (e.g. "CS101")
	Code string `json:"code"`

	// Title is the human-readable course title
	Title string `json:"title"`
}

// CourseInfo describes one course in the catalog.
type CourseInfo struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

// ListCoursesResponse is returned by the course catalog endpoint.
type ListCoursesResponse struct {
	Courses []CourseInfo `json:"courses"`
}

// HealthResponse is returned by the /livez and /readyz probe endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
