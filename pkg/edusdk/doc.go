// Package edusdk provides a typed Go client for the EduTrack academic
// records service. It covers account registration, login, enrolment and
// grading operations, and exposes the shared request/response types used
// by both the server handlers and client code.
package edusdk
