// Package api is the contract with the EduStream backend. The default
// implementation is an in-process mock backed by catalog fixtures; a
// REST implementation exists for a real deployment.
package api

import (
	"context"
	"errors"

	"github.com/edustream/edustream/internal/auth"
	"github.com/edustream/edustream/internal/catalog"
)

// ErrNotFound is returned when a course id does not exist.
var ErrNotFound = errors.New("api: not found")

// ErrInvalidCredentials is returned by Login for a rejected email/password
// pair. It is a distinct outcome, never silently defaulted.
var ErrInvalidCredentials = errors.New("api: invalid credentials")

// AuthResponse is the result of a successful login.
type AuthResponse struct {
	Token string
	User  auth.User
}

// Client is the backend contract. All calls honor ctx cancellation.
type Client interface {
	// Login authenticates the given credentials.
	Login(ctx context.Context, creds auth.Credentials) (*AuthResponse, error)

	// GetCourses fetches the full course list.
	GetCourses(ctx context.Context) ([]catalog.Course, error)

	// GetCourseByID fetches a single course. Returns ErrNotFound if the
	// id is unknown.
	GetCourseByID(ctx context.Context, id string) (*catalog.Course, error)

	// UpdateProgress notifies the backend that a lesson was completed.
	// Fire-and-forget from the caller's perspective; the error is
	// advisory only.
	UpdateProgress(ctx context.Context, courseID, lessonID string) error
}
