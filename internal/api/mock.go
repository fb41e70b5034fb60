package api

import (
	"context"
	"strings"
	"time"

	"github.com/edustream/edustream/internal/auth"
	"github.com/edustream/edustream/internal/catalog"
)

// DefaultLoginLatency simulates the backend round trip of the mock client.
const DefaultLoginLatency = 800 * time.Millisecond

// MockClient is an in-process Client backed by catalog fixtures. Login
// succeeds for any non-empty email/password pair after a fixed simulated
// latency.
type MockClient struct {
	// Latency is the simulated round trip for Login. Zero means
	// DefaultLoginLatency; tests set a small value.
	Latency time.Duration
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates a MockClient with the default latency.
func NewMockClient() *MockClient {
	return &MockClient{Latency: DefaultLoginLatency}
}

func (m *MockClient) Login(ctx context.Context, creds auth.Credentials) (*AuthResponse, error) {
	if err := m.sleep(ctx, m.latency()); err != nil {
		return nil, err
	}

	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return nil, ErrInvalidCredentials
	}

	role := auth.RoleStudent
	if strings.Contains(creds.Email, "admin") {
		role = auth.RoleAdmin
	}

	return &AuthResponse{
		Token: "mock-token",
		User: auth.User{
			ID:              "u1",
			Name:            "John Doe",
			Email:           creds.Email,
			Role:            role,
			EnrolledCourses: []string{"1", "3"},
			Points:          1250,
			Level:           5,
			Achievements:    auth.Achievements(),
		},
	}, nil
}

func (m *MockClient) GetCourses(ctx context.Context) ([]catalog.Course, error) {
	if err := m.sleep(ctx, m.latency()/2); err != nil {
		return nil, err
	}
	return catalog.Courses(), nil
}

func (m *MockClient) GetCourseByID(ctx context.Context, id string) (*catalog.Course, error) {
	c := catalog.CourseByID(id)
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (m *MockClient) UpdateProgress(ctx context.Context, courseID, lessonID string) error {
	// The mock backend has nothing to persist.
	return nil
}

func (m *MockClient) latency() time.Duration {
	if m.Latency > 0 {
		return m.Latency
	}
	return DefaultLoginLatency
}

func (m *MockClient) sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
