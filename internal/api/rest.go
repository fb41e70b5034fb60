package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/edustream/edustream/internal/auth"
	"github.com/edustream/edustream/internal/catalog"
)

// RESTClient talks to a real EduStream backend over HTTP. Routes mirror
// the mock contract: POST /auth/login, GET /courses, GET /courses/{id},
// PATCH /progress/{courseId}/lesson/{lessonId}.
type RESTClient struct {
	http *resty.Client
}

var _ Client = (*RESTClient)(nil)

// NewRESTClient creates a client for the backend at baseURL. The token is
// attached as a bearer credential once set via SetToken.
func NewRESTClient(baseURL string) *RESTClient {
	c := resty.New()
	c.SetBaseURL(baseURL)
	c.SetHeader("Content-Type", "application/json")
	return &RESTClient{http: c}
}

// SetToken attaches the bearer token used for authenticated routes.
func (r *RESTClient) SetToken(token string) {
	r.http.SetAuthToken(token)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  auth.User `json:"user"`
}

func (r *RESTClient) Login(ctx context.Context, creds auth.Credentials) (*AuthResponse, error) {
	var out loginResponse
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Email: creds.Email, Password: creds.Password}).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if resp.IsError() {
		return nil, fmt.Errorf("login: unexpected status %d", resp.StatusCode())
	}
	r.SetToken(out.Token)
	return &AuthResponse{Token: out.Token, User: out.User}, nil
}

func (r *RESTClient) GetCourses(ctx context.Context) ([]catalog.Course, error) {
	var out []catalog.Course
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/courses")
	if err != nil {
		return nil, fmt.Errorf("get courses: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get courses: unexpected status %d", resp.StatusCode())
	}
	return out, nil
}

func (r *RESTClient) GetCourseByID(ctx context.Context, id string) (*catalog.Course, error) {
	var out catalog.Course
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/courses/" + id)
	if err != nil {
		return nil, fmt.Errorf("get course %s: %w", id, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get course %s: unexpected status %d", id, resp.StatusCode())
	}
	return &out, nil
}

func (r *RESTClient) UpdateProgress(ctx context.Context, courseID, lessonID string) error {
	resp, err := r.http.R().
		SetContext(ctx).
		Patch(fmt.Sprintf("/progress/%s/lesson/%s", courseID, lessonID))
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("update progress: unexpected status %d", resp.StatusCode())
	}
	return nil
}
