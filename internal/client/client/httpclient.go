package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/dashapp/internal/client/models"
	"github.com/dmitrijs2005/dashapp/internal/common"
)

// TokenSource yields the current access token, "" when logged out.
type TokenSource func() string

var _ Service = (*HTTPClient)(nil)

// HTTPClient talks to the DashApp REST API. Every request outside the auth
// endpoints carries the bearer token from the token source; a 401 on any of
// them fires the auth-invalid handler exactly once per response so the
// session layer can discard the stale token.
type HTTPClient struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
	authInvalid func()
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokenSource TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		tokenSource: tokenSource,
	}
}

// SetAuthInvalidHandler registers the callback fired when the server rejects
// the bearer token.
func (c *HTTPClient) SetAuthInvalidHandler(fn func()) {
	c.authInvalid = fn
}

type detailResponse struct {
	Detail string `json:"detail"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// do sends the request and decodes the response into out (unless out is
// nil). Transport failures map to common.ErrUnavailable; non-2xx responses
// map to APIError with the server's detail message.
func (c *HTTPClient) do(req *http.Request, out any) error {
	if token := c.tokenSource(); token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusUnauthorized && c.authInvalid != nil {
			c.authInvalid()
		}

		detail := fallbackDetail(resp.StatusCode)
		var dr detailResponse
		if err := json.NewDecoder(resp.Body).Decode(&dr); err == nil && dr.Detail != "" {
			detail = dr.Detail
		}
		return &APIError{Status: resp.StatusCode, Detail: detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *HTTPClient) newJSONRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// LoginAccessToken posts the credentials form-encoded, the way OAuth2
// password flow expects them: the email travels in the username field.
func (c *HTTPClient) LoginAccessToken(ctx context.Context, email, password string) (string, error) {
	form := url.Values{
		"username": {email},
		"password": {password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/auth/login/access-token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tr tokenResponse
	if err := c.do(req, &tr); err != nil {
		return "", err
	}
	return tr.AccessToken, nil
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/auth/signup",
		signupRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) GetMe(ctx context.Context) (*models.User, error) {
	req, err := c.newJSONRequest(ctx, http.MethodGet, "/users/me", nil)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type updateMeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c *HTTPClient) UpdateMe(ctx context.Context, name, email string) (*models.User, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, "/users/me",
		updateMeRequest{Name: name, Email: email})
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UploadAvatar(ctx context.Context, filename string, content io.Reader) (*models.User, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, content); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/me/avatar", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var user models.User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListTasks(ctx context.Context) ([]*models.Task, error) {
	req, err := c.newJSONRequest(ctx, http.MethodGet, "/tasks", nil)
	if err != nil {
		return nil, err
	}

	var tasks []*models.Task
	if err := c.do(req, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Budget      int64  `json:"budget"`
}

func (c *HTTPClient) CreateTask(ctx context.Context, title, description, status string, budget int64) (*models.Task, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/tasks",
		taskRequest{Title: title, Description: description, Status: status, Budget: budget})
	if err != nil {
		return nil, err
	}

	var task models.Task
	if err := c.do(req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id int64, title, description, status string, budget int64) (*models.Task, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id),
		taskRequest{Title: title, Description: description, Status: status, Budget: budget})
	if err != nil {
		return nil, err
	}

	var task models.Task
	if err := c.do(req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id int64) (*models.Task, error) {
	req, err := c.newJSONRequest(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var task models.Task
	if err := c.do(req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}
