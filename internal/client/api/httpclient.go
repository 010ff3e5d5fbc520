package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gilles-knd/galerebuddy/internal/client/models"
	"github.com/Gilles-knd/galerebuddy/internal/logging"
	"github.com/google/uuid"
)

// errBodyLimit caps how much of an error response body is read for the
// server message.
const errBodyLimit = 4 << 10

// HTTPClient is the Client implementation over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient builds a client for the API at baseURL. A trailing slash on
// baseURL is tolerated. The tokens source may be nil for a client that only
// performs anonymous calls.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// userEnvelope matches the {"user": {...}} wrapper the server puts around
// identity responses.
type userEnvelope struct {
	User *models.User `json:"user"`
}

// do executes one round trip: marshal body (if any), attach headers and the
// bearer token when storage holds one, send, classify failures, decode the
// JSON response into out (when out is non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		apiErr := &Error{StatusCode: resp.StatusCode, Message: serverMessage(data)}
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// serverMessage extracts the "message" field from an error body, falling
// back to the raw body when it is not the usual JSON shape.
func serverMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return string(bytes.TrimSpace(data))
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/log-in", req, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/sign-up", req, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

// Me validates the stored token and returns the authoritative identity.
func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

// CurrentUser fetches the profile of the authenticated user after login.
func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/post", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) TrendingPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/post/trending", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodGet, "/post/"+id, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodPost, "/post", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) UpdatePost(ctx context.Context, id string, req models.UpdatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodPatch, "/post/"+id, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/post/"+id, nil, nil)
}

func (c *HTTPClient) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.do(ctx, http.MethodGet, "/post/"+postID+"/comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, postID string, req models.CreateCommentRequest) (*models.Comment, error) {
	var comment models.Comment
	if err := c.do(ctx, http.MethodPost, "/post/"+postID+"/comments", req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *HTTPClient) AddReaction(ctx context.Context, postID string, req models.CreateReactionRequest) (*models.Reaction, error) {
	var reaction models.Reaction
	if err := c.do(ctx, http.MethodPost, "/post/"+postID+"/reactions", req, &reaction); err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (c *HTTPClient) ListInitiatives(ctx context.Context) ([]models.Initiative, error) {
	var initiatives []models.Initiative
	if err := c.do(ctx, http.MethodGet, "/initiative", nil, &initiatives); err != nil {
		return nil, err
	}
	return initiatives, nil
}

func (c *HTTPClient) GetInitiative(ctx context.Context, id string) (*models.Initiative, error) {
	var initiative models.Initiative
	if err := c.do(ctx, http.MethodGet, "/initiative/"+id, nil, &initiative); err != nil {
		return nil, err
	}
	return &initiative, nil
}

func (c *HTTPClient) CreateInitiative(ctx context.Context, req models.CreateInitiativeRequest) (*models.Initiative, error) {
	var initiative models.Initiative
	if err := c.do(ctx, http.MethodPost, "/initiative", req, &initiative); err != nil {
		return nil, err
	}
	return &initiative, nil
}

func (c *HTTPClient) UpdateInitiative(ctx context.Context, id string, req models.UpdateInitiativeRequest) (*models.Initiative, error) {
	var initiative models.Initiative
	if err := c.do(ctx, http.MethodPatch, "/initiative/"+id, req, &initiative); err != nil {
		return nil, err
	}
	return &initiative, nil
}

func (c *HTTPClient) JoinInitiative(ctx context.Context, id string) (*models.Participant, error) {
	var participant models.Participant
	if err := c.do(ctx, http.MethodPost, "/initiative/"+id+"/participants", nil, &participant); err != nil {
		return nil, err
	}
	return &participant, nil
}

func (c *HTTPClient) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := c.do(ctx, http.MethodGet, "/tag", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

var _ Client = (*HTTPClient)(nil)
