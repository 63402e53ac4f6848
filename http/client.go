// Package http implements study.Backend against the lecture assistant's
// FastAPI backend.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/study"
	studyjson "github.com/fwojciec/study/json"
)

// Interface compliance check.
var _ study.Backend = (*Client)(nil)

// DefaultLocalURL is the backend address on a development host.
const DefaultLocalURL = "http://localhost:8000"

// ResolveBaseURL picks the backend base URL. A configured value always wins;
// otherwise local hosts talk to DefaultLocalURL. Any other host has no
// default and gets "".
func ResolveBaseURL(configured, hostname string) string {
	if configured = strings.TrimSpace(configured); configured != "" {
		return strings.TrimRight(configured, "/")
	}
	switch hostname {
	case "localhost", "127.0.0.1", "::1", "":
		return DefaultLocalURL
	}
	return ""
}

// APIError is a non-2xx response other than 401 and 404.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("backend: HTTP %d: %s", e.StatusCode, e.Detail)
}

// Client talks to the backend over HTTP. It is safe for concurrent use.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	logger         *slog.Logger
	onUnauthorized func()

	mu    sync.Mutex
	token string
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithLogger sets the logger used for request tracing at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithOnUnauthorized registers a hook called when a request that carried a
// token gets a 401, once the token has been cleared.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New creates a [Client] for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Token returns the current bearer token, empty after logout or a 401.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Login exchanges an email and password for session credentials. On success
// the client adopts the new access token.
func (c *Client) Login(ctx context.Context, email, password string) (study.Credentials, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", form, &resp); err != nil {
		return study.Credentials{}, fmt.Errorf("login: %w", err)
	}
	if resp.AccessToken == "" {
		return study.Credentials{}, fmt.Errorf("login: %w", study.ErrUnauthorized)
	}
	c.setToken(resp.AccessToken)
	return study.Credentials{
		UserID:       resp.UserID,
		Email:        Sanitize(resp.Email),
		Name:         Sanitize(resp.Name),
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// Logout ends the session. The local token is cleared even when the
// backend call fails.
func (c *Client) Logout(ctx context.Context) error {
	defer c.setToken("")
	if err := c.do(ctx, http.MethodPost, "/auth/logout", url.Values{}, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Health checks that the backend is reachable.
func (c *Client) Health(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil); err != nil {
		return fmt.Errorf("health: %w", err)
	}
	return nil
}

// Me reports the session as the backend sees it. An unknown or missing
// token yields an Account that is not authenticated rather than an error.
func (c *Client) Me(ctx context.Context) (study.Account, error) {
	var resp meResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return study.Account{}, fmt.Errorf("get account: %w", err)
	}
	acct := study.Account{
		Authenticated: resp.Authenticated,
		UserID:        resp.UserID,
	}
	for _, m := range resp.Classes {
		classID := m.ClassID
		if classID == "" {
			classID = m.Class.ID
		}
		acct.Classes = append(acct.Classes, study.Membership{
			ClassID:   classID,
			ClassName: Sanitize(m.Class.Name),
			ClassCode: Sanitize(m.Class.ClassCode),
			Role:      Sanitize(m.Role),
		})
	}
	return acct, nil
}

// Classes lists the classes the user is a member of.
func (c *Client) Classes(ctx context.Context) ([]study.Class, error) {
	var resp []classDTO
	if err := c.do(ctx, http.MethodGet, "/classes", nil, &resp); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	out := make([]study.Class, len(resp))
	for i, cl := range resp {
		out[i] = study.Class{
			ID:           cl.ID,
			Name:         Sanitize(cl.Name),
			Description:  Sanitize(cl.Description),
			Code:         Sanitize(cl.ClassCode),
			Role:         Sanitize(cl.Role),
			SubjectCount: cl.SubjectCount,
			CreatedAt:    parseTime(cl.CreatedAt),
		}
	}
	return out, nil
}

// Subjects lists the subjects of a class by name.
func (c *Client) Subjects(ctx context.Context, classID string) ([]study.Subject, error) {
	if err := requireID("class", classID); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	var resp []subjectDTO
	if err := c.do(ctx, http.MethodGet, "/classes/"+url.PathEscape(classID)+"/subjects", nil, &resp); err != nil {
		return nil, fmt.Errorf("list subjects of %s: %w", classID, err)
	}
	out := make([]study.Subject, len(resp))
	for i, s := range resp {
		out[i] = study.Subject{
			ID:          s.ID,
			ClassID:     s.ClassID,
			Name:        Sanitize(s.Name),
			Description: Sanitize(s.Description),
			TopicCount:  s.TopicCount,
		}
	}
	return out, nil
}

// Topics lists the topics of a subject by name.
func (c *Client) Topics(ctx context.Context, subjectID string) ([]study.Topic, error) {
	if err := requireID("subject", subjectID); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	var resp []topicDTO
	if err := c.do(ctx, http.MethodGet, "/subjects/"+url.PathEscape(subjectID)+"/topics", nil, &resp); err != nil {
		return nil, fmt.Errorf("list topics of %s: %w", subjectID, err)
	}
	out := make([]study.Topic, len(resp))
	for i, t := range resp {
		out[i] = study.Topic{
			ID:           t.ID,
			SubjectID:    t.SubjectID,
			Name:         Sanitize(t.Name),
			Description:  Sanitize(t.Description),
			LectureCount: t.LectureCount,
		}
	}
	return out, nil
}

// TopicLectures lists the lectures of a topic, oldest first.
func (c *Client) TopicLectures(ctx context.Context, topicID string) ([]study.LectureSummary, error) {
	if err := requireID("topic", topicID); err != nil {
		return nil, fmt.Errorf("list topic lectures: %w", err)
	}
	var resp []lectureDTO
	if err := c.do(ctx, http.MethodGet, "/topics/"+url.PathEscape(topicID)+"/lectures", nil, &resp); err != nil {
		return nil, fmt.Errorf("list lectures of %s: %w", topicID, err)
	}
	return lectureSummaries(resp), nil
}

// Lectures lists all lectures, newest first.
func (c *Client) Lectures(ctx context.Context) ([]study.LectureSummary, error) {
	var resp []lectureDTO
	if err := c.do(ctx, http.MethodGet, "/lectures", nil, &resp); err != nil {
		return nil, fmt.Errorf("list lectures: %w", err)
	}
	return lectureSummaries(resp), nil
}

func lectureSummaries(resp []lectureDTO) []study.LectureSummary {
	out := make([]study.LectureSummary, len(resp))
	for i, l := range resp {
		out[i] = study.LectureSummary{
			ID:              l.ID,
			Title:           Sanitize(l.Title),
			RecordingDate:   Sanitize(l.RecordingDate),
			DurationSeconds: l.DurationSeconds,
			CreatedAt:       parseTime(l.CreatedAt),
		}
	}
	return out
}

func requireID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s id is required", study.ErrValidation, kind)
	}
	return nil
}

// Lecture fetches one lecture with its transcripts.
func (c *Client) Lecture(ctx context.Context, id string) (study.Lecture, error) {
	if err := requireID("lecture", id); err != nil {
		return study.Lecture{}, fmt.Errorf("get lecture: %w", err)
	}
	var l lectureDTO
	if err := c.do(ctx, http.MethodGet, "/lectures/"+url.PathEscape(id), nil, &l); err != nil {
		return study.Lecture{}, fmt.Errorf("get lecture %s: %w", id, err)
	}
	return study.Lecture{
		ID:                l.ID,
		Title:             Sanitize(l.Title),
		Transcript:        Sanitize(l.Transcript),
		CleanedTranscript: Sanitize(l.CleanedTranscript),
		RecordingDate:     Sanitize(l.RecordingDate),
		DurationSeconds:   l.DurationSeconds,
		CreatedAt:         parseTime(l.CreatedAt),
	}, nil
}

// Ask sends a question to the tutor with the trailing chat history.
func (c *Client) Ask(ctx context.Context, req study.AskRequest) (study.Answer, error) {
	if err := req.Validate(); err != nil {
		return study.Answer{}, err
	}
	history, err := studyjson.MarshalHistory(req.RecentHistory())
	if err != nil {
		return study.Answer{}, fmt.Errorf("ask: %w", err)
	}
	mode := req.Mode
	if mode == "" {
		mode = study.ModeTutor
	}

	form := url.Values{}
	form.Set("question", req.Question)
	form.Set("mode", string(mode))
	form.Set("chat_history", history)

	path := "/" + string(req.Scope) + "s/" + url.PathEscape(req.ID) + "/ask"
	var resp answerResponse
	if err := c.do(ctx, http.MethodPost, path, form, &resp); err != nil {
		return study.Answer{}, fmt.Errorf("ask: %w", err)
	}
	answer := study.Answer{Question: resp.Question, Mode: study.Mode(resp.Mode), Response: Sanitize(resp.Response)}
	if answer.Question == "" {
		answer.Question = req.Question
	}
	if answer.Mode == "" {
		answer.Mode = mode
	}
	return answer, nil
}

// do performs a request. A non-nil form is sent url-encoded; a non-nil out
// receives the decoded JSON body.
func (c *Client) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")
	token := c.Token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	c.logger.DebugContext(ctx, "backend request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.setToken("")
		if token != "" && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return study.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return study.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return parseHTTPError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseHTTPError reads FastAPI's {"detail": ...} error body. Validation
// errors carry a list in detail; those are kept as raw JSON.
func parseHTTPError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil || len(body.Detail) == 0 {
		apiErr.Detail = Sanitize(strings.TrimSpace(string(data)))
		return apiErr
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil {
		detail = string(body.Detail)
	}
	apiErr.Detail = Sanitize(detail)
	return apiErr
}

// parseTime accepts the backend's timestamps, with or without a zone.
func parseTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
