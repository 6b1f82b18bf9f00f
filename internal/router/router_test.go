package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/deppfellow/blog-api/internal/config"
	"github.com/deppfellow/blog-api/internal/database"
	"github.com/deppfellow/blog-api/internal/handler"
	"github.com/deppfellow/blog-api/internal/repository"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

func setupTestRouter(t *testing.T, configure ...func(*config.Config)) *echo.Echo {
	t.Helper()
	return setupTestRouterWithLogger(t, zerolog.Nop(), configure...)
}

// setupTestRouterWithLogger is setupTestRouter with the server logging to
// logger, for tests that inspect log output.
func setupTestRouterWithLogger(t *testing.T, logger zerolog.Logger, configure ...func(*config.Config)) *echo.Echo {
	t.Helper()

	cfg := config.DefaultConfig()
	for _, fn := range configure {
		fn(cfg)
	}

	db, err := database.NewSQLite(":memory:", &logger)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))

	s := server.NewWithDatabase(cfg, &logger, nil, db)
	t.Cleanup(func() {
		s.Shutdown(context.Background())
	})

	services, err := service.NewServices(s, repository.NewRepositories(s))
	require.NoError(t, err)

	return NewRouter(s, handler.NewHandlers(s, services))
}

func doRequest(t *testing.T, e *echo.Echo, method, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func postJSON(t *testing.T, e *echo.Echo, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return doRequest(t, e, http.MethodPost, path, echo.MIMEApplicationJSON, string(body))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

// validationErrors decodes a 422 body into its "errors" and "kinds" maps.
func validationErrors(t *testing.T, rec *httptest.ResponseRecorder) (map[string][]string, map[string][]string) {
	t.Helper()
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, "body: %s", rec.Body.String())

	var body struct {
		Errors map[string][]string `json:"errors"`
		Kinds  map[string][]string `json:"kinds"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Errors, body.Kinds
}

func validPost() map[string]any {
	return map[string]any{
		"title":    "Top 10 Secrets",
		"content":  strings.Repeat("c", 260),
		"category": "Fiction",
		"summary":  strings.Repeat("s", 100),
	}
}

// =============================================================================
// Authors
// =============================================================================

func TestCreateAuthor(t *testing.T) {
	e := setupTestRouter(t)

	rec := postJSON(t, e, "/authors", map[string]any{"name": "Ada", "phone_number": "0123456789"})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, map[string]any{
		"id":           float64(1),
		"name":         "Ada",
		"phone_number": "0123456789",
	}, body)
}

func TestCreateAuthor_WithoutPhoneNumber(t *testing.T) {
	e := setupTestRouter(t)

	rec := postJSON(t, e, "/authors", map[string]any{"name": "Ada"})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body, "phone_number")
	assert.Nil(t, body["phone_number"])
}

func TestCreateAuthor_MissingName(t *testing.T) {
	e := setupTestRouter(t)

	for _, payload := range []map[string]any{{}, {"name": ""}, {"name": nil}, {"phone_number": "0123456789"}} {
		errors, kinds := validationErrors(t, postJSON(t, e, "/authors", payload))
		assert.Equal(t, []string{"Name is required"}, errors["name"])
		assert.Equal(t, []string{"MissingField"}, kinds["name"])
	}
}

func TestCreateAuthor_InvalidPhoneNumber(t *testing.T) {
	e := setupTestRouter(t)

	for i, phone := range []string{"123", "01234567890", "012345678a", "01234 6789"} {
		rec := postJSON(t, e, "/authors", map[string]any{"name": fmt.Sprintf("author-%d", i), "phone_number": phone})

		errors, kinds := validationErrors(t, rec)
		assert.Equal(t, []string{"Phone number must be exactly 10 digits"}, errors["phone_number"], phone)
		assert.Equal(t, []string{"InvalidFormat"}, kinds["phone_number"], phone)
		assert.NotContains(t, errors, "name")
	}
}

func TestCreateAuthor_ReportsEveryField(t *testing.T) {
	e := setupTestRouter(t)

	errors, kinds := validationErrors(t, postJSON(t, e, "/authors", map[string]any{"phone_number": "12"}))
	assert.Len(t, errors, 2)
	assert.Equal(t, []string{"MissingField"}, kinds["name"])
	assert.Equal(t, []string{"InvalidFormat"}, kinds["phone_number"])
}

func TestCreateAuthor_DuplicateName(t *testing.T) {
	e := setupTestRouter(t)

	rec := postJSON(t, e, "/authors", map[string]any{"name": "Ada"})
	require.Equal(t, http.StatusCreated, rec.Code)

	errors, kinds := validationErrors(t, postJSON(t, e, "/authors", map[string]any{"name": "Ada"}))
	assert.Equal(t, map[string][]string{"name": {"Name must be unique"}}, errors)
	assert.Equal(t, map[string][]string{"name": {"DuplicateValue"}}, kinds)
}

func TestCreateAuthor_DuplicateCheckedAfterValidation(t *testing.T) {
	e := setupTestRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(t, e, "/authors", map[string]any{"name": "Ada"}).Code)

	// The payload is invalid, so the uniqueness lookup never runs.
	errors, kinds := validationErrors(t, postJSON(t, e, "/authors", map[string]any{"name": "Ada", "phone_number": "1"}))
	assert.NotContains(t, errors, "name")
	assert.Equal(t, []string{"InvalidFormat"}, kinds["phone_number"])
}

func TestCreateAuthor_ConcurrentDuplicates(t *testing.T) {
	e := setupTestRouter(t)

	const workers = 8
	codes := make([]int, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/authors", strings.NewReader(`{"name": "Ada"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			codes[i] = rec.Code
		}()
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		default:
			assert.Equal(t, http.StatusUnprocessableEntity, code)
		}
	}
	assert.Equal(t, 1, created)
}

// =============================================================================
// Posts
// =============================================================================

func TestCreatePost(t *testing.T) {
	e := setupTestRouter(t)
	payload := validPost()

	rec := postJSON(t, e, "/posts", payload)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, map[string]any{
		"id":       float64(1),
		"title":    payload["title"],
		"content":  payload["content"],
		"category": payload["category"],
		"summary":  payload["summary"],
	}, body)
}

func TestCreatePost_AuthorIDIsNotEchoedOrChecked(t *testing.T) {
	e := setupTestRouter(t)
	payload := validPost()
	payload["author_id"] = 424242

	rec := postJSON(t, e, "/posts", payload)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	assert.NotContains(t, decodeBody(t, rec), "author_id")
}

func TestCreatePost_Title(t *testing.T) {
	e := setupTestRouter(t)

	for _, title := range []string{"You Won't Believe It", "A Secret", "Top Picks", "Guess Who"} {
		payload := validPost()
		payload["title"] = title
		assert.Equal(t, http.StatusCreated, postJSON(t, e, "/posts", payload).Code, title)
	}

	for _, title := range []string{"Ordinary", "top picks", "secret"} {
		payload := validPost()
		payload["title"] = title

		errors, kinds := validationErrors(t, postJSON(t, e, "/posts", payload))
		assert.Equal(t, []string{"PolicyViolation"}, kinds["title"], title)
		assert.Len(t, errors, 1, title)
	}
}

func TestCreatePost_ContentBoundary(t *testing.T) {
	e := setupTestRouter(t)

	payload := validPost()
	payload["content"] = strings.Repeat("c", 249)
	errors, kinds := validationErrors(t, postJSON(t, e, "/posts", payload))
	assert.Equal(t, []string{"Content must be at least 250 characters long"}, errors["content"])
	assert.Equal(t, []string{"TooShort"}, kinds["content"])

	payload["content"] = strings.Repeat("c", 250)
	assert.Equal(t, http.StatusCreated, postJSON(t, e, "/posts", payload).Code)
}

func TestCreatePost_SummaryBoundary(t *testing.T) {
	e := setupTestRouter(t)

	payload := validPost()
	payload["summary"] = strings.Repeat("s", 251)
	errors, kinds := validationErrors(t, postJSON(t, e, "/posts", payload))
	assert.Equal(t, []string{"Summary must be a maximum of 250 characters"}, errors["summary"])
	assert.Equal(t, []string{"TooLong"}, kinds["summary"])

	payload["summary"] = strings.Repeat("s", 250)
	assert.Equal(t, http.StatusCreated, postJSON(t, e, "/posts", payload).Code)
}

func TestCreatePost_Category(t *testing.T) {
	e := setupTestRouter(t)

	for _, category := range []string{"Fiction", "Non-Fiction"} {
		payload := validPost()
		payload["category"] = category
		assert.Equal(t, http.StatusCreated, postJSON(t, e, "/posts", payload).Code, category)
	}

	payload := validPost()
	payload["category"] = "Poetry"
	errors, kinds := validationErrors(t, postJSON(t, e, "/posts", payload))
	assert.Equal(t, []string{"Category must be either Fiction or Non-Fiction"}, errors["category"])
	assert.Equal(t, []string{"InvalidEnum"}, kinds["category"])
}

func TestCreatePost_OptionalFieldsMayBeOmitted(t *testing.T) {
	e := setupTestRouter(t)

	rec := postJSON(t, e, "/posts", map[string]any{"title": "Guess What"})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Guess What", body["title"])
	assert.Nil(t, body["content"])
	assert.Nil(t, body["category"])
	assert.Nil(t, body["summary"])
}

func TestCreatePost_MissingTitleIsRejectedByStore(t *testing.T) {
	e := setupTestRouter(t)

	payload := validPost()
	delete(payload, "title")

	rec := postJSON(t, e, "/posts", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", rec.Body.String())

	var body struct {
		Code   string `json:"code"`
		Errors []struct {
			Field string `json:"field"`
			Error string `json:"error"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "POST_REQUIRED", body.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "title", body.Errors[0].Field)
	assert.Equal(t, "is required", body.Errors[0].Error)
}

func TestCreatePost_ReportsEveryField(t *testing.T) {
	e := setupTestRouter(t)

	_, kinds := validationErrors(t, postJSON(t, e, "/posts", map[string]any{
		"title":    "Plain",
		"content":  "short",
		"summary":  strings.Repeat("s", 300),
		"category": "Poetry",
	}))

	assert.Equal(t, map[string][]string{
		"title":    {"PolicyViolation"},
		"content":  {"TooShort"},
		"summary":  {"TooLong"},
		"category": {"InvalidEnum"},
	}, kinds)
}

// =============================================================================
// Transport
// =============================================================================

func TestMalformedBody(t *testing.T) {
	e := setupTestRouter(t)

	for _, body := range []string{`{"name": `, `[1, 2]`, `"Ada"`} {
		rec := doRequest(t, e, http.MethodPost, "/authors", echo.MIMEApplicationJSON, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "BAD_REQUEST", decodeBody(t, rec)["code"], body)
	}
}

func TestTrailingDataAfterBody(t *testing.T) {
	e := setupTestRouter(t)

	for _, body := range []string{
		`{"name": "Bob2", "phone_number": "0123456789"} trailing`,
		`{"name": "Bob2"}{"name": "Bob3"}`,
	} {
		rec := doRequest(t, e, http.MethodPost, "/authors", echo.MIMEApplicationJSON, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "BAD_REQUEST", decodeBody(t, rec)["code"], body)
	}

	// Trailing whitespace is not data.
	rec := doRequest(t, e, http.MethodPost, "/authors", echo.MIMEApplicationJSON, "{\"name\": \"Bob2\"}\n  \n")
	assert.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
}

func TestUnsupportedMediaType(t *testing.T) {
	e := setupTestRouter(t)

	rec := doRequest(t, e, http.MethodPost, "/authors", echo.MIMETextPlain, `name=Ada`)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	e := setupTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeBody(t, rec)["message"])
}

func TestRequestIDIsEchoed(t *testing.T) {
	e := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	rec = doRequest(t, e, http.MethodGet, "/status", "", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestServiceLogsCarryRequestID(t *testing.T) {
	var buf bytes.Buffer
	e := setupTestRouterWithLogger(t, zerolog.New(&buf))

	req := httptest.NewRequest(http.MethodPost, "/authors", strings.NewReader(`{"name": "Ada"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var entry map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var candidate map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &candidate), line)
		if candidate["message"] == "author created" {
			entry = candidate
			break
		}
	}

	require.NotNil(t, entry, "log output: %s", buf.String())
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "create_author", entry["operation"])
	assert.Equal(t, "/authors", entry["path"])
}

func TestStatus(t *testing.T) {
	e := setupTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/status", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	checks, ok := body["checks"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, checks, "database")
}

func TestRateLimit(t *testing.T) {
	e := setupTestRouter(t, func(cfg *config.Config) {
		cfg.Server.RateLimit = 1
	})

	first := doRequest(t, e, http.MethodGet, "/status", "", "")
	assert.Equal(t, http.StatusOK, first.Code)

	second := doRequest(t, e, http.MethodGet, "/status", "", "")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeBody(t, second)["code"])
}
