package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshavarthini19/campus-connect/internal/config"
	"github.com/Harshavarthini19/campus-connect/internal/router"
)

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	cfg := config.Config{
		Env:           "test",
		Store:         "memory",
		Origin:        "http://localhost:3000",
		SessionSecret: "test-secret",
	}
	srv := httptest.NewServer(router.New(zerolog.Nop(), nil, cfg))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

func do(t *testing.T, c *http.Client, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var m map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func TestReporterFlow(t *testing.T) {
	srv, client := newTestServer(t)

	// no session yet
	resp := do(t, client, http.MethodGet, srv.URL+"/api/issues", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, client, http.MethodPost, srv.URL+"/api/auth/register", map[string]any{
		"email":      "maya@university.edu",
		"name":       "Maya Lin",
		"password":   "hunter22",
		"department": "Physics",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, client, http.MethodPost, srv.URL+"/api/auth/login", map[string]any{
		"email":    "maya@university.edu",
		"password": "hunter22",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, client, http.MethodGet, srv.URL+"/api/auth/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode(t, resp)
	assert.Equal(t, "Maya Lin", me["name"])
	assert.Equal(t, "reporter", me["role"])

	resp = do(t, client, http.MethodPost, srv.URL+"/api/issues", map[string]any{
		"title":        "Flickering light in stairwell",
		"description":  "The light on the 3rd floor landing strobes constantly.",
		"category":     "infrastructure",
		"locationName": "Physics Building",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	issue := decode(t, resp)
	issueID, _ := issue["id"].(string)
	require.NotEmpty(t, issueID)
	assert.Equal(t, "new", issue["status"])
	assert.Equal(t, "medium", issue["priority"]) // defaulted
	assert.Equal(t, "Maya Lin", issue["reporterName"])

	// status changes are staff-only
	resp = do(t, client, http.MethodPatch, srv.URL+"/api/issues/"+issueID+"/status", map[string]any{
		"status": "resolved",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = do(t, client, http.MethodPost, srv.URL+"/api/issues/"+issueID+"/comments", map[string]any{
		"content": "Still flickering as of this morning.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	comment := decode(t, resp)
	assert.Equal(t, "Maya Lin", comment["userName"])
	assert.Equal(t, false, comment["isInternal"])

	resp = do(t, client, http.MethodGet, srv.URL+"/api/issues", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("X-Total-Count"))
	list := decode(t, resp)
	assert.Equal(t, float64(1), list["total"])

	resp = do(t, client, http.MethodGet, srv.URL+"/api/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode(t, resp)
	assert.Equal(t, float64(1), stats["total"])
	byStatus, _ := stats["byStatus"].(map[string]any)
	assert.Equal(t, float64(1), byStatus["new"])

	resp = do(t, client, http.MethodDelete, srv.URL+"/api/issues/"+issueID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	srv, client := newTestServer(t)

	resp := do(t, client, http.MethodPost, srv.URL+"/api/auth/register", map[string]any{
		"email":    "sam@university.edu",
		"name":     "Sam Ortiz",
		"password": "correct-horse",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, client, http.MethodPost, srv.URL+"/api/auth/login", map[string]any{
		"email":    "sam@university.edu",
		"password": "wrong",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
