// file: internals/features/contracts/drafts/controller/draft_controller_test.go
package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ithra_backend/internals/features/contracts/drafts/repository"
)

func newDraftApp() (*fiber.App, *repository.MemoryDraftRepository) {
	repo := repository.NewMemoryDraftRepository()
	ctl := NewDraftController(repo)

	app := fiber.New()
	app.Put("/api/user/draft/:key", ctl.PutDraft)
	app.Get("/api/user/draft", ctl.GetDrafts)
	app.Delete("/api/user/draft", ctl.ClearDrafts)
	return app, repo
}

func sessionCookie(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == DraftSessionCookie {
			return c.Value
		}
	}
	t.Fatal("draft_session cookie tidak di-set")
	return ""
}

func TestPutDraftRejectsUnknownKey(t *testing.T) {
	app, _ := newDraftApp()

	req := httptest.NewRequest(http.MethodPut, "/api/user/draft/passwords", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPutDraftRejectsInvalidJSON(t *testing.T) {
	app, _ := newDraftApp()

	req := httptest.NewRequest(http.MethodPut, "/api/user/draft/guardian", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDraftRoundTrip(t *testing.T) {
	app, _ := newDraftApp()

	// PUT pertama mencetak cookie sesi
	put := httptest.NewRequest(http.MethodPut, "/api/user/draft/guardian",
		strings.NewReader(`{"name":"محمد العتيبي"}`))
	put.Header.Set("Content-Type", "application/json")
	putResp, err := app.Test(put)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, putResp.StatusCode)
	session := sessionCookie(t, putResp)

	// GET dengan cookie yang sama mengembalikan draft
	get := httptest.NewRequest(http.MethodGet, "/api/user/draft", nil)
	get.AddCookie(&http.Cookie{Name: DraftSessionCookie, Value: session})
	getResp, err := app.Test(get)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, getResp.StatusCode)

	var body struct {
		Success bool                       `json:"success"`
		Data    map[string]json.RawMessage `json:"data"`
	}
	raw, err := io.ReadAll(getResp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.True(t, body.Success)
	require.Contains(t, body.Data, "guardian")
	assert.JSONEq(t, `{"name":"محمد العتيبي"}`, string(body.Data["guardian"]))
}

func TestGetDraftsWithoutSessionIsEmpty(t *testing.T) {
	app, _ := newDraftApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/user/draft", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Empty(t, body.Data)
}

func TestClearDrafts(t *testing.T) {
	app, _ := newDraftApp()

	put := httptest.NewRequest(http.MethodPut, "/api/user/draft/student",
		strings.NewReader(`{"name":"أحمد"}`))
	put.Header.Set("Content-Type", "application/json")
	putResp, err := app.Test(put)
	require.NoError(t, err)
	session := sessionCookie(t, putResp)

	del := httptest.NewRequest(http.MethodDelete, "/api/user/draft", nil)
	del.AddCookie(&http.Cookie{Name: DraftSessionCookie, Value: session})
	delResp, err := app.Test(del)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, delResp.StatusCode)

	get := httptest.NewRequest(http.MethodGet, "/api/user/draft", nil)
	get.AddCookie(&http.Cookie{Name: DraftSessionCookie, Value: session})
	getResp, err := app.Test(get)
	require.NoError(t, err)

	var body struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	raw, err := io.ReadAll(getResp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Empty(t, body.Data)
}
