package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulceai/dulceai/agent"
	"github.com/dulceai/dulceai/catalog"
	"github.com/dulceai/dulceai/config"
	"github.com/dulceai/dulceai/model"
)

func newTestServer(t *testing.T) (*httptest.Server, *model.Mock) {
	t.Helper()
	mock := model.NewMock("test-model")
	a := agent.New(config.Defaults(), mock)
	require.NoError(t, a.Initialize(context.Background()))
	ts := httptest.NewServer(New(a, nil).Router())
	t.Cleanup(ts.Close)
	return ts, mock
}

func TestChat(t *testing.T) {
	ts, mock := newTestServer(t)
	mock.AddResponse("Hola", "¡Hola! Bienvenido.")

	resp, err := http.Post(ts.URL+"/api/chat", "application/json",
		strings.NewReader(`{"message":"Hola","user_id":"u1"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Reply  string `json:"reply"`
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "¡Hola! Bienvenido.", body.Reply)
	assert.Equal(t, "u1", body.UserID)
}

func TestChat_AnonymousUser(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/chat", "application/json",
		strings.NewReader(`{"message":"Hola"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, agent.AnonymousUserID, body["user_id"])
}

func TestChat_BadRequests(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/chat", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/api/chat", "application/json", strings.NewReader(`{"user_id":"u1"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatus(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var st agent.Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.True(t, st.Initialized)
	assert.Equal(t, "test-model", st.ModelName)
	assert.Len(t, st.AvailableTools, 4)
}

func TestProducts(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/products")
	require.NoError(t, err)
	defer resp.Body.Close()

	var products []catalog.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.Len(t, products, 13)
}

func TestProductsByCategory(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/products/category/tortas")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var products []catalog.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.NotEmpty(t, products)

	resp, err = http.Get(ts.URL + "/api/products/category/sopas")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecommendations(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/recommendations/ghost")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// establish a session with a product preference, then ask again
	post, err := http.Post(ts.URL+"/api/chat", "application/json",
		strings.NewReader(`{"message":"me gusta la torta de chocolate","user_id":"u1"}`))
	require.NoError(t, err)
	post.Body.Close()

	resp, err = http.Get(ts.URL + "/api/recommendations/u1")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var recs []catalog.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recs))
	assert.NotEmpty(t, recs)
	for _, p := range recs {
		assert.Contains(t, p.Category, "torta")
	}
}

func TestMemoryExport(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/memory/ghost/export")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	post, err := http.Post(ts.URL+"/api/chat", "application/json",
		strings.NewReader(`{"message":"Hola","user_id":"u1"}`))
	require.NoError(t, err)
	post.Body.Close()

	resp, err = http.Get(ts.URL + "/api/memory/u1/export")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var export struct {
		Messages []json.RawMessage `json:"messages"`
		Summary  struct {
			TotalMessages int `json:"total_messages"`
		} `json:"summary"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&export))
	assert.Len(t, export.Messages, 2)
	assert.Equal(t, 2, export.Summary.TotalMessages)
}

func TestContactAndHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/contact")
	require.NoError(t, err)
	defer resp.Body.Close()

	var info catalog.BusinessInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, catalog.DefaultBusinessInfo.Phone, info.Phone)

	resp2, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}
