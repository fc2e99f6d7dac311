package rewrite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-optimizer/internal/llm"
)

func newHandlerRouter(client llm.Client, enabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(newTestService(client, enabled))
	h.RegisterRoutes(r.Group(""))
	return r
}

func postRewrite(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/rewrite", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRewriteEndpointSuccess(t *testing.T) {
	client := &fakeClient{
		rewriteOut: "# Improved\n\nBetter content.",
		assetsOut:  llm.DefaultAssets(),
	}
	r := newHandlerRouter(client, true)

	resp := postRewrite(t, r, gin.H{"content": longContent()})
	require.Equal(t, http.StatusOK, resp.Code)

	var body RewriteResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "# Improved\n\nBetter content.", body.Rewritten)
	assert.NotEmpty(t, body.Assets.Headlines)
	assert.NotEmpty(t, body.Assets.SocialMediaPosts)
}

func TestRewriteEndpointProviderFailureStill200(t *testing.T) {
	client := &fakeClient{
		rewriteErr: llm.ErrRewriteService,
		assetsErr:  llm.ErrRewriteService,
	}
	r := newHandlerRouter(client, true)

	resp := postRewrite(t, r, gin.H{"content": longContent()})
	require.Equal(t, http.StatusOK, resp.Code)

	var body RewriteResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Contains(t, body.Rewritten, "[AI Enhancement:")
	assert.NotEmpty(t, body.Assets.Headlines) // defaults bundle
}

func TestRewriteEndpointDisabledIs502(t *testing.T) {
	r := newHandlerRouter(llm.Disabled{}, false)

	resp := postRewrite(t, r, gin.H{"content": longContent()})
	assert.Equal(t, http.StatusBadGateway, resp.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "REWRITE_UNAVAILABLE", payload["code"])
}

func TestRewriteEndpointEmptyContent(t *testing.T) {
	r := newHandlerRouter(&fakeClient{}, true)

	resp := postRewrite(t, r, gin.H{"content": ""})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "EMPTY_CONTENT", payload["code"])
}

func TestRewriteEndpointInvalidTone(t *testing.T) {
	r := newHandlerRouter(&fakeClient{}, true)

	resp := postRewrite(t, r, gin.H{"content": longContent(), "target_tone": "bombastic"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
