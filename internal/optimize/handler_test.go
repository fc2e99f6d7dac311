package optimize

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-optimizer/internal/optimize/textparse"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(&textparse.Parser{}))
	h.RegisterRoutes(r.Group(""))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestOptimizeEndpointSuccess(t *testing.T) {
	r := newTestRouter()
	resp := postJSON(t, r, "/optimize", gin.H{
		"content":            "# Title\n\nA readable paragraph with several plain words in it.",
		"target_readability": 8,
	})

	require.Equal(t, http.StatusOK, resp.Code)

	var body OptimizeResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Report.ID)
	assert.Equal(t, 8, body.Report.TargetParams.TargetReadability)
}

func TestOptimizeEndpointEmptyContent(t *testing.T) {
	r := newTestRouter()

	for _, body := range []gin.H{{}, {"content": ""}} {
		resp := postJSON(t, r, "/optimize", body)
		assert.Equal(t, http.StatusBadRequest, resp.Code)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
		assert.Equal(t, false, payload["success"])
		assert.Equal(t, "EMPTY_CONTENT", payload["code"])
	}
}

func TestOptimizeEndpointWhitespaceContent(t *testing.T) {
	r := newTestRouter()
	resp := postJSON(t, r, "/optimize", gin.H{"content": "   \n\t  "})

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "EMPTY_CONTENT", payload["code"])
}

func TestOptimizeEndpointInvalidTargets(t *testing.T) {
	r := newTestRouter()
	resp := postJSON(t, r, "/optimize", gin.H{
		"content":     "Some perfectly good content.",
		"target_tone": "sarcastic",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "VALIDATION_ERROR", payload["code"])
}

func TestOptimizeEndpointMalformedJSON(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/optimize", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestOptimizeUploadTextFile(t *testing.T) {
	r := newTestRouter()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "article.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("A plain text article with a handful of words to analyze."))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("target_readability", "10"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/optimize/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var body OptimizeResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 10, body.Report.TargetParams.TargetReadability)
}

func TestOptimizeUploadMissingFile(t *testing.T) {
	r := newTestRouter()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("target_readability", "8"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/optimize/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
