package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/"+DefaultModel+":generateContent"), r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &req))
		assert.Contains(t, string(raw), "Translate the following text to Spanish")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestTranslator_Translate(t *testing.T) {
	server := newTestServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"Hola "},{"text":"mundo\n"}]}}]}`)
	defer server.Close()

	translator, err := NewTranslator(context.Background(), Config{APIKey: "AIza-test", BaseURL: server.URL})
	require.NoError(t, err)

	out, err := translator.Translate(context.Background(), "Hello world", "Spanish")
	require.NoError(t, err)
	assert.Equal(t, "Hola mundo", out)
}

func TestTranslator_NoCandidates(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"candidates":[]}`)
	defer server.Close()

	translator, err := NewTranslator(context.Background(), Config{APIKey: "AIza-test", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = translator.Translate(context.Background(), "Hello", "Spanish")
	assert.ErrorContains(t, err, "no candidates")
}

func TestTranslator_APIError(t *testing.T) {
	server := newTestServer(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	defer server.Close()

	translator, err := NewTranslator(context.Background(), Config{APIKey: "AIza-test", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = translator.Translate(context.Background(), "Hello", "Spanish")
	assert.Error(t, err)
}

func TestNewTranslator_RequiresKey(t *testing.T) {
	_, err := NewTranslator(context.Background(), Config{})
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}
