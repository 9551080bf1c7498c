package whisper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRemoteTranscriber_Transcribe tests the RemoteTranscriber implementation
func TestRemoteTranscriber_Transcribe(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  string
		mockStatus    int
		expectedText  string
		expectError   bool
		errorContains string
	}{
		{
			name:         "successful transcription",
			mockResponse: `{"text": "This is a test transcription"}`,
			mockStatus:   http.StatusOK,
			expectedText: "This is a test transcription",
		},
		{
			name:         "successful transcription with special characters",
			mockResponse: `{"text": "नमस्ते, 世界! émojis 🎵"}`,
			mockStatus:   http.StatusOK,
			expectedText: "नमस्ते, 世界! émojis 🎵",
		},
		{
			name:          "API error - unauthorized",
			mockResponse:  `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusUnauthorized,
			expectError:   true,
			errorContains: "401",
		},
		{
			name:          "API error - unsupported format",
			mockResponse:  `{"error": {"message": "Invalid file format.", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusBadRequest,
			expectError:   true,
			errorContains: "Invalid file format",
		},
		{
			name:         "empty transcription",
			mockResponse: `{"text": ""}`,
			mockStatus:   http.StatusOK,
			expectedText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.True(t, strings.HasSuffix(r.URL.Path, "/audio/transcriptions"))
				assert.NotEmpty(t, r.Header.Get("Authorization"))
				assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

				require.NoError(t, r.ParseMultipartForm(32<<20))
				assert.Equal(t, "whisper-1", r.FormValue("model"))
				file, header, err := r.FormFile("file")
				require.NoError(t, err)
				defer file.Close()
				assert.Equal(t, "temp_audio_1.wav", header.Filename)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.mockStatus)
				w.Write([]byte(tt.mockResponse))
			}))
			defer server.Close()

			config := openai.DefaultConfig("test-api-key")
			config.BaseURL = server.URL + "/v1"
			rt := NewRemoteTranscriber(openai.NewClientWithConfig(config))

			path := filepath.Join(t.TempDir(), "temp_audio_1.wav")
			require.NoError(t, os.WriteFile(path, []byte("RIFF fake audio"), 0o644))

			result, err := rt.Transcribe(context.Background(), path)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, result)
		})
	}
}

// TestRemoteTranscriber_FileNotFound tests handling of non-existent files
func TestRemoteTranscriber_FileNotFound(t *testing.T) {
	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = "http://127.0.0.1:1/v1"
	rt := NewRemoteTranscriber(openai.NewClientWithConfig(config))

	_, err := rt.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}
