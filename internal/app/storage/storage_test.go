package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAudioKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"clip.wav", true},
		{"meetings/2025/standup.MP3", true},
		{"voice.m4a", true},
		{"notes.txt", false},
		{"folder.wav/", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAudioKey(tt.key))
		})
	}
}

func TestFilterAudioKeys(t *testing.T) {
	keys := []string{"z.mp3", "readme.md", "a.wav", "img.png", "m.flac"}
	assert.Equal(t, []string{"a.wav", "m.flac", "z.mp3"}, FilterAudioKeys(keys))
	assert.Empty(t, FilterAudioKeys(nil))
}

// fakeS3 serves a single bucket from memory, enough for ListObjectsV2,
// HEAD and GET object requests.
func fakeS3(t *testing.T, bucket string, objects map[string]string) *httptest.Server {
	t.Helper()
	modified := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/")

		if r.Method == http.MethodGet && r.URL.Query().Get("list-type") == "2" {
			prefix := r.URL.Query().Get("prefix")
			var b strings.Builder
			b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
			b.WriteString(`<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">`)
			fmt.Fprintf(&b, "<Name>%s</Name><Prefix>%s</Prefix><MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated>", bucket, prefix)
			for key, body := range objects {
				if !strings.HasPrefix(key, prefix) {
					continue
				}
				fmt.Fprintf(&b, `<Contents><Key>%s</Key><LastModified>%s</LastModified><ETag>"etag"</ETag><Size>%d</Size><StorageClass>STANDARD</StorageClass></Contents>`,
					key, modified.Format("2006-01-02T15:04:05.000Z"), len(body))
			}
			b.WriteString(`</ListBucketResult>`)
			w.Header().Set("Content-Type", "application/xml")
			w.Write([]byte(b.String()))
			return
		}

		key := strings.TrimPrefix(path, bucket+"/")
		body, ok := objects[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Last-Modified", modified.Format(http.TimeFormat))
		w.Header().Set("ETag", `"etag"`)
		w.Header().Set("Content-Type", "audio/wav")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			w.Write([]byte(body))
		}
	}))
}

func newTestStore(t *testing.T, srv *httptest.Server, prefix string) *MinioStore {
	t.Helper()
	store, err := NewMinioStore(MinioConfig{
		Endpoint:  srv.Listener.Addr().String(),
		AccessKey: "test",
		SecretKey: "testsecret",
		Bucket:    "audio",
		Region:    "us-east-1",
		Prefix:    prefix,
	}, nil)
	require.NoError(t, err)
	return store
}

func TestMinioStore_ListAudioFiles(t *testing.T) {
	srv := fakeS3(t, "audio", map[string]string{
		"clip.wav":        "RIFF",
		"talks/intro.mp3": "ID3",
		"notes.txt":       "text",
	})
	defer srv.Close()

	keys, err := newTestStore(t, srv, "").ListAudioFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"clip.wav", "talks/intro.mp3"}, keys)

	keys, err = newTestStore(t, srv, "talks/").ListAudioFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"talks/intro.mp3"}, keys)
}

func TestMinioStore_Download(t *testing.T) {
	srv := fakeS3(t, "audio", map[string]string{"clip.wav": "RIFFdata"})
	defer srv.Close()
	store := newTestStore(t, srv, "")

	dst := filepath.Join(t.TempDir(), "temp_audio_1.wav")
	require.NoError(t, store.Download(context.Background(), "clip.wav", dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "RIFFdata", string(content))

	err = store.Download(context.Background(), "missing.wav", filepath.Join(t.TempDir(), "x.wav"))
	assert.ErrorContains(t, err, "object missing.wav not found in bucket audio")

	var resp minio.ErrorResponse
	require.ErrorAs(t, err, &resp)
	assert.Equal(t, "NoSuchKey", resp.Code)
}

func TestNewMinioStore_RequiresBucket(t *testing.T) {
	_, err := NewMinioStore(MinioConfig{Endpoint: "localhost:9000"}, nil)
	assert.ErrorContains(t, err, "bucket name is required")
}

var _ ObjectStore = (*MinioStore)(nil)
