package storage

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// ObjectStore is the remote bucket holding the audio files.
type ObjectStore interface {
	// ListAudioFiles returns the keys of all objects with an audio extension.
	ListAudioFiles(ctx context.Context) ([]string, error)

	// Download copies the object at key to destinationPath.
	Download(ctx context.Context, key, destinationPath string) error
}

// AudioExtensions are the formats the speech API accepts.
var AudioExtensions = []string{".mp3", ".wav", ".m4a", ".flac", ".ogg", ".webm", ".mp4", ".mpeg", ".mpga"}

// IsAudioKey reports whether key ends in a known audio extension (case-insensitive).
func IsAudioKey(key string) bool {
	if strings.HasSuffix(key, "/") {
		return false
	}
	return lo.Contains(AudioExtensions, strings.ToLower(filepath.Ext(key)))
}

// FilterAudioKeys keeps the audio keys and sorts them.
func FilterAudioKeys(keys []string) []string {
	audio := lo.Filter(keys, func(key string, _ int) bool {
		return IsAudioKey(key)
	})
	sort.Strings(audio)
	return audio
}
