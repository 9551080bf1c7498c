package transcribe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"s3-audio-translate/internal/app/model"
	"s3-audio-translate/internal/app/workflow"
)

func TestWriteArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	result := model.TranscriptResult{
		FileKey:        "talks/intro.mp3",
		OriginalText:   "hello",
		TranslatedText: "namaste",
		TargetLanguage: "Hindi",
	}

	paths, err := WriteArtifacts(dir, workflow.Artifacts(result))
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "talks_intro.mp3_original.txt"), paths[0])
	assert.Equal(t, filepath.Join(dir, "talks_intro.mp3_Hindi.txt"), paths[1])

	content, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "namaste", string(content))
}

func TestCmdFlags(t *testing.T) {
	for _, name := range []string{"email", "password", "key"} {
		flag := Cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, []string{"true"}, flag.Annotations["cobra_annotation_bash_completion_one_required_flag"], name)
	}
	assert.Equal(t, "Original (No Translation)", Cmd.Flags().Lookup("language").DefValue)
}
