package workflow

import (
	"fmt"
	"strings"

	apperrors "s3-audio-translate/internal/app/errors"
	"s3-audio-translate/internal/app/model"
)

// Artifacts returns the downloads for result: the original and the
// translation when one was made, otherwise a single transcript.
func Artifacts(result model.TranscriptResult) []model.Artifact {
	base := strings.ReplaceAll(result.FileKey, "/", "_")

	if !result.Translated() {
		return []model.Artifact{{
			Name:    base + "_transcript.txt",
			Label:   "Download Transcript",
			Content: []byte(result.OriginalText),
		}}
	}

	return []model.Artifact{
		{
			Name:    base + "_original.txt",
			Label:   "Download Original",
			Content: []byte(result.OriginalText),
		},
		{
			Name:    fmt.Sprintf("%s_%s.txt", base, result.TargetLanguage),
			Label:   "Download " + result.TargetLanguage,
			Content: []byte(result.TranslatedText),
		},
	}
}

// FindArtifact returns the artifact of result called name.
func FindArtifact(result model.TranscriptResult, name string) (model.Artifact, error) {
	for _, a := range Artifacts(result) {
		if a.Name == name {
			return a, nil
		}
	}
	return model.Artifact{}, apperrors.Wrapf(apperrors.ErrUnknownArtifact, "no artifact named %q", name)
}
