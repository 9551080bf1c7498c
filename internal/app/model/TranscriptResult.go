package model

type TranscriptResult struct {
	FileKey        string `json:"file_key"`
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text,omitempty"`
	TargetLanguage string `json:"target_language,omitempty"`
}

// Translated reports whether a translation was requested and produced.
func (r TranscriptResult) Translated() bool {
	return r.TargetLanguage != ""
}

// Artifact is a named byte blob offered to the user for download.
type Artifact struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Content []byte `json:"-"`
}
