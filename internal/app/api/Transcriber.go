package api

import "context"

// Transcriber converts a local audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, inputFilePath string) (string, error)
}

// Translator translates text into the named target language (e.g. "Hindi").
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
