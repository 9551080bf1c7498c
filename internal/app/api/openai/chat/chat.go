package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const translatePrompt = "Translate the following text to %s. Reply with the translation only.\n\n%s"

// Translator translates transcripts with a chat completion model.
type Translator struct {
	client *openai.Client
	model  string
}

// NewTranslator creates a chat translator. An empty model uses gpt-4o-mini.
func NewTranslator(client *openai.Client, model string) *Translator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Translator{client: client, model: model}
}

// Translate implements api.Translator
func (t *Translator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a professional translator.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(translatePrompt, targetLanguage, text),
			},
		},
	}

	resp, err := t.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("createChatCompletion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("translation returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
