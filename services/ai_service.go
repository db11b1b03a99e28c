package services

import (
	"context"
	"errors"
	"fmt"

	config "github.com/anyango/dev_circle/configs"
	openai "github.com/sashabaranov/go-openai"
)

var ErrAINotConfigured = errors.New("inference API key not configured")

// GenerateAnswerDraft asks the inference API for an answer draft to a
// question. Callers fall back to a canned draft on any error; there is no
// retry.
func GenerateAnswerDraft(ctx context.Context, title, content string) (string, error) {
	apiKey := config.Config("OPENAI_API_KEY")
	if apiKey == "" {
		return "", ErrAINotConfigured
	}

	client := openai.NewClient(apiKey)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a helpful senior engineer answering programming questions. Be concise and include code where useful.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Question: %s\n\n%s", title, content),
			},
		},
		MaxTokens: 700,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}

	return resp.Choices[0].Message.Content, nil
}
