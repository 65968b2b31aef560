package service

import "context"

// Prompt is a single request to a hosted language model.
type Prompt struct {
	System    string // System instruction.
	User      string // User message.
	Image     []byte // Optional image for vision-capable models.
	ImageMIME string // MIME type of Image.
}

// ContentGenerator produces a JSON completion for a prompt.
type ContentGenerator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}
