package main

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino/flow/agent/multiagent/host"
)

func newHost(ctx context.Context, baseURL, modelName string) (*host.Host, error) {
	chatModel, err := ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
		BaseURL: baseURL,
		Model:   modelName,
	})
	if err != nil {
		return nil, err
	}

	return &host.Host{
		ChatModel: chatModel,
		SystemPrompt: `
You have two internal tools: job_extractor, email_writer.
Whenever the user submits careers page text or a job ad, you must:
1. Call job_extractor.
2. Immediately call email_writer on that output.
Return **only** the message from email_writer to the user; hide all intermediate outputs.
`,
	}, nil
}
