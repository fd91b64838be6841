package tools

import (
	"context"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"

	allPrompts "github.com/vanshgarg20/CEG/prompts"
	"github.com/vanshgarg20/CEG/utils"
)

type ExtractJobsTool struct {
	LLM llms.Model
}

func (t ExtractJobsTool) Name() string {
	return "extract_jobs"
}

func (t ExtractJobsTool) Description() string {
	return "Extract job postings (role, experience, skills, description) as JSON from scraped careers page text."
}

func (t ExtractJobsTool) Call(ctx context.Context, input string) (string, error) {
	return utils.RunPrompt(ctx, t.LLM, allPrompts.ExtractJobs, map[string]any{"page_data": input})
}

var _ tools.Tool = (*ExtractJobsTool)(nil)
