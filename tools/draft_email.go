package tools

import (
	"context"
	"encoding/json"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"

	"github.com/vanshgarg20/CEG/mailgen"
	allPrompts "github.com/vanshgarg20/CEG/prompts"
	"github.com/vanshgarg20/CEG/utils"
)

type DraftEmailTool struct {
	LLM     llms.Model
	Persona mailgen.Persona
}

func (t DraftEmailTool) Name() string {
	return "draft_email"
}

func (t DraftEmailTool) Description() string {
	return "Given a job posting as JSON (optionally with tone, cta and portfolio links), returns a plain text cold email."
}

// Call drafts a cold email for the job posting in input. Input is the job
// JSON; tone and cta keys inside it override the defaults, everything else
// is passed through to the prompt as the job description.
func (t DraftEmailTool) Call(ctx context.Context, input string) (string, error) {
	tone := "Confident"
	cta := "Request an Interview"

	var prefs struct {
		Tone string `json:"tone"`
		CTA  string `json:"cta"`
	}
	if err := json.Unmarshal([]byte(input), &prefs); err == nil {
		if prefs.Tone != "" {
			tone = prefs.Tone
		}
		if prefs.CTA != "" {
			cta = prefs.CTA
		}
	}

	return utils.RunPrompt(ctx, t.LLM, allPrompts.JobEmail, map[string]any{
		"job_description": input,
		"sender_name":     t.Persona.Name,
		"sender_title":    t.Persona.Title,
		"sender_company":  t.Persona.Company,
		"tone":            tone,
		"cta":             cta,
	})
}

var _ tools.Tool = (*DraftEmailTool)(nil)
