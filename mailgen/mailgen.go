// Package mailgen turns a structured outreach request into a generated cold
// email: validate the request, fill the prompt template, request a single
// completion from the model.
package mailgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"

	allPrompts "github.com/vanshgarg20/CEG/prompts"
)

const (
	defaultTone = "Confident"
	defaultCTA  = "schedule a quick call"
)

// EmailRequest holds the form fields for a single outreach email. Tone and
// CTA are optional; defaults are applied when the prompt is built.
type EmailRequest struct {
	RecipientName    string `json:"recipient_name"`
	RecipientRole    string `json:"recipient_role"`
	RecipientCompany string `json:"recipient_company"`
	Intent           string `json:"intent"`
	Tone             string `json:"tone,omitempty"`
	CTA              string `json:"cta,omitempty"`
}

// Validate checks that all required fields are non-empty and the intent tag
// is one of the accepted values.
func (r EmailRequest) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"recipient_name", r.RecipientName},
		{"recipient_role", r.RecipientRole},
		{"recipient_company", r.RecipientCompany},
	}
	for _, c := range required {
		if strings.TrimSpace(c.value) == "" {
			return &ValidationError{Field: c.field, Reason: "must not be empty"}
		}
	}
	if _, ok := allPrompts.IntentInstruction(r.Intent); !ok {
		return &ValidationError{
			Field:  "intent",
			Reason: "must be one of " + strings.Join(allPrompts.Intents(), ", "),
		}
	}
	return nil
}

// Persona identifies the sender the emails are written as.
type Persona struct {
	Name    string
	Title   string
	Company string
}

func DefaultPersona() Persona {
	return Persona{Name: "Mohan", Title: "Business Development Executive", Company: "AtliQ"}
}

// BuildPrompt fills the outreach template with the request fields and the
// intent instruction fragment. The result is deterministic for a given
// persona and request. Returns a ValidationError for a bad request.
func (p Persona) BuildPrompt(req EmailRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	instruction, _ := allPrompts.IntentInstruction(req.Intent)

	tone := req.Tone
	if tone == "" {
		tone = defaultTone
	}
	cta := req.CTA
	if cta == "" {
		cta = defaultCTA
	}

	tmpl := prompts.NewPromptTemplate(allPrompts.Outreach, []string{
		"sender_name", "sender_title", "sender_company",
		"recipient_name", "recipient_role", "recipient_company",
		"intent_instruction", "tone", "cta",
	})
	out, err := tmpl.Format(map[string]any{
		"sender_name":        p.Name,
		"sender_title":       p.Title,
		"sender_company":     p.Company,
		"recipient_name":     req.RecipientName,
		"recipient_role":     req.RecipientRole,
		"recipient_company":  req.RecipientCompany,
		"intent_instruction": instruction,
		"tone":               tone,
		"cta":                cta,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render outreach template: %w", err)
	}
	return out, nil
}

// Completer issues single-shot completion calls against an LLM.
type Completer struct {
	LLM     llms.Model
	Timeout time.Duration
}

// Complete sends one prompt to the model and returns the response text.
// A failed call, a timeout, or empty content all surface as UpstreamError.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	out, err := llms.GenerateFromSinglePrompt(ctx, c.LLM, prompt)
	if err != nil {
		return "", &UpstreamError{Reason: "completion call failed", Err: err}
	}
	if strings.TrimSpace(out) == "" {
		return "", &UpstreamError{Reason: "model returned empty content"}
	}
	return out, nil
}

// GenerateEmail runs the full request-scoped pipeline: build the prompt for
// the request, request one completion, return the generated email.
func (c *Completer) GenerateEmail(ctx context.Context, p Persona, req EmailRequest) (string, error) {
	prompt, err := p.BuildPrompt(req)
	if err != nil {
		return "", err
	}
	return c.Complete(ctx, prompt)
}
