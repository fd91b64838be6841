package main

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"

	"github.com/vanshgarg20/CEG/mailgen"
	"github.com/vanshgarg20/CEG/tools"
)

// scriptedLLM returns its responses in order, repeating the last one once
// the script runs out.
type scriptedLLM struct {
	responses []string
	calls     int
	err       error
}

func (m *scriptedLLM) next() string {
	i := m.calls
	if i >= len(m.responses) {
		i = len(m.responses) - 1
	}
	m.calls++
	return m.responses[i]
}

func (m *scriptedLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{Content: m.next()},
		},
	}, nil
}

func (m *scriptedLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.next(), nil
}

var _ llms.Model = (*scriptedLLM)(nil)

func TestParseJobs(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		count int
	}{
		{"array", `[{"role":"SWE"},{"role":"SRE"}]`, 2},
		{"single object", `{"role":"SWE"}`, 1},
		{"fenced array", "```json\n[{\"role\":\"SWE\"}]\n```", 1},
		{"prose around object", "Sure! Here it is: {\"role\":\"SWE\"} Let me know.", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jobs, err := parseJobs(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(jobs) != tc.count {
				t.Errorf("expected %d jobs, got %d", tc.count, len(jobs))
			}
		})
	}
}

func TestParseJobsInvalid(t *testing.T) {
	if _, err := parseJobs("the page had no openings"); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}

func TestSkillListUnmarshal(t *testing.T) {
	var fromList Job
	if err := json.Unmarshal([]byte(`{"skills":["Go"," Postgres ",""]}`), &fromList); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fromList.Skills) != 2 || fromList.Skills[1] != "Postgres" {
		t.Errorf("unexpected skills from list: %v", fromList.Skills)
	}

	var fromString Job
	if err := json.Unmarshal([]byte(`{"skills":"Go, Postgres, Docker"}`), &fromString); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fromString.Skills) != 3 || fromString.Skills[2] != "Docker" {
		t.Errorf("unexpected skills from string: %v", fromString.Skills)
	}
}

func TestRunCareers(t *testing.T) {
	extractLLM := &scriptedLLM{responses: []string{
		`[{"role":"Backend Engineer","experience":"3+ years","skills":["Go","Postgres"],"description":"Build services."},
		  {"description":"General opening."}]`,
	}}
	emailLLM := &scriptedLLM{responses: []string{"Subject: Hello from AtliQ"}}

	resp, err := runCareers(
		context.Background(),
		"https://example.com/careers",
		"We are hiring engineers.",
		"Confident",
		"Request an Interview",
		tools.ExtractJobsTool{LLM: extractLLM},
		nil,
		tools.DraftEmailTool{LLM: emailLLM, Persona: mailgen.DefaultPersona()},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Count != 2 || len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got count=%d len=%d", resp.Count, len(resp.Results))
	}
	if resp.Results[0].Role != "Backend Engineer" {
		t.Errorf("unexpected role: %q", resp.Results[0].Role)
	}
	if resp.Results[1].Role != "Software Engineer" || resp.Results[1].Experience != "N/A" {
		t.Errorf("expected defaults applied, got role=%q experience=%q",
			resp.Results[1].Role, resp.Results[1].Experience)
	}
	for _, r := range resp.Results {
		if !strings.Contains(r.Email, "Subject:") {
			t.Errorf("expected drafted email, got %q", r.Email)
		}
		if !strings.HasPrefix(r.DownloadName, "email_") || !strings.HasSuffix(r.DownloadName, ".md") {
			t.Errorf("unexpected download name: %q", r.DownloadName)
		}
	}
}

func TestRunCareersInvalidExtraction(t *testing.T) {
	extractLLM := &scriptedLLM{responses: []string{"no jobs on this page, sorry"}}
	emailLLM := &scriptedLLM{responses: []string{"Subject: Hello"}}

	_, err := runCareers(
		context.Background(),
		"https://example.com/careers",
		"page text",
		"", "",
		tools.ExtractJobsTool{LLM: extractLLM},
		nil,
		tools.DraftEmailTool{LLM: emailLLM},
	)
	var uErr *mailgen.UpstreamError
	if !errors.As(err, &uErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestRunCareersEmptyEmail(t *testing.T) {
	extractLLM := &scriptedLLM{responses: []string{`[{"role":"SWE"}]`}}
	emailLLM := &scriptedLLM{responses: []string{"   "}}

	_, err := runCareers(
		context.Background(),
		"https://example.com/careers",
		"page text",
		"", "",
		tools.ExtractJobsTool{LLM: extractLLM},
		nil,
		tools.DraftEmailTool{LLM: emailLLM},
	)
	var uErr *mailgen.UpstreamError
	if !errors.As(err, &uErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}
