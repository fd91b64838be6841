package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"
)

type mockLLM struct {
	response string
	err      error
}

func (m *mockLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{Content: m.response},
		},
	}, nil
}

func (m *mockLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

var _ llms.Model = (*mockLLM)(nil)

func TestExtractKeys(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2}
	keys := extractKeys(m)
	if len(keys) != 2 {
		t.Errorf("expected 2 keys, got %d", len(keys))
	}

	expected := map[string]bool{"a": true, "b": true}
	for _, k := range keys {
		if !expected[k] {
			t.Errorf("unexpected key: %s", k)
		}
	}
}

func TestRunPrompt(t *testing.T) {
	mock := &mockLLM{response: "mock output"}
	input := map[string]any{"var1": "value"}
	out, err := RunPrompt(context.Background(), mock, "Template with {{.var1}}", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "mock output" {
		t.Errorf("expected 'mock output', got %q", out)
	}
}

func TestRunPromptAsync(t *testing.T) {
	mock := &mockLLM{response: "async output"}
	input := map[string]any{"foo": "bar"}
	ch := RunPromptAsync(context.Background(), mock, "Hi {{.foo}}", input)
	result := <-ch
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Response != "async output" {
		t.Errorf("expected 'async output', got %q", result.Response)
	}
}

func TestRunPrompt_Error(t *testing.T) {
	mock := &mockLLM{err: os.ErrNotExist}
	_, err := RunPrompt(context.Background(), mock, "any", map[string]any{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRunPromptAsync_Error(t *testing.T) {
	mock := &mockLLM{err: os.ErrNotExist}
	ch := RunPromptAsync(context.Background(), mock, "any", map[string]any{})
	result := <-ch
	if result.Err == nil {
		t.Fatal("expected error, got nil")
	}
	if result.Response != "" {
		t.Errorf("expected empty response, got %q", result.Response)
	}
}

func TestCleanText(t *testing.T) {
	in := "<div>Senior   Go Engineer</div>\n\n\n\nApply at https://jobs.example.com/123 today!"
	out := CleanText(in)

	if strings.Contains(out, "<div>") || strings.Contains(out, "</div>") {
		t.Errorf("expected tags stripped, got %q", out)
	}
	if strings.Contains(out, "https://") {
		t.Errorf("expected URLs stripped, got %q", out)
	}
	if strings.Contains(out, "  ") {
		t.Errorf("expected whitespace collapsed, got %q", out)
	}
	if !strings.Contains(out, "Senior Go Engineer") {
		t.Errorf("expected content preserved, got %q", out)
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare array", `[{"role":"SWE"}]`, `[{"role":"SWE"}]`},
		{"fenced", "```json\n[{\"role\":\"SWE\"}]\n```", `[{"role":"SWE"}]`},
		{"surrounding prose", "Here you go:\n{\"role\":\"SWE\"}\nHope that helps!", `{"role":"SWE"}`},
		{"no json", "no structured data here", "no structured data here"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractJSON(tc.in); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDownloadName(t *testing.T) {
	name := DownloadName("email")
	if !strings.HasPrefix(name, "email_") {
		t.Errorf("expected email_ prefix, got %q", name)
	}
	if !strings.HasSuffix(name, ".md") {
		t.Errorf("expected .md suffix, got %q", name)
	}
}

func TestFetchAndClean(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><h1>Careers</h1><p>Backend   Engineer, Go</p></body></html>"))
	}))
	defer srv.Close()

	out, err := FetchAndClean(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Careers") || !strings.Contains(out, "Backend Engineer, Go") {
		t.Errorf("expected page text in output, got %q", out)
	}
	if strings.Contains(out, "<") {
		t.Errorf("expected markup removed, got %q", out)
	}
}

func TestFetchAndClean_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := FetchAndClean(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
