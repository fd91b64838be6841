package utils

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
)

func extractKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func RunPrompt(ctx context.Context, llm llms.Model, templateStr string, input map[string]any) (string, error) {
	tmpl := prompts.NewPromptTemplate(templateStr, extractKeys(input))
	chain := chains.NewLLMChain(llm, tmpl)
	out, err := chain.Call(ctx, input)
	if err != nil {
		return "", err
	}
	return out["text"].(string), nil
}

type PromptResult struct {
	Response string
	Err      error
}

func RunPromptAsync(ctx context.Context, llm llms.Model, tmpl string, vars map[string]any) <-chan PromptResult {
	ch := make(chan PromptResult)
	go func() {
		resp, err := RunPrompt(ctx, llm, tmpl, vars)
		ch <- PromptResult{Response: resp, Err: err}
	}()
	return ch
}

var (
	tagRe        = regexp.MustCompile(`<[^>]*?>`)
	urlRe        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	specialRe    = regexp.MustCompile(`[^a-zA-Z0-9 .,:;!?'\-\n]`)
	whitespaceRe = regexp.MustCompile(`[ \t]{2,}`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// CleanText strips leftover markup, URLs and odd characters from scraped
// page text and collapses runs of whitespace.
func CleanText(text string) string {
	text = tagRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "")
	text = specialRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

var pageClient = &http.Client{Timeout: 30 * time.Second}

// FetchAndClean downloads a careers page and returns its cleaned text
// content.
func FetchAndClean(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build page request: %w", err)
	}
	resp, err := pageClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s returned status %d", url, resp.StatusCode)
	}

	docs, err := documentloaders.NewHTML(resp.Body).Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to parse page HTML: %w", err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("no readable content at %s", url)
	}
	return CleanText(docs[0].PageContent), nil
}

// ExtractJSON trims markdown code fences and surrounding prose from model
// output, leaving the outermost JSON value. Models asked for "ONLY JSON"
// still wrap it often enough that this is needed.
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)
	start := strings.IndexAny(s, "[{")
	if start == -1 {
		return s
	}
	end := strings.LastIndexAny(s, "]}")
	if end < start {
		return s
	}
	return s[start : end+1]
}

// DownloadName returns a timestamped markdown filename for a generated
// email, e.g. email_20250115_142300.md.
func DownloadName(prefix string) string {
	return fmt.Sprintf("%s_%s.md", prefix, time.Now().Format("20060102_150405"))
}
