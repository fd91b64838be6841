package main

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/vanshgarg20/CEG/mailgen"
	"github.com/vanshgarg20/CEG/tools"
	"github.com/vanshgarg20/CEG/utils"
)

// Job is one posting extracted from a careers page. Skills tolerates both a
// JSON array and a comma-separated string, since models return either.
type Job struct {
	Role        string    `json:"role"`
	Experience  string    `json:"experience"`
	Skills      skillList `json:"skills"`
	Description string    `json:"description"`
}

type skillList []string

func (s *skillList) UnmarshalJSON(b []byte) error {
	var asList []string
	if err := json.Unmarshal(b, &asList); err == nil {
		*s = trimAll(asList)
		return nil
	}
	var asString string
	if err := json.Unmarshal(b, &asString); err == nil {
		*s = trimAll(strings.Split(asString, ","))
		return nil
	}
	var asAny []any
	if err := json.Unmarshal(b, &asAny); err == nil {
		out := make([]string, 0, len(asAny))
		for _, v := range asAny {
			if str, ok := v.(string); ok && strings.TrimSpace(str) != "" {
				out = append(out, strings.TrimSpace(str))
			}
		}
		*s = out
		return nil
	}
	*s = nil
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

type JobResult struct {
	Role         string   `json:"role"`
	Description  string   `json:"description"`
	Experience   string   `json:"experience"`
	Skills       []string `json:"skills"`
	Email        string   `json:"email"`
	DownloadName string   `json:"download_name"`
}

type CareersResponse struct {
	URL     string      `json:"url"`
	Count   int         `json:"count"`
	Results []JobResult `json:"results"`
}

// runCareers turns cleaned careers page text into one drafted cold email per
// extracted posting. The portfolio tool is optional; when it is nil or
// fails, emails are drafted without portfolio links.
func runCareers(
	ctx context.Context,
	url string,
	pageText string,
	tone string,
	cta string,
	extractTool tools.ExtractJobsTool,
	portfolioTool *tools.PortfolioSearchTool,
	emailTool tools.DraftEmailTool,
) (CareersResponse, error) {
	extractResp, err := extractTool.Call(ctx, pageText)
	if err != nil {
		return CareersResponse{}, &mailgen.UpstreamError{Reason: "job extraction failed", Err: err}
	}

	jobs, err := parseJobs(extractResp)
	if err != nil {
		return CareersResponse{}, &mailgen.UpstreamError{Reason: "job extraction returned invalid JSON", Err: err}
	}

	results := make([]JobResult, 0, len(jobs))
	for _, job := range jobs {
		if job.Role == "" {
			job.Role = "Software Engineer"
		}
		if job.Experience == "" {
			job.Experience = "N/A"
		}

		links := lookupLinks(ctx, portfolioTool, job)

		payload := map[string]any{
			"role":        job.Role,
			"experience":  job.Experience,
			"skills":      []string(job.Skills),
			"description": job.Description,
			"tone":        tone,
			"cta":         cta,
		}
		if len(links) > 0 {
			payload["portfolio_links"] = links
		}
		jobJSON, err := json.Marshal(payload)
		if err != nil {
			return CareersResponse{}, err
		}

		email, err := emailTool.Call(ctx, string(jobJSON))
		if err != nil {
			return CareersResponse{}, &mailgen.UpstreamError{Reason: "email drafting failed", Err: err}
		}
		if strings.TrimSpace(email) == "" {
			return CareersResponse{}, &mailgen.UpstreamError{Reason: "model returned empty content"}
		}

		results = append(results, JobResult{
			Role:         job.Role,
			Description:  job.Description,
			Experience:   job.Experience,
			Skills:       job.Skills,
			Email:        email,
			DownloadName: utils.DownloadName("email"),
		})
	}

	return CareersResponse{URL: url, Count: len(results), Results: results}, nil
}

// parseJobs decodes the extraction output, tolerating a single object in
// place of an array and code-fenced JSON.
func parseJobs(raw string) ([]Job, error) {
	cleaned := utils.ExtractJSON(raw)

	var jobs []Job
	if err := json.Unmarshal([]byte(cleaned), &jobs); err == nil {
		return jobs, nil
	}

	var single Job
	if err := json.Unmarshal([]byte(cleaned), &single); err != nil {
		return nil, err
	}
	return []Job{single}, nil
}

func lookupLinks(ctx context.Context, portfolioTool *tools.PortfolioSearchTool, job Job) []string {
	if portfolioTool == nil || len(job.Skills) == 0 {
		return nil
	}

	resp, err := portfolioTool.Call(ctx, strings.Join(job.Skills, " "))
	if err != nil {
		log.Printf("portfolio search failed, drafting without links: %v", err)
		return nil
	}

	var matches []struct {
		Links string `json:"links"`
	}
	if err := json.Unmarshal([]byte(resp), &matches); err != nil {
		log.Printf("failed to parse portfolio matches, drafting without links: %v", err)
		return nil
	}

	var links []string
	for _, m := range matches {
		if m.Links != "" {
			links = append(links, m.Links)
		}
	}
	return links
}
