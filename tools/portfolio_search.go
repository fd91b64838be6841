package tools

import (
	"context"
	"encoding/json"

	"github.com/tmc/langchaingo/tools"
	"github.com/tmc/langchaingo/vectorstores/chroma"
)

type PortfolioSearchTool struct {
	Store *chroma.Store
}

func (t PortfolioSearchTool) Name() string {
	return "portfolio_search"
}

func (t PortfolioSearchTool) Description() string {
	return "Search the portfolio vector store for work samples matching a skills description. Returns JSON array of {score, links}."
}

func (t PortfolioSearchTool) Call(ctx context.Context, input string) (string, error) {
	results, err := t.Store.SimilaritySearch(ctx, input, 2)
	if err != nil {
		return "", err
	}
	var matches []map[string]any
	for _, r := range results {
		matches = append(matches, map[string]any{
			"score": r.Score,
			"links": r.Metadata["links"],
		})
	}
	b, _ := json.Marshal(matches)
	return string(b), nil
}

var _ tools.Tool = (*PortfolioSearchTool)(nil)
