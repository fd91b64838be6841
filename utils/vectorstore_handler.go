package utils

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/textsplitter"
	"github.com/tmc/langchaingo/vectorstores/chroma"

	"github.com/vanshgarg20/CEG/portfolio"
)

// LoadPortfolioToVectorStore embeds the portfolio CSV into the Chroma
// collection so that job skills can be matched to showcase links. Each row
// becomes a document carrying its links in metadata; oversized tech stack
// descriptions are chunked before embedding.
func LoadPortfolioToVectorStore(ctx context.Context, store *chroma.Store, path string) error {
	entries, err := portfolio.Load(path)
	if err != nil {
		return err
	}

	docs := make([]schema.Document, 0, len(entries))
	for _, e := range entries {
		if e.Techstack == "" {
			continue
		}
		docs = append(docs, schema.Document{
			PageContent: "Techstack: " + e.Techstack,
			Metadata: map[string]any{
				"source": path,
				"links":  e.Links,
			},
		})
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(512),
		textsplitter.WithChunkOverlap(0),
	)
	docs, err = textsplitter.SplitDocuments(splitter, docs)
	if err != nil {
		return fmt.Errorf("failed to split portfolio entries: %w", err)
	}

	for i, doc := range docs {
		fmt.Printf("Chunk %d:\n%s\n---\n", i+1, doc.PageContent)
	}

	_, err = store.AddDocuments(ctx, docs)
	if err != nil {
		slog.Warn("Error adding documents", "error", err)
		return fmt.Errorf("error adding documents: %w", err)
	}
	return nil
}
