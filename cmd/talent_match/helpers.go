package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/hire3x/talent-match/internal/embedding"
	"github.com/hire3x/talent-match/internal/fetch"
	"github.com/hire3x/talent-match/internal/schemas"
	"github.com/hire3x/talent-match/internal/store"
	"github.com/hire3x/talent-match/internal/types"
)

const (
	jobSchemaPath       = "schemas/job_description.schema.json"
	candidateSchemaPath = "schemas/candidate_profile.schema.json"
)

// newEmbedder picks the embedding backend: Gemini when an API key is
// configured, the deterministic hash embedder otherwise.
func newEmbedder(ctx context.Context, apiKey, model string) (embedding.Embedder, error) {
	if apiKey == "" {
		log.Printf("[cli] no API key configured, using hash embedder")
		return embedding.NewHashEmbedder(0), nil
	}
	return embedding.NewGeminiEmbedder(ctx, apiKey, model)
}

// openStore connects to PostgreSQL when a database URL is configured and falls
// back to the in-memory store otherwise. The returned func releases the store.
func openStore(ctx context.Context, databaseURL string, embedder embedding.Embedder) (store.CandidateStore, func(), error) {
	if databaseURL == "" {
		log.Printf("[cli] no database configured, using in-memory store")
		return store.NewMemory(embedder), func() {}, nil
	}

	pg, err := store.ConnectPostgres(ctx, databaseURL, embedder)
	if err != nil {
		return nil, nil, err
	}
	if err := pg.EnsureSchema(ctx); err != nil {
		pg.Close()
		return nil, nil, err
	}
	return pg, pg.Close, nil
}

// loadJob reads a job description from a JSON file, checking it against the
// job schema when the schema file can be located.
func loadJob(path string) (*types.JobDescription, error) {
	if schemaPath := schemas.ResolveSchemaPath(jobSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("job description failed schema validation: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	var job types.JobDescription
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	return &job, nil
}

// jobFromURL fetches a job posting and wraps its extracted text in a
// JobDescription. Falls back to headless browser rendering when the plain
// fetch yields too little content.
func jobFromURL(ctx context.Context, urlStr, title, company, experienceLevel string, useBrowser, verbose bool) (*types.JobDescription, error) {
	fetcher := fetch.NewCachedFetcher(nil)
	result, err := fetcher.Fetch(ctx, urlStr)
	if err != nil {
		return nil, err
	}
	text := result.Text

	if useBrowser || fetch.ShouldUseBrowser(text) {
		html, browserErr := fetch.BrowserSimple(ctx, urlStr, verbose)
		if browserErr != nil {
			log.Printf("[cli] browser rendering failed, keeping plain fetch: %v", browserErr)
		} else {
			platform := fetch.DetectPlatform(urlStr)
			rendered, extractErr := fetch.ExtractMainText(html, fetch.PlatformContentSelectors(platform))
			if extractErr == nil && len(rendered) > len(text) {
				text = rendered
			}
		}
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no job content extracted from %s", urlStr)
	}

	return &types.JobDescription{
		ID:              uuid.NewString(),
		Title:           title,
		Company:         company,
		Description:     text,
		ExperienceLevel: experienceLevel,
	}, nil
}

// loadCandidates reads a JSON array of candidate profiles, checking each
// element against the candidate schema when the schema file can be located.
func loadCandidates(path string) ([]*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse candidates JSON (expected an array): %w", err)
	}

	var schemaContent string
	if schemaPath := schemas.ResolveSchemaPath(candidateSchemaPath); schemaPath != "" {
		if content, err := os.ReadFile(schemaPath); err == nil {
			schemaContent = string(content)
		}
	}

	candidates := make([]*types.CandidateProfile, 0, len(raw))
	for i, doc := range raw {
		if schemaContent != "" {
			if err := schemas.ValidateJSONString(schemaContent, string(doc)); err != nil {
				return nil, fmt.Errorf("candidate %d failed schema validation: %w", i, err)
			}
		}
		var candidate types.CandidateProfile
		if err := json.Unmarshal(doc, &candidate); err != nil {
			return nil, fmt.Errorf("failed to parse candidate %d: %w", i, err)
		}
		candidates = append(candidates, &candidate)
	}
	return candidates, nil
}
