package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hire3x/talent-match/internal/embedding"
	"github.com/hire3x/talent-match/internal/types"
)

// Postgres is a CandidateStore backed by a PostgreSQL table holding the
// candidate document, flattened metadata (jsonb) and the embedding vector.
// Nearest-neighbor ranking is done in process over the filtered rows.
type Postgres struct {
	pool     *pgxpool.Pool
	embedder embedding.Embedder
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string, embedder embedding.Embedder) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Postgres{pool: pool, embedder: embedder}, nil
}

// Close closes the connection pool.
func (s *Postgres) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the candidates table if it does not exist.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS candidates (
			id         TEXT PRIMARY KEY,
			document   TEXT NOT NULL,
			metadata   JSONB NOT NULL,
			embedding  REAL[] NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create candidates table: %w", err)
	}
	return nil
}

// AddCandidate embeds and upserts one candidate.
func (s *Postgres) AddCandidate(ctx context.Context, candidate *types.CandidateProfile) error {
	if candidate.ID == "" {
		return fmt.Errorf("candidate has no id")
	}

	document := candidate.ToText()
	vector, err := s.embedder.Embed(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to embed candidate %s: %w", candidate.ID, err)
	}

	metadataJSON, err := json.Marshal(candidate.Metadata())
	if err != nil {
		return fmt.Errorf("failed to marshal metadata for %s: %w", candidate.ID, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO candidates (id, document, metadata, embedding)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET document = $2, metadata = $3, embedding = $4, updated_at = NOW()`,
		candidate.ID, document, metadataJSON, vector,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert candidate %s: %w", candidate.ID, err)
	}
	return nil
}

// AddCandidates upserts a batch of candidates, one embedding call per profile.
func (s *Postgres) AddCandidates(ctx context.Context, candidates []*types.CandidateProfile) error {
	for _, c := range candidates {
		if err := s.AddCandidate(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// GetCandidate retrieves the stored metadata for one candidate, or nil if absent.
func (s *Postgres) GetCandidate(ctx context.Context, id string) (map[string]any, error) {
	var metadataJSON []byte
	err := s.pool.QueryRow(ctx,
		`SELECT metadata FROM candidates WHERE id = $1`, id,
	).Scan(&metadataJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate %s: %w", id, err)
	}

	var metadata map[string]any
	if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
		return nil, fmt.Errorf("failed to decode metadata for %s: %w", id, err)
	}
	return metadata, nil
}

// DeleteCandidate removes a candidate from the store.
func (s *Postgres) DeleteCandidate(ctx context.Context, id string) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}

// Count returns the number of stored candidates.
func (s *Postgres) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return count, nil
}

// Search embeds the query text, applies the filter in SQL, ranks the surviving
// rows by cosine distance and returns the topK closest hits.
func (s *Postgres) Search(ctx context.Context, queryText string, topK int, filter *Filter) ([]Hit, error) {
	vector, err := s.embedder.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	where, args, err := buildWhere(filter)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, metadata, embedding FROM candidates` + where
	log.Printf("[store] executing search top_k=%d clauses=%d", topK, len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var (
			id           string
			metadataJSON []byte
			candVector   []float32
		)
		if err := rows.Scan(&id, &metadataJSON, &candVector); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}

		var metadata map[string]any
		if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata for %s: %w", id, err)
		}

		distance := CosineDistance(vector, candVector)
		hits = append(hits, Hit{ID: id, Distance: &distance, Metadata: metadata})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidate rows: %w", err)
	}

	sort.SliceStable(hits, func(i, j int) bool { return *hits[i].Distance < *hits[j].Distance })
	if topK > 0 && len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}

var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// buildWhere translates a Filter into a SQL WHERE fragment over the jsonb
// metadata column. Field names are restricted to plain identifiers; values are
// always bound as parameters.
func buildWhere(filter *Filter) (string, []any, error) {
	if filter.Empty() {
		return "", nil, nil
	}

	where := " WHERE 1=1"
	args := make([]any, 0, len(filter.Clauses))
	for _, clause := range filter.Clauses {
		if !identPattern.MatchString(clause.Field) {
			return "", nil, fmt.Errorf("invalid filter field: %q", clause.Field)
		}
		args = append(args, clause.Value)
		switch clause.Op {
		case OpGTE:
			where += fmt.Sprintf(" AND (metadata->>'%s')::double precision >= $%d", clause.Field, len(args))
		case OpEQ:
			where += fmt.Sprintf(" AND metadata->>'%s' = $%d", clause.Field, len(args))
		default:
			return "", nil, fmt.Errorf("unsupported filter operator: %q", clause.Op)
		}
	}
	return where, args, nil
}
