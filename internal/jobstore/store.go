// Package jobstore keeps a registry of submitted async generation jobs in
// Redis so a later CLI invocation can list them and resume polling.
package jobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Records expire after a week; terminal jobs are removed explicitly.
const recordTTL = 7 * 24 * time.Hour

// Config holds Redis connection configuration.
type Config struct {
	URL      string
	Password string
}

// Record is one submitted job plus the request metadata needed to assemble
// a result once the job completes.
type Record struct {
	JobID          string    `json:"job_id"`
	Voice          string    `json:"voice"`
	Model          string    `json:"model"`
	CharacterCount int       `json:"character_count"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// Store is a Redis-backed job registry.
type Store struct {
	rdb *redis.Client
}

// New connects to Redis and verifies the connection.
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Store{rdb: rdb}, nil
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// Key helpers
func indexKey() string {
	return "voxa:jobs"
}

func recordKey(jobID string) string {
	return fmt.Sprintf("voxa:job:%s", jobID)
}

// Add registers a submitted job.
func (s *Store) Add(ctx context.Context, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal job record: %w", err)
	}

	if err := s.rdb.Set(ctx, recordKey(rec.JobID), data, recordTTL).Err(); err != nil {
		return fmt.Errorf("failed to set job record: %w", err)
	}

	// Sorted set indexed by submission time so List returns oldest first.
	if err := s.rdb.ZAdd(ctx, indexKey(), redis.Z{
		Score:  float64(rec.SubmittedAt.Unix()),
		Member: rec.JobID,
	}).Err(); err != nil {
		return fmt.Errorf("failed to index job record: %w", err)
	}

	return nil
}

// Get fetches one record; nil when unknown or expired.
func (s *Store) Get(ctx context.Context, jobID string) (*Record, error) {
	data, err := s.rdb.Get(ctx, recordKey(jobID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job record: %w", err)
	}
	return &rec, nil
}

// List returns all registered jobs, oldest first. Expired records are
// skipped and pruned from the index.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	ids, err := s.rdb.ZRange(ctx, indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list job index: %w", err)
	}

	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		rec, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			_ = s.rdb.ZRem(ctx, indexKey(), id).Err()
			continue
		}
		records = append(records, *rec)
	}
	return records, nil
}

// Remove drops a job from the registry once it reaches a terminal status.
func (s *Store) Remove(ctx context.Context, jobID string) error {
	if err := s.rdb.Del(ctx, recordKey(jobID)).Err(); err != nil {
		return fmt.Errorf("failed to delete job record: %w", err)
	}
	if err := s.rdb.ZRem(ctx, indexKey(), jobID).Err(); err != nil {
		return fmt.Errorf("failed to unindex job record: %w", err)
	}
	return nil
}
