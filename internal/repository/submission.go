package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/rockpaperscissors/internal/entity"
)

var ErrSubmissionNotFound = errors.New("submission not found")

type SubmissionRepository interface {
	Create(ctx context.Context, submission *entity.Submission) (bool, error)
	Save(ctx context.Context, submission *entity.Submission) error
	GetByMatchID(ctx context.Context, matchID string) (*entity.Submission, error)
}

type dbSubmission struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSubmissionRepository(client *redis.Client, ttl time.Duration) SubmissionRepository {
	return &dbSubmission{
		client: client,
		ttl:    ttl,
	}
}

// Create - stores the submission only if the match has none yet. Reports false when one already exists.
func (that *dbSubmission) Create(ctx context.Context, submission *entity.Submission) (bool, error) {
	submissionJSON, err := json.Marshal(submission)
	if err != nil {
		return false, fmt.Errorf("could not marshal submission: %w", err)
	}

	created, err := that.client.SetNX(ctx, submissionKey(submission.MatchID), submissionJSON, that.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to create submission: %w", err)
	}

	return created, nil
}

func (that *dbSubmission) Save(ctx context.Context, submission *entity.Submission) error {
	submissionJSON, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("could not marshal submission: %w", err)
	}

	if err = that.client.Set(ctx, submissionKey(submission.MatchID), submissionJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set submission: %w", err)
	}

	return nil
}

func (that *dbSubmission) GetByMatchID(ctx context.Context, matchID string) (*entity.Submission, error) {
	response, err := that.client.Get(ctx, submissionKey(matchID)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrSubmissionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get submission by match id: %w", err)
	}

	var submission entity.Submission
	if err = json.Unmarshal([]byte(response), &submission); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
	}

	return &submission, nil
}

func submissionKey(matchID string) string {
	return "submission:" + matchID
}
