package crew

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	redisclient "github.com/fiveparsecs/campaign-api/internal/redis"
)

const (
	crewKeyPrefix = "crew:"
	crewIndexKey  = "crew:all"

	// Error messages
	errCrewNil     = "crew cannot be nil"
	errCrewIDEmpty = "crew ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis crew repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed crew repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Crew == nil {
		return nil, errors.InvalidArgument(errCrewNil)
	}
	if input.Crew.ID == "" {
		return nil, errors.InvalidArgument(errCrewIDEmpty)
	}

	key := crewKeyPrefix + input.Crew.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("crew with ID %s already exists", input.Crew.ID)
	}

	data, err := json.Marshal(input.Crew)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal crew")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, crewIndexKey, input.Crew.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create crew")
	}

	return &CreateOutput{Crew: input.Crew}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCrewIDEmpty)
	}

	key := crewKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("crew with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get crew")
	}

	var crew entities.CampaignCrew
	if err := json.Unmarshal([]byte(result), &crew); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal crew")
	}

	return &GetOutput{Crew: &crew}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Crew == nil {
		return nil, errors.InvalidArgument(errCrewNil)
	}
	if input.Crew.ID == "" {
		return nil, errors.InvalidArgument(errCrewIDEmpty)
	}

	if _, err := r.Get(ctx, GetInput{ID: input.Crew.ID}); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Crew)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal crew")
	}

	if err := r.client.Set(ctx, crewKeyPrefix+input.Crew.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update crew")
	}

	return &UpdateOutput{Crew: input.Crew}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCrewIDEmpty)
	}

	if _, err := r.Get(ctx, GetInput{ID: input.ID}); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, crewKeyPrefix+input.ID)
	pipe.SRem(ctx, crewIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete crew")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	crewIDs, err := r.client.SMembers(ctx, crewIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get crews from index")
	}

	crews := make([]*entities.CampaignCrew, 0, len(crewIDs))
	for _, id := range crewIDs {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "crew not found, cleaning up index", "crew_id", id)
				r.client.SRem(ctx, crewIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get crew %s", id)
		}
		crews = append(crews, getOutput.Crew)
	}

	return &ListOutput{Crews: crews}, nil
}
