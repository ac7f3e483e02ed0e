package campaign

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
	campaignKeyPrefix = "campaign:"
	campaignIndexKey  = "campaign:all"

	// Error messages
	errCampaignNil     = "campaign cannot be nil"
	errCampaignIDEmpty = "campaign ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis campaign repository.
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

// NewRedis creates a new Redis-backed campaign repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Campaign == nil {
		return nil, errors.InvalidArgument(errCampaignNil)
	}
	if input.Campaign.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	key := campaignKeyPrefix + input.Campaign.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("campaign with ID %s already exists", input.Campaign.ID)
	}

	data, err := json.Marshal(input.Campaign)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal campaign")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, campaignIndexKey, input.Campaign.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create campaign")
	}

	return &CreateOutput{Campaign: input.Campaign}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	key := campaignKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("campaign with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get campaign")
	}

	var campaign entities.Campaign
	if err := json.Unmarshal([]byte(result), &campaign); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal campaign")
	}

	return &GetOutput{Campaign: &campaign}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Campaign == nil {
		return nil, errors.InvalidArgument(errCampaignNil)
	}
	if input.Campaign.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	if _, err := r.Get(ctx, GetInput{ID: input.Campaign.ID}); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Campaign)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal campaign")
	}

	if err := r.client.Set(ctx, campaignKeyPrefix+input.Campaign.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update campaign")
	}

	return &UpdateOutput{Campaign: input.Campaign}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	if _, err := r.Get(ctx, GetInput{ID: input.ID}); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, campaignKeyPrefix+input.ID)
	pipe.SRem(ctx, campaignIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete campaign")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	campaignIDs, err := r.client.SMembers(ctx, campaignIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get campaigns from index")
	}

	campaigns := make([]*entities.Campaign, 0, len(campaignIDs))
	for _, id := range campaignIDs {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "campaign not found, cleaning up index", "campaign_id", id)
				r.client.SRem(ctx, campaignIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get campaign %s", id)
		}
		campaigns = append(campaigns, getOutput.Campaign)
	}

	return &ListOutput{Campaigns: campaigns}, nil
}
