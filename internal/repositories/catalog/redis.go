package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
	"github.com/KirkDiggler/rpg-gearset/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-gearset/internal/redis"
)

const catalogKeyPrefix = "catalog:items:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog repository.
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

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// catalogData is what gets serialized to Redis
type catalogData struct {
	Name  string      `json:"name"`
	Items []gear.Item `json:"items"`
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("catalog %s not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get catalog %s", input.Name)
	}

	var data catalogData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal catalog %s", input.Name)
	}
	if err := Validate(data.Items); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "stored catalog %s is invalid", input.Name)
	}

	return &GetOutput{
		Name:  input.Name,
		Items: data.Items,
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if err := Validate(input.Items); err != nil {
		return nil, err
	}

	items := input.Items
	if items == nil {
		items = []gear.Item{}
	}
	jsonData, err := json.Marshal(catalogData{
		Name:  input.Name,
		Items: items,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal catalog %s", input.Name)
	}

	if err := r.client.Set(ctx, GetKey(input.Name), jsonData, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store catalog %s", input.Name)
	}

	return &PutOutput{
		Name:  input.Name,
		Count: len(input.Items),
	}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	var names []string
	iter := r.client.Scan(ctx, 0, catalogKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), catalogKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan catalogs")
	}
	slices.Sort(names)

	return &ListOutput{Names: slices.Compact(names)}, nil
}

// GetKey returns the Redis key for a catalog
// Exposed for testing purposes
func GetKey(name string) string {
	return fmt.Sprintf("%s%s", catalogKeyPrefix, name)
}
