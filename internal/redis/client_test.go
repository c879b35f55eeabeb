package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-gearset/internal/errors"
	"github.com/KirkDiggler/rpg-gearset/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	client, err := redis.NewClient("", nil)
	assert.Nil(t, client)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPing(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{MaxRetries: -1})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.NoError(t, redis.Ping(context.Background(), client))

	mr.Close()
	err = redis.Ping(context.Background(), client)
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
}
