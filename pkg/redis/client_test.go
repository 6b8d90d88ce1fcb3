package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestClientOperations(t *testing.T) {
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	require.NoError(t, Set(ctx, "k", "v", time.Minute))

	got, err := Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v", got)

	ok, err := SetNX(ctx, "k", "other", time.Minute)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, Del(ctx, "k"))

	ok, err = SetNX(ctx, "k", "other", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestInit_BadURL(t *testing.T) {
	require.Error(t, Init("not-a-url", ""))
}
