package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetReadsThroughLocalLayer(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewClientWithRedis(db)
	ctx := context.Background()

	mock.ExpectGet("embedding:m:abc").SetVal(`{"value":[1]}`)

	v, err := c.Get(ctx, "embedding:m:abc")
	require.NoError(t, err)
	assert.Equal(t, `{"value":[1]}`, v)

	// served from the in-process layer, no second redis call expected
	v, err = c.Get(ctx, "embedding:m:abc")
	require.NoError(t, err)
	assert.Equal(t, `{"value":[1]}`, v)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_GetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewClientWithRedis(db)

	mock.ExpectGet("missing").RedisNil()

	_, err := c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_GetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewClientWithRedis(db)

	mock.ExpectGet("k").SetErr(errors.New("connection reset"))

	_, err := c.Get(context.Background(), "k")
	assert.ErrorContains(t, err, "connection reset")
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestClient_SetAndDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewClientWithRedis(db)
	ctx := context.Background()

	mock.ExpectSet("k", "v", time.Hour).SetVal("OK")
	require.NoError(t, c.Set(ctx, "k", "v", time.Hour))

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	mock.ExpectDel("k").SetVal(1)
	require.NoError(t, c.Delete(ctx, "k"))

	mock.ExpectGet("k").RedisNil()
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_SetFailureSkipsLocalLayer(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewClientWithRedis(db)
	ctx := context.Background()

	mock.ExpectSet("k", "v", time.Hour).SetErr(errors.New("readonly"))
	assert.Error(t, c.Set(ctx, "k", "v", time.Hour))

	mock.ExpectGet("k").RedisNil()
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_CloseStopsLocalJanitor(t *testing.T) {
	db, _ := redismock.NewClientMock()
	c := NewClientWithRedis(db).(*client)

	require.NotNil(t, c.stopLocal)
	assert.NoError(t, c.Close())
	// stopping twice must not panic on the closed channel
	assert.NotPanics(t, c.stopLocal)
}
