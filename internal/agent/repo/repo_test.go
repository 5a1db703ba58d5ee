package repo

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cloudwego/eino/schema"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proraahi-core/server/internal/agent/model"
	errx "github.com/proraahi-core/server/internal/core/error"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestRedisConversationRepository(t *testing.T) {
	mr, rdb := newRedis(t)
	repo := NewRedisConversationRepository(rdb, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.AddMessage(ctx, "s-1", schema.UserMessage("train to Ranchi")))
	require.NoError(t, repo.AddMessage(ctx, "s-1", schema.AssistantMessage("From where?", nil)))

	h, err := repo.LoadHistory(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, h.Messages, 2)
	assert.Equal(t, "s-1", h.SessionID)
	assert.Equal(t, schema.User, h.Messages[0].Role)
	assert.Equal(t, "From where?", h.Messages[1].Content)

	n, err := repo.GetMessageCount(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, time.Hour, mr.TTL("session:s-1:messages"))

	require.NoError(t, repo.ClearHistory(ctx, "s-1"))
	h, err = repo.LoadHistory(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, h.Messages)
}

func TestRedisConversationRepository_ConnectionError(t *testing.T) {
	mr, rdb := newRedis(t)
	repo := NewRedisConversationRepository(rdb, 0)
	mr.Close()

	err := repo.AddMessage(context.Background(), "s-1", schema.UserMessage("hi"))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, errx.StatusOf(err))
}

func TestRedisSessionStore(t *testing.T) {
	mr, rdb := newRedis(t)
	store := NewRedisSessionStore(rdb, 2*time.Hour)
	ctx := context.Background()

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	sc := &model.SessionContext{
		SessionID: "s-1",
		Intent:    model.IntentTransportBooking,
		Stage:     model.StageInformationGathering,
		Entities:  model.Entities{model.SlotFromLocation: "Delhi"},
		Language:  "en",
		Turns:     1,
	}
	require.NoError(t, store.Put(ctx, "s-1", sc))
	assert.Equal(t, 2*time.Hour, mr.TTL("session:s-1:context"))

	got, err = store.Get(ctx, "s-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.AwaitingSlots())
	from, _ := got.Entities.String(model.SlotFromLocation)
	assert.Equal(t, "Delhi", from)

	require.NoError(t, mr.Set("session:s-2:context", "{not json"))
	got, err = store.Get(ctx, "s-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionStore_CopiesEntities(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	e := model.Entities{model.SlotLocation: "Ranchi"}
	require.NoError(t, store.Put(ctx, "s-1", &model.SessionContext{SessionID: "s-1", Entities: e}))
	e[model.SlotLocation] = "Deoghar"

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	loc, _ := got.Entities.String(model.SlotLocation)
	assert.Equal(t, "Ranchi", loc)
}
