package bot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/folderkeeper/internal/logging"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PreservesPerChatOrder(t *testing.T) {
	var mu sync.Mutex
	seen := map[int64][]int{}

	d := NewDispatcher(4, 8, func(_ context.Context, u telegram.Update) {
		mu.Lock()
		seen[u.ChatID] = append(seen[u.ChatID], u.ID)
		mu.Unlock()
	}, logging.Discard())

	ctx := context.Background()
	d.Start(ctx)

	chats := []int64{1, 2, 3, -5, 1_000_000_007}
	for i := 0; i < 50; i++ {
		for _, c := range chats {
			require.NoError(t, d.Dispatch(ctx, telegram.Update{ID: i, ChatID: c}))
		}
	}
	d.Close()

	for _, c := range chats {
		ids := seen[c]
		require.Len(t, ids, 50, "chat %d", c)
		for i, id := range ids {
			assert.Equal(t, i, id)
		}
	}
}

func TestDispatcher_DispatchHonoursContext(t *testing.T) {
	block := make(chan struct{})
	d := NewDispatcher(1, 0, func(context.Context, telegram.Update) { <-block }, logging.Discard())
	d.Start(context.Background())
	defer func() {
		close(block)
		d.Close()
	}()

	// первый апдейт занимает воркер, второй некуда положить
	require.NoError(t, d.Dispatch(context.Background(), telegram.Update{ChatID: 1}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := d.Dispatch(ctx, telegram.Update{ChatID: 1})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDispatcher_Shard(t *testing.T) {
	d := NewDispatcher(3, 0, nil, logging.Discard())
	assert.Equal(t, d.shard(4), d.shard(4))
	assert.Equal(t, 1, d.shard(-4))
	assert.Equal(t, 0, NewDispatcher(0, 0, nil, logging.Discard()).shard(12345))
}
