package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_EnterAndLeave(t *testing.T) {
	s := New(1, i18n.Fa)
	s.Enter(SceneCreateFolder)
	s.Create = &CreateFolderState{Step: CreateName}

	s.Enter(SceneOpenFolder)
	assert.Nil(t, s.Create, "entering a scene drops the previous state")
	assert.Equal(t, SceneOpenFolder, s.Scene)

	s.Open = &OpenFolderState{Step: TargetName}
	s.Leave()
	assert.Equal(t, SceneNone, s.Scene)
	assert.Nil(t, s.Open)
	assert.Equal(t, i18n.Fa, s.Lang, "language survives scene exit")
}

func TestCreateFolderState_History(t *testing.T) {
	c := &CreateFolderState{Step: CreateName}
	assert.False(t, c.Back())
	assert.Equal(t, CreateName, c.Step)

	c.Advance(CreateFiles)
	c.Advance(CreateDescription)
	require.True(t, c.Back())
	assert.Equal(t, CreateFiles, c.Step)
	require.True(t, c.Back())
	assert.Equal(t, CreateName, c.Step)
	assert.False(t, c.Back())
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(i18n.En)

	s, err := st.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), s.ChatID)
	assert.Equal(t, i18n.En, s.Lang)

	s.Enter(SceneSearchFolders)
	s.Search = &SearchState{Query: "trip"}
	require.NoError(t, st.Save(ctx, s))

	got, _ := st.Get(ctx, 42)
	assert.Equal(t, "trip", got.Search.Query)

	require.NoError(t, st.Clear(ctx, 42))
	got, _ = st.Get(ctx, 42)
	assert.Nil(t, got.Search)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(i18n.Fa)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s, _ := st.Get(ctx, id)
			s.Enter(SceneListFolders)
			_ = st.Save(ctx, s)
		}(int64(i % 10))
	}
	wg.Wait()
	assert.Equal(t, 10, st.Len())
}

// fakeRedis хранит значения в map и реализует только нужные команды.
type fakeRedis struct {
	redis.Cmdable
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = exp
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fr := newFakeRedis()
	st := NewRedisStore(fr, time.Hour, i18n.Fa)

	s, err := st.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, i18n.Fa, s.Lang)

	s.Enter(SceneCreateFolder)
	s.Create = &CreateFolderState{Step: CreateFiles, History: []CreateStep{CreateName}, Name: "Trip2024"}
	s.Create.Files = append(s.Create.Files, models.PendingFile{Type: models.FileTypePhoto, FileID: "abc", Size: 10})
	require.NoError(t, st.Save(ctx, s))
	assert.Equal(t, time.Hour, fr.ttls["folderkeeper:session:7"])

	got, err := st.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	require.NoError(t, st.Clear(ctx, 7))
	got, err = st.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, SceneNone, got.Scene)
}

func TestRedisStore_Errors(t *testing.T) {
	ctx := context.Background()
	fr := newFakeRedis()
	st := NewRedisStore(fr, time.Hour, i18n.Fa)

	fr.data[key(3)] = "{not json"
	_, err := st.Get(ctx, 3)
	require.Error(t, err)

	fr.getErr = errors.New("connection refused")
	_, err = st.Get(ctx, 4)
	require.ErrorContains(t, err, "connection refused")
}
