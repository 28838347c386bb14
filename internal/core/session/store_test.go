package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeRedis struct {
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestStore_CreateGetSaveDelete(t *testing.T) {
	store := NewStore(newFakeRedis(), time.Hour)
	ctx := context.Background()

	sid, state, err := store.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sid == "" || state == nil {
		t.Fatal("expected fresh session")
	}
	if state.Authenticated {
		t.Fatal("fresh session must start anonymous")
	}

	state.Username = "alice"
	state.Authenticated = true
	if err := store.Save(ctx, sid, state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Get(ctx, sid)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if loaded == nil || loaded.Username != "alice" || !loaded.Authenticated {
		t.Fatalf("round trip lost state: %+v", loaded)
	}

	if err := store.Delete(ctx, sid); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := store.Get(ctx, sid)
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if gone != nil {
		t.Fatal("expected nil state after delete")
	}
}

func TestStore_GetUnknownSession(t *testing.T) {
	store := NewStore(newFakeRedis(), time.Hour)

	state, err := store.Get(context.Background(), "no-such-session")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if state != nil {
		t.Fatalf("expected nil for unknown session, got %+v", state)
	}
}
