package kv

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string   `json:"id"`
	Tags []string `json:"tags"`
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory(), discardLogger())

	var out item
	ok, err := s.GetJSON(ctx, "item", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetJSON(ctx, "item", item{ID: "a", Tags: []string{"go"}}))
	ok, err = s.GetJSON(ctx, "item", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, item{ID: "a", Tags: []string{"go"}}, out)

	exists, err := s.Exists(ctx, "item")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, "item"))
	ok, err = s.GetJSON(ctx, "item", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_MalformedValueIsClearedAndAbsent(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	mem := NewMemory()
	s := NewStore(mem, log.New(&buf, "", 0))

	require.NoError(t, s.SetRaw(ctx, "projects", []byte(`{not json`)))

	var out []item
	ok, err := s.GetJSON(ctx, "projects", &out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "[KV] malformed value")
	assert.Contains(t, buf.String(), "key=projects")

	_, present, err := mem.Get(ctx, "projects")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestStore_WrongShapeIsMalformed(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory(), discardLogger())
	require.NoError(t, s.SetRaw(ctx, "joinedProjects", []byte(`{"id":"x"}`)))

	var ids []string
	ok, err := s.GetJSON(ctx, "joinedProjects", &ids)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_NullValueIsClearedAndAbsent(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	mem := NewMemory()
	s := NewStore(mem, log.New(&buf, "", 0))
	require.NoError(t, s.SetRaw(ctx, "user", []byte(" null ")))

	var changed []string
	s.OnChange(func(key string) { changed = append(changed, key) })

	var out item
	ok, err := s.GetJSON(ctx, "user", &out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "key=user")
	assert.Equal(t, []string{"user"}, changed)

	_, present, err := mem.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestStore_OnChange(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory(), discardLogger())

	var got []string
	s.OnChange(func(key string) { got = append(got, key) })
	s.OnChange(nil)

	require.NoError(t, s.SetJSON(ctx, "user", map[string]string{"id": "u"}))
	require.NoError(t, s.Delete(ctx, "user", "joinedProjects"))
	require.NoError(t, s.Delete(ctx))

	assert.Equal(t, []string{"user", "user", "joinedProjects"}, got)
}

func TestStore_LockedSerializesReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemory(), discardLogger())

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Locked("counter", func() error {
				var n int
				if _, err := s.GetJSON(ctx, "counter", &n); err != nil {
					return err
				}
				return s.SetJSON(ctx, "counter", n+1)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var n int
	ok, err := s.GetJSON(ctx, "counter", &n)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, writers, n)
}

func TestStore_LockedReleasesKeyEntries(t *testing.T) {
	s := NewStore(NewMemory(), discardLogger())

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("chat_p%d", i)
		require.NoError(t, s.Locked(key, func() error { return nil }))
	}
	assert.Equal(t, 0, s.lockCount())

	var wg sync.WaitGroup
	release := make(chan struct{})
	held := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.Locked("group_members_p1", func() error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	assert.Equal(t, 1, s.lockCount())
	close(release)
	wg.Wait()
	assert.Equal(t, 0, s.lockCount())
}

func TestStore_SQLiteMalformed(t *testing.T) {
	ctx := context.Background()
	backend := newSQLite(t)
	s := NewStore(backend, discardLogger())

	require.NoError(t, s.SetRaw(ctx, "user", []byte(`oops`)))
	var out item
	ok, err := s.GetJSON(ctx, "user", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	_, present, err := backend.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, present)
}
