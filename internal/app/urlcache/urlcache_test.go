package urlcache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/models"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/errs"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/logger"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

type fakeResolver struct {
	mu    sync.Mutex
	calls int32
	block chan struct{}
	url   string
	err   error
}

func (f *fakeResolver) GetDownloadURL(_ context.Context, _, _ string, _ models.MediaType) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.url, f.err
}

func (f *fakeResolver) set(url string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.url = url
	f.err = err
}

type fakeStore struct {
	mu     sync.Mutex
	seed   []string
	added  []string
	addErr error
}

func (f *fakeStore) Load(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seed, nil
}

func (f *fakeStore) Add(_ context.Context, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, jobID)
	return f.addErr
}

func TestCacheResolveHit(t *testing.T) {
	resolver := &fakeResolver{url: "https://cdn.example/a.png"}
	cache, err := CreateCache(context.Background(), resolver, &fakeStore{})
	assert.NoError(t, err)

	first, err := cache.Resolve(context.Background(), "p1", "j1", models.MediaImage)
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example/a.png", first.URL)

	second, err := cache.Resolve(context.Background(), "p1", "j1", models.MediaImage)
	assert.NoError(t, err)
	assert.Equal(t, first.URL, second.URL)
	assert.EqualValues(t, 1, atomic.LoadInt32(&resolver.calls))
}

func TestCacheRefreshAfterTTL(t *testing.T) {
	now := time.Now()
	clock := &now
	var mu sync.Mutex

	resolver := &fakeResolver{url: "https://cdn.example/v1.png"}
	cache, err := CreateCache(context.Background(), resolver, &fakeStore{},
		WithTTL(10*time.Minute),
		withNow(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return *clock
		}),
	)
	assert.NoError(t, err)

	_, err = cache.Resolve(context.Background(), "p1", "j1", models.MediaImage)
	assert.NoError(t, err)

	mu.Lock()
	later := now.Add(11 * time.Minute)
	clock = &later
	mu.Unlock()
	resolver.set("https://cdn.example/v2.png", nil)

	refreshed, err := cache.Resolve(context.Background(), "p1", "j1", models.MediaImage)
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example/v2.png", refreshed.URL)
	assert.EqualValues(t, 2, atomic.LoadInt32(&resolver.calls))
}

func TestCacheConcurrentResolveSingleFlight(t *testing.T) {
	resolver := &fakeResolver{url: "https://cdn.example/a.png", block: make(chan struct{})}
	cache, err := CreateCache(context.Background(), resolver, &fakeStore{})
	assert.NoError(t, err)

	results := make(chan models.CachedMediaURL, 2)
	for i := 0; i < 2; i++ {
		go func() {
			cached, resolveErr := cache.Resolve(context.Background(), "p1", "j1", models.MediaImage)
			assert.NoError(t, resolveErr)
			results <- cached
		}()
	}

	// Let both goroutines reach the cache before releasing the lookup.
	time.Sleep(50 * time.Millisecond)
	close(resolver.block)

	first := <-results
	second := <-results
	assert.Equal(t, "https://cdn.example/a.png", first.URL)
	assert.Equal(t, first.URL, second.URL)
	assert.EqualValues(t, 1, atomic.LoadInt32(&resolver.calls))
}

func TestCacheDeletedMediaHiddenPermanently(t *testing.T) {
	resolver := &fakeResolver{err: errs.ErrMediaDeleted}
	store := &fakeStore{}
	var hiddenJob atomic.Value
	cache, err := CreateCache(context.Background(), resolver, store,
		WithOnHidden(func(jobID string) { hiddenJob.Store(jobID) }),
	)
	assert.NoError(t, err)

	cached, err := cache.Resolve(context.Background(), "p1", "j1", models.MediaImage)
	assert.NoError(t, err)
	assert.True(t, cached.Hidden)

	// Subsequent resolves never hit the resolver again.
	resolver.set("https://cdn.example/back.png", nil)
	cached, err = cache.Resolve(context.Background(), "p1", "j1", models.MediaImage)
	assert.NoError(t, err)
	assert.True(t, cached.Hidden)
	assert.EqualValues(t, 1, atomic.LoadInt32(&resolver.calls))

	store.mu.Lock()
	assert.Equal(t, []string{"j1"}, store.added)
	store.mu.Unlock()

	assert.Eventually(t, func() bool {
		v := hiddenJob.Load()
		return v != nil && v.(string) == "j1"
	}, time.Second, 10*time.Millisecond)
}

func TestCacheSeededHiddenSet(t *testing.T) {
	resolver := &fakeResolver{url: "https://cdn.example/a.png"}
	cache, err := CreateCache(context.Background(), resolver, &fakeStore{seed: []string{"gone"}})
	assert.NoError(t, err)

	cached, err := cache.Resolve(context.Background(), "p1", "gone", models.MediaImage)
	assert.NoError(t, err)
	assert.True(t, cached.Hidden)
	assert.EqualValues(t, 0, atomic.LoadInt32(&resolver.calls))
	assert.True(t, cache.Hidden("gone"))
}

func TestCacheHiddenSurvivesRestart(t *testing.T) {
	store := &fakeStore{}

	resolver := &fakeResolver{err: errs.ErrMediaDeleted}
	cache, err := CreateCache(context.Background(), resolver, store)
	assert.NoError(t, err)

	cached, err := cache.Resolve(context.Background(), "p1", "j1", models.MediaImage)
	assert.NoError(t, err)
	assert.True(t, cached.Hidden)

	// A fresh cache over the same store, as after a process restart.
	store.mu.Lock()
	store.seed = store.added
	store.mu.Unlock()

	freshResolver := &fakeResolver{url: "https://cdn.example/back.png"}
	fresh, err := CreateCache(context.Background(), freshResolver, store)
	assert.NoError(t, err)

	cached, err = fresh.Resolve(context.Background(), "p1", "j1", models.MediaImage)
	assert.NoError(t, err)
	assert.True(t, cached.Hidden)
	assert.EqualValues(t, 0, atomic.LoadInt32(&freshResolver.calls))
}

func TestCacheTransientErrorIsRetryable(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("upstream 500")}
	cache, err := CreateCache(context.Background(), resolver, &fakeStore{})
	assert.NoError(t, err)

	cached, err := cache.Resolve(context.Background(), "p1", "j1", models.MediaImage)
	assert.NoError(t, err)
	assert.False(t, cached.Hidden)
	assert.Equal(t, "upstream 500", cached.Error)

	resolver.set("https://cdn.example/a.png", nil)
	cached, err = cache.Resolve(context.Background(), "p1", "j1", models.MediaImage)
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example/a.png", cached.URL)
	assert.EqualValues(t, 2, atomic.LoadInt32(&resolver.calls))
}
