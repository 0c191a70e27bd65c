package urlcache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/models"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/errs"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/logger"
	"go.uber.org/zap"
)

// DefaultTTL is deliberately shorter than the vendor's stated one-hour
// signed URL lifetime, so entries refresh before they go stale.
const DefaultTTL = 55 * time.Minute

// Resolver looks up a fresh signed download URL for one job's media.
type Resolver interface {
	GetDownloadURL(ctx context.Context, projectID, jobID string, mediaType models.MediaType) (string, error)
}

// HiddenStore persists the set of jobs deleted upstream, so the
// suppression survives a restart.
type HiddenStore interface {
	Load(ctx context.Context) ([]string, error)
	Add(ctx context.Context, jobID string) error
}

// Cache is the process-wide signed-URL cache, keyed by job id. The
// per-entry refreshing flag is the mutual-exclusion mechanism keeping
// concurrent Resolve calls for one key down to a single network call;
// latecomers wait on the in-flight resolution and observe its result.
type Cache struct {
	resolver Resolver
	store    HiddenStore
	ttl      time.Duration
	onHidden func(jobID string)
	now      func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
	hidden  map[string]struct{}
}

type entry struct {
	value      string
	updatedAt  time.Time
	expiresAt  time.Time
	refreshing bool
	inflight   chan struct{}
	err        string
}

type Option func(*Cache)

func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithOnHidden registers a callback invoked once when a job is first
// discovered to be deleted upstream.
func WithOnHidden(fn func(jobID string)) Option {
	return func(c *Cache) { c.onHidden = fn }
}

func withNow(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// CreateCache builds a cache and pre-loads the durable hidden set.
func CreateCache(ctx context.Context, resolver Resolver, store HiddenStore, opts ...Option) (*Cache, error) {
	const funcName = "urlcache.CreateCache"

	c := &Cache{
		resolver: resolver,
		store:    store,
		ttl:      DefaultTTL,
		now:      time.Now,
		entries:  make(map[string]*entry),
		hidden:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	jobIDs, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range jobIDs {
		c.hidden[id] = struct{}{}
	}

	logger.Info("url cache initialized",
		zap.String("function", funcName),
		zap.Int("hidden_jobs", len(jobIDs)),
		zap.Duration("ttl", c.ttl),
	)

	return c, nil
}

// Resolve returns a live signed URL for the job's media, refreshing it
// when missing or expired. Jobs known to be deleted upstream short
// circuit to hidden with no network activity, permanently.
func (c *Cache) Resolve(ctx context.Context, projectID, jobID string, mediaType models.MediaType) (models.CachedMediaURL, error) {
	for {
		c.mu.Lock()

		if _, isHidden := c.hidden[jobID]; isHidden {
			c.mu.Unlock()
			return models.CachedMediaURL{Hidden: true}, nil
		}

		e, exists := c.entries[jobID]
		if exists && e.refreshing {
			// Another caller owns the in-flight lookup; wait for it
			// and re-evaluate.
			inflight := e.inflight
			c.mu.Unlock()
			select {
			case <-inflight:
				continue
			case <-ctx.Done():
				return models.CachedMediaURL{}, ctx.Err()
			}
		}

		if exists && e.value != "" && e.err == "" && c.now().Before(e.expiresAt) {
			snapshot := models.CachedMediaURL{
				URL:       e.value,
				UpdatedAt: e.updatedAt,
				ExpiresAt: e.expiresAt,
			}
			c.mu.Unlock()
			return snapshot, nil
		}

		if !exists {
			e = &entry{}
			c.entries[jobID] = e
		}
		e.refreshing = true
		e.inflight = make(chan struct{})
		c.mu.Unlock()

		return c.refresh(ctx, projectID, jobID, mediaType, e)
	}
}

// Hidden reports whether the job is in the permanent suppression set.
func (c *Cache) Hidden(jobID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.hidden[jobID]
	return ok
}

func (c *Cache) refresh(ctx context.Context, projectID, jobID string, mediaType models.MediaType, e *entry) (models.CachedMediaURL, error) {
	const funcName = "Cache.refresh"

	url, err := c.resolver.GetDownloadURL(ctx, projectID, jobID, mediaType)

	c.mu.Lock()
	defer func() {
		e.refreshing = false
		close(e.inflight)
		c.mu.Unlock()
	}()

	switch {
	case err == nil:
		now := c.now()
		e.value = url
		e.updatedAt = now
		e.expiresAt = now.Add(c.ttl)
		e.err = ""
		return models.CachedMediaURL{URL: url, UpdatedAt: now, ExpiresAt: now.Add(c.ttl)}, nil

	case errors.Is(err, errs.ErrMediaDeleted):
		c.hidden[jobID] = struct{}{}
		delete(c.entries, jobID)
		if storeErr := c.store.Add(context.WithoutCancel(ctx), jobID); storeErr != nil {
			logger.Error("failed to persist hidden job",
				zap.String("function", funcName),
				zap.String("job_id", jobID),
				zap.Error(storeErr),
			)
		}
		if c.onHidden != nil {
			go c.onHidden(jobID)
		}
		logger.Info("job hidden after upstream deletion",
			zap.String("function", funcName),
			zap.String("job_id", jobID),
		)
		return models.CachedMediaURL{Hidden: true}, nil

	default:
		// Retryable: the next Resolve call may try again.
		e.value = ""
		e.err = err.Error()
		logger.Warn("download url lookup failed",
			zap.String("function", funcName),
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		return models.CachedMediaURL{Error: err.Error()}, nil
	}
}
