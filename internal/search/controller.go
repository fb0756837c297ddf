package search

import (
	"context"
	"log"
	"sync"

	"github.com/ytget/videogrid/internal/model"
	"github.com/ytget/videogrid/internal/snapshot"
)

// Applier receives the snapshot for each processed query.
type Applier interface {
	Apply(next *snapshot.Snapshot, animate bool) error
}

// Scheduler runs fn on the context that owns the visual list and returns once
// fn has finished.
type Scheduler func(fn func())

// Immediate runs fn on the calling goroutine.
func Immediate(fn func()) { fn() }

// Result describes one processed query.
type Result struct {
	Query string
	Shown int
	Total int
	Err   error
}

type request struct {
	query   string
	animate bool
}

// Controller turns query changes into snapshots and hands them to the Applier
// one at a time. Requests that pile up while an apply runs collapse into the
// newest, so the latest query always wins and never interleaves with another.
type Controller struct {
	applier  Applier
	schedule Scheduler

	mu        sync.Mutex
	videos    []model.Video
	query     string
	pending   *request
	idle      chan struct{}
	onResult  func(Result)
	closeOnce sync.Once

	wake chan struct{}
	done chan struct{}
}

// NewController starts the worker. schedule may be nil, meaning Immediate.
func NewController(applier Applier, schedule Scheduler, videos []model.Video) *Controller {
	if schedule == nil {
		schedule = Immediate
	}
	c := &Controller{
		applier:  applier,
		schedule: schedule,
		videos:   videos,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go c.run()
	return c
}

// SetResultCallback registers fn to be called after every processed query,
// on the scheduler's context.
func (c *Controller) SetResultCallback(fn func(Result)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onResult = fn
}

// Update queues a new query, animating the resulting changes.
func (c *Controller) Update(query string) {
	c.mu.Lock()
	c.query = query
	c.mu.Unlock()
	c.enqueue(query, true)
}

// Refresh re-applies the current query.
func (c *Controller) Refresh(animate bool) {
	c.enqueue(c.Query(), animate)
}

// SetVideos replaces the full video list and re-applies the current query.
func (c *Controller) SetVideos(videos []model.Video, animate bool) {
	c.mu.Lock()
	c.videos = videos
	query := c.query
	c.mu.Unlock()
	c.enqueue(query, animate)
}

// Query returns the latest query passed to Update.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Wait blocks until every queued query has been applied or ctx ends.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	ch := c.idle
	c.mu.Unlock()
	if ch == nil {
		return nil
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the worker without waiting for it; an apply already handed to
// the scheduler still completes. Queries not yet started, and any queued
// after Close, are dropped.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Controller) enqueue(query string, animate bool) {
	c.mu.Lock()
	select {
	case <-c.done:
		// nothing would ever pick the request up
		c.mu.Unlock()
		return
	default:
	}
	if c.pending != nil {
		log.Printf("Query %q superseded by %q", c.pending.query, query)
	}
	c.pending = &request{query: query, animate: animate}
	if c.idle == nil {
		c.idle = make(chan struct{})
	}
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

func (c *Controller) run() {
	defer c.release()

	for {
		select {
		case <-c.done:
			return
		case <-c.wake:
		}

		for {
			c.mu.Lock()
			req := c.pending
			c.pending = nil
			videos := c.videos
			onResult := c.onResult
			if req == nil {
				if c.idle != nil {
					close(c.idle)
					c.idle = nil
				}
				c.mu.Unlock()
				break
			}
			c.mu.Unlock()

			select {
			case <-c.done:
				return
			default:
			}
			c.process(*req, videos, onResult)
		}
	}
}

func (c *Controller) process(req request, videos []model.Video, onResult func(Result)) {
	shown := Filter(videos, req.query)
	res := Result{Query: req.query, Shown: len(shown), Total: len(videos)}

	snap, err := BuildSnapshot(shown)
	if err != nil {
		log.Printf("Failed to build snapshot for query %q: %v", req.query, err)
		res.Err = err
	}

	c.schedule(func() {
		if res.Err == nil {
			if err := c.applier.Apply(snap, req.animate); err != nil {
				log.Printf("Failed to apply snapshot for query %q: %v", req.query, err)
				res.Err = err
			}
		}
		if onResult != nil {
			onResult(res)
		}
	})
}

// release wakes any Wait callers when the worker exits.
func (c *Controller) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
	if c.idle != nil {
		close(c.idle)
		c.idle = nil
	}
}
