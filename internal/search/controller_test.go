package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/videogrid/internal/model"
	"github.com/ytget/videogrid/internal/render"
	"github.com/ytget/videogrid/internal/snapshot"
)

type gatedApplier struct {
	gate    chan struct{}
	started chan struct{}
	held    bool

	mu      sync.Mutex
	applied [][]string
	animate []bool
}

func (g *gatedApplier) Apply(next *snapshot.Snapshot, animate bool) error {
	if !g.held && g.gate != nil {
		g.held = true
		g.started <- struct{}{}
		<-g.gate
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.applied = append(g.applied, next.ItemIDs())
	g.animate = append(g.animate, animate)
	return nil
}

func (g *gatedApplier) calls() [][]string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([][]string(nil), g.applied...)
}

func waitIdle(t *testing.T, c *Controller) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Wait(ctx))
}

func TestController_UpdateAppliesFilteredSnapshot(t *testing.T) {
	list := render.NewList(nil)
	c := NewController(list, Immediate, sampleVideos())
	defer c.Close()

	c.Refresh(false)
	waitIdle(t, c)
	assert.Equal(t, 4, list.Len())

	c.Update("swift")
	waitIdle(t, c)
	assert.Equal(t, []string{"1", "3"}, list.Snapshot().ItemIDs())
	assert.Equal(t, "swift", c.Query())

	c.Update("")
	waitIdle(t, c)
	assert.Equal(t, []string{"1", "2", "3", "4"}, list.Snapshot().ItemIDs())
}

func TestController_ResultCallback(t *testing.T) {
	app := &gatedApplier{}
	c := NewController(app, nil, sampleVideos())
	defer c.Close()

	var mu sync.Mutex
	var results []Result
	c.SetResultCallback(func(r Result) {
		mu.Lock()
		defer mu.Unlock()
		results = append(results, r)
	})

	c.Update("uikit")
	waitIdle(t, c)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, results, 1)
	assert.Equal(t, Result{Query: "uikit", Shown: 1, Total: 4}, results[0])
	assert.Equal(t, [][]string{{"2"}}, app.calls())
	assert.Equal(t, []bool{true}, app.animate)
}

func TestController_CoalescesPendingQueries(t *testing.T) {
	app := &gatedApplier{
		gate:    make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	c := NewController(app, Immediate, sampleVideos())
	defer c.Close()

	var mu sync.Mutex
	var queries []string
	c.SetResultCallback(func(r Result) {
		mu.Lock()
		defer mu.Unlock()
		queries = append(queries, r.Query)
	})

	c.Update("swift")
	<-app.started

	c.Update("s")
	c.Update("st")
	c.Update("uikit")
	close(app.gate)
	waitIdle(t, c)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"swift", "uikit"}, queries)
	assert.Equal(t, [][]string{{"1", "3"}, {"2"}}, app.calls())
}

func TestController_SetVideosKeepsQuery(t *testing.T) {
	list := render.NewList(nil)
	c := NewController(list, Immediate, sampleVideos())
	defer c.Close()

	c.Update("swift")
	waitIdle(t, c)

	c.SetVideos([]model.Video{
		{ID: "9", Title: "Advanced Swift"},
		{ID: "2", Title: "UIKit Intro"},
	}, false)
	waitIdle(t, c)

	assert.Equal(t, []string{"9"}, list.Snapshot().ItemIDs())
}

func TestController_DuplicateIdentityReported(t *testing.T) {
	app := &gatedApplier{}
	c := NewController(app, Immediate, []model.Video{
		{ID: "1", Title: "Swift"},
		{ID: "1", Title: "Swift again"},
	})
	defer c.Close()

	var got Result
	c.SetResultCallback(func(r Result) { got = r })

	c.Update("swift")
	waitIdle(t, c)

	var dup *snapshot.DuplicateIdentityError
	assert.ErrorAs(t, got.Err, &dup)
	assert.Empty(t, app.calls())
}

func TestController_WaitWithoutWork(t *testing.T) {
	c := NewController(&gatedApplier{}, nil, nil)
	defer c.Close()
	waitIdle(t, c)
}

func TestController_WaitAfterClose(t *testing.T) {
	app := &gatedApplier{
		gate:    make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	c := NewController(app, nil, sampleVideos())

	c.Update("swift")
	<-app.started
	c.Update("uikit")
	c.Close()
	close(app.gate)

	waitIdle(t, c)
	assert.Len(t, app.calls(), 1)
}

func TestController_UpdateAfterCloseIsDropped(t *testing.T) {
	app := &gatedApplier{}
	c := NewController(app, nil, sampleVideos())
	c.Close()

	c.Update("swift")
	c.Refresh(true)
	c.SetVideos(sampleVideos(), false)

	waitIdle(t, c)
	assert.Empty(t, app.calls())
	assert.Equal(t, "swift", c.Query())
}
