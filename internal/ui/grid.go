package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/videogrid/internal/config"
	"github.com/ytget/videogrid/internal/diff"
	"github.com/ytget/videogrid/internal/render"
	"github.com/ytget/videogrid/internal/snapshot"
)

// highlighter is implemented by cells that can flash after a change
type highlighter interface {
	Highlight(d time.Duration)
	StopHighlight()
}

// VideoGrid draws the items of a render.List in a GridWrap. It is the List's
// View, so every applied batch ends in Render. All methods run on the Fyne
// main goroutine.
type VideoGrid struct {
	provider CellProvider
	list     *render.List
	onSelect func(snapshot.Item)

	mode     config.LayoutMode
	width    float32
	cellSize fyne.Size

	animate      bool
	highlightFor time.Duration
	pending      map[string]struct{}
	pendingSince time.Time

	grid   *widget.GridWrap
	holder *fyne.Container
}

// NewVideoGrid creates a grid; SetList must be called before it is shown.
func NewVideoGrid(provider CellProvider, mode config.LayoutMode) *VideoGrid {
	g := &VideoGrid{
		provider:     provider,
		mode:         mode,
		animate:      true,
		highlightFor: DefaultHighlight,
		pending:      make(map[string]struct{}),
	}
	g.holder = container.New(&widthLayout{onWidth: g.resize})
	g.relayout()
	return g
}

// SetList binds the list whose items are drawn
func (g *VideoGrid) SetList(list *render.List) {
	g.list = list
}

// SetOnSelect registers the handler for tapped items
func (g *VideoGrid) SetOnSelect(fn func(snapshot.Item)) {
	g.onSelect = fn
}

// SetAnimation configures the highlight shown for changed cells
func (g *VideoGrid) SetAnimation(enabled bool, d time.Duration) {
	g.animate = enabled
	g.highlightFor = d
}

// SetLayoutMode switches between phone, tablet and automatic layout
func (g *VideoGrid) SetLayoutMode(mode config.LayoutMode) {
	g.mode = mode
	g.relayout()
}

// Container returns the object to place in a window
func (g *VideoGrid) Container() fyne.CanvasObject {
	return g.holder
}

// CellSize returns the current cell size
func (g *VideoGrid) CellSize() fyne.Size {
	return g.cellSize
}

// Render redraws the grid for one applied batch. Inserted, moved and reloaded
// cells are highlighted as they are bound when the batch is animated.
func (g *VideoGrid) Render(batch render.Batch) {
	g.pending = make(map[string]struct{})
	if batch.Animate && g.animate && g.highlightFor > 0 {
		for _, ch := range batch.Script.Filter(diff.OpInsert, diff.OpMove, diff.OpReload) {
			g.pending[ch.ID] = struct{}{}
		}
		g.pendingSince = time.Now()
	}

	g.grid.UnselectAll()
	g.grid.Refresh()
}

// Select behaves like a tap on the cell at offset
func (g *VideoGrid) Select(offset int) {
	g.grid.Select(offset)
}

func (g *VideoGrid) resize(width float32) {
	if width <= 0 || width == g.width {
		return
	}
	g.width = width
	g.relayout()
}

// relayout rebuilds the GridWrap when the cell size changes; GridWrap sizes
// every item from the first template it creates.
func (g *VideoGrid) relayout() {
	size := CellSize(LayoutFor(g.mode, g.width), g.width, theme.Padding())
	if g.grid != nil && size == g.cellSize {
		return
	}
	g.cellSize = size

	grid := widget.NewGridWrap(g.length, g.createCell, g.updateCell)
	grid.OnSelected = g.selected
	g.grid = grid
	g.holder.Objects = []fyne.CanvasObject{grid}
	g.holder.Refresh()
}

func (g *VideoGrid) length() int {
	if g.list == nil {
		return 0
	}
	return g.list.Len()
}

func (g *VideoGrid) createCell() fyne.CanvasObject {
	return g.provider.CreateCell(g.cellSize)
}

func (g *VideoGrid) updateCell(id widget.GridWrapItemID, obj fyne.CanvasObject) {
	if g.list == nil {
		return
	}
	item, ok := g.list.ItemAtOffset(id)
	if !ok {
		return
	}
	g.provider.UpdateCell(item, obj)

	h, ok := obj.(highlighter)
	if !ok {
		return
	}
	if _, hit := g.pending[item.ItemID()]; hit && time.Since(g.pendingSince) < g.highlightFor {
		delete(g.pending, item.ItemID())
		h.Highlight(g.highlightFor)
		return
	}
	h.StopHighlight()
}

func (g *VideoGrid) selected(id widget.GridWrapItemID) {
	g.grid.Unselect(id)

	if g.list == nil {
		return
	}
	item, ok := g.list.ItemAtOffset(id)
	if !ok {
		log.Printf("Selection %d is outside the list", id)
		return
	}
	if g.onSelect != nil {
		g.onSelect(item)
	}
}
