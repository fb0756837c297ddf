package ui

import (
	"math"

	"fyne.io/fyne/v2"

	"github.com/ytget/videogrid/internal/config"
)

// LayoutProvider decides how the grid is arranged.
type LayoutProvider interface {
	Columns() int
	RowHeight() float32
}

// GridLayout is a fixed LayoutProvider
type GridLayout struct {
	columns   int
	rowHeight float32
}

// NewGridLayout creates a layout with at least one column
func NewGridLayout(columns int, rowHeight float32) GridLayout {
	if columns < 1 {
		columns = 1
	}
	return GridLayout{columns: columns, rowHeight: rowHeight}
}

// PhoneLayout is a single column of tall rows
func PhoneLayout() GridLayout {
	return NewGridLayout(PhoneColumns, PhoneRowHeight)
}

// TabletLayout is used on tablets and desktop windows
func TabletLayout() GridLayout {
	return NewGridLayout(TabletColumns, TabletRowHeight)
}

// Columns returns the number of columns
func (g GridLayout) Columns() int { return g.columns }

// RowHeight returns the row height
func (g GridLayout) RowHeight() float32 { return g.rowHeight }

// LayoutFor picks the layout for mode. In auto mode narrow canvases, including
// a canvas that has not been sized yet, get the phone layout.
func LayoutFor(mode config.LayoutMode, width float32) GridLayout {
	switch mode {
	case config.LayoutPhone:
		return PhoneLayout()
	case config.LayoutTablet:
		return TabletLayout()
	}
	if width < CompactWidth {
		return PhoneLayout()
	}
	return TabletLayout()
}

// CellSize returns the cell size that makes a grid of the given width show
// exactly layout.Columns() columns separated by padding.
func CellSize(layout LayoutProvider, width, padding float32) fyne.Size {
	columns := layout.Columns()
	if columns < 1 {
		columns = 1
	}

	cellWidth := (width - padding*float32(columns-1)) / float32(columns)
	// Rounding down keeps float error from dropping a column
	cellWidth = float32(math.Floor(float64(cellWidth)))
	if cellWidth < MinCellWidth {
		cellWidth = MinCellWidth
	}
	return fyne.NewSize(cellWidth, layout.RowHeight())
}

// widthLayout stretches its objects and reports every width it lays out.
type widthLayout struct {
	onWidth func(width float32)
}

func (w *widthLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
	if w.onWidth != nil {
		w.onWidth(size.Width)
	}
}

// MinSize ignores the width of the objects so the window can shrink below the
// current cell width; the grid is rebuilt with narrower cells afterwards.
func (w *widthLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	min := fyne.NewSize(MinCellWidth, 0)
	for _, o := range objects {
		min.Height = fyne.Max(min.Height, o.MinSize().Height)
	}
	return min
}
