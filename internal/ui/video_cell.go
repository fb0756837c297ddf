package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// VideoCell shows one video: thumbnail on top, title and subtitle below.
type VideoCell struct {
	widget.BaseWidget

	size fyne.Size

	background    *canvas.Rectangle
	thumbnail     *canvas.Image
	titleLabel    *widget.Label
	subtitleLabel *widget.Label

	highlight *fyne.Animation
}

// NewVideoCell creates an empty cell of the given size
func NewVideoCell(size fyne.Size) *VideoCell {
	c := &VideoCell{size: size}
	c.ExtendBaseWidget(c)
	c.createUI()
	return c
}

func (c *VideoCell) createUI() {
	c.background = canvas.NewRectangle(TransparentColor)

	c.thumbnail = canvas.NewImageFromResource(nil)
	c.thumbnail.FillMode = canvas.ImageFillContain

	c.titleLabel = widget.NewLabel("")
	c.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.titleLabel.Truncation = fyne.TextTruncateEllipsis

	c.subtitleLabel = widget.NewLabel("")
	c.subtitleLabel.SizeName = theme.SizeNameCaptionText
	c.subtitleLabel.Truncation = fyne.TextTruncateEllipsis
}

// SetContent updates the cell for a new video
func (c *VideoCell) SetContent(title, subtitle string, thumbnail fyne.Resource) {
	c.titleLabel.SetText(title)
	c.subtitleLabel.SetText(subtitle)
	if subtitle == "" {
		c.subtitleLabel.Hide()
	} else {
		c.subtitleLabel.Show()
	}
	c.thumbnail.Resource = thumbnail
	c.thumbnail.Refresh()
}

// Title returns the displayed title
func (c *VideoCell) Title() string {
	return c.titleLabel.Text
}

// Highlight flashes the cell background, fading out over d. A running
// highlight is restarted.
func (c *VideoCell) Highlight(d time.Duration) {
	c.StopHighlight()

	c.highlight = canvas.NewColorRGBAAnimation(HighlightColor, TransparentColor, d, func(col color.Color) {
		c.background.FillColor = col
		c.background.Refresh()
	})
	c.highlight.Start()
}

// StopHighlight cancels a running highlight and clears the background
func (c *VideoCell) StopHighlight() {
	if c.highlight != nil {
		c.highlight.Stop()
		c.highlight = nil
	}
	c.background.FillColor = TransparentColor
	c.background.Refresh()
}

// Highlighted reports whether a highlight was started and not stopped
func (c *VideoCell) Highlighted() bool {
	return c.highlight != nil
}

// CreateRenderer creates the widget renderer
func (c *VideoCell) CreateRenderer() fyne.WidgetRenderer {
	texts := container.NewVBox(c.titleLabel, c.subtitleLabel)
	content := container.NewBorder(nil, texts, nil, nil, c.thumbnail)
	return &videoCellRenderer{
		cell:   c,
		layout: container.NewStack(c.background, container.NewPadded(content)),
	}
}

// videoCellRenderer keeps the cell at its fixed grid size
type videoCellRenderer struct {
	cell   *VideoCell
	layout *fyne.Container
}

func (r *videoCellRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

// MinSize is the grid cell size, so the grid shows the intended columns
func (r *videoCellRenderer) MinSize() fyne.Size {
	return r.cell.size
}

func (r *videoCellRenderer) Refresh() {
	r.layout.Refresh()
}

func (r *videoCellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

func (r *videoCellRenderer) Destroy() {
	r.cell.StopHighlight()
}
