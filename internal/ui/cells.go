package ui

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/videogrid/internal/snapshot"
)

// CellProvider creates and fills grid cells for one kind of item.
type CellProvider interface {
	CreateCell(size fyne.Size) fyne.CanvasObject
	UpdateCell(item snapshot.Item, cell fyne.CanvasObject)
}

// presentable is what a video cell needs from an item
type presentable interface {
	DisplayTitle() string
	Subtitle() string
	ThumbnailRef() string
}

type videoCellProvider struct {
	thumbnails *ThumbnailCache
}

func newVideoCellProvider(thumbnails *ThumbnailCache) *videoCellProvider {
	return &videoCellProvider{thumbnails: thumbnails}
}

func (p *videoCellProvider) CreateCell(size fyne.Size) fyne.CanvasObject {
	return NewVideoCell(size)
}

func (p *videoCellProvider) UpdateCell(item snapshot.Item, obj fyne.CanvasObject) {
	cell, ok := obj.(*VideoCell)
	if !ok {
		log.Printf("Unexpected cell type %T", obj)
		return
	}

	v, ok := item.(presentable)
	if !ok {
		log.Printf("Item %s cannot be shown in a video cell", item.ItemID())
		cell.SetContent(item.ItemID(), "", p.thumbnails.fallback)
		return
	}
	cell.SetContent(v.DisplayTitle(), v.Subtitle(), p.thumbnails.Resource(v.ThumbnailRef()))
}
