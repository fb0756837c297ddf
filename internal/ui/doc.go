// Package ui contains the Fyne screen that shows the video catalog as a grid.
// A search entry narrows the grid through search.Controller, the grid redraws
// from the batches render.List hands it, and selecting a cell opens the
// video's link in the browser. All UI strings are localized via Localization.
package ui
