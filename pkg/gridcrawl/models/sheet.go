package models

// SheetGrids represents the grids detected on a single sheet.
type SheetGrids struct {
	// Grids contains the detected grids in discovery order.
	Grids []Grid `json:"grids"`
	// Window is the print area or range the crawl was restricted to, if any.
	Window *PrintArea `json:"window,omitempty"`
	// Stats summarizes the crawl of this sheet.
	Stats CrawlStats `json:"stats"`
}
