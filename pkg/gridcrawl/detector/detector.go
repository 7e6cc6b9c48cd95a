// Package detector partitions the populated cells of a sheet into
// independent rectangular grids.
//
// The Detector makes a single row-major pass over a CellSource. Each
// non-empty cell either continues the grid of its left neighbour, inherits
// the grid of the cell above it, or starts a new grid. A header row that
// begins one column to the right of the body beneath it (a stair-step) is
// squared off by inserting an empty placeholder and moving the grid's
// origin one column left.
//
// A Detector is not safe for concurrent use. Crawl several sheets with one
// Detector each.
package detector

import (
	"fmt"
	"strings"
	"time"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/gridcrawl-go/internal/metrics"
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
	"go.uber.org/zap"
)

type state int

const (
	stateUnbound state = iota
	stateBound
	stateScanned
)

// Detector clusters the cells of one CellSource into grids.
type Detector struct {
	source  CellSource
	state   state
	policy  StaggerPolicy
	logger  *zap.Logger
	metrics *metrics.Collector

	grids      *collection
	highestRow int
	// previous is the grid id of the populated cell immediately to the
	// left in the current row, or 0.
	previous int
	stats    models.CrawlStats
}

// New returns an unbound Detector.
func New(opts ...Option) *Detector {
	d := &Detector{
		policy: StaggerFlag,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.reset()
	return d
}

// Load binds the Detector to src and discards any previous result.
func (d *Detector) Load(src CellSource) {
	d.source = src
	d.state = stateUnbound
	if src != nil {
		d.state = stateBound
	}
	d.reset()
}

func (d *Detector) reset() {
	d.grids = newCollection()
	d.highestRow = 0
	d.previous = 0
	d.stats = models.CrawlStats{}
	if d.state == stateScanned {
		d.state = stateBound
	}
}

// Crawl scans the bound source and builds the grid collection. On error
// no partial result is kept.
func (d *Detector) Crawl() error {
	if d.state == stateUnbound {
		return ErrNotLoaded
	}
	d.reset()

	start := time.Now()
	if err := d.scan(); err != nil {
		d.reset()
		d.metrics.CrawlFinished("error", time.Since(start))
		return err
	}

	d.state = stateScanned
	d.stats.Grids = len(d.grids.grids)
	d.stats.Cells = d.grids.cells()

	d.metrics.CrawlFinished("ok", time.Since(start))
	d.metrics.GridsDetected(d.stats.Grids)
	d.logger.Debug("crawl finished",
		zap.Int("highest_row", d.highestRow),
		zap.Int("grids", d.stats.Grids),
		zap.Int("cells", d.stats.Cells),
		zap.Int("migrations", d.stats.Migrations),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// Raw returns a copy of the detected grids in discovery order.
func (d *Detector) Raw() ([]models.Grid, error) {
	if d.state != stateScanned {
		return nil, ErrNotScanned
	}
	var out []models.Grid
	if err := deepcopy.Copy(&out, d.grids.snapshot()); err != nil {
		return nil, fmt.Errorf("copying grids: %w", err)
	}
	return out, nil
}

// Stats returns the statistics of the last successful crawl.
func (d *Detector) Stats() models.CrawlStats {
	s := d.stats
	s.UnresolvedStaggers = append([]string(nil), d.stats.UnresolvedStaggers...)
	return s
}

func (d *Detector) scan() error {
	highest, err := d.source.HighestRow()
	if err != nil {
		return fmt.Errorf("reading highest row: %w", err)
	}
	d.highestRow = highest

	for row := 1; row <= d.highestRow; row++ {
		d.previous = 0

		last, err := d.source.HighestColumn(row)
		if err != nil {
			return fmt.Errorf("reading highest column of row %d: %w", row, err)
		}
		last = strings.ToUpper(last)
		if last == "" {
			last = "A"
		}
		if len(last) > 1 {
			return &WidthError{Row: row, Column: last}
		}
		if last[0] < 'A' || last[0] > 'Z' {
			return fmt.Errorf("invalid column label %q on row %d", last, row)
		}

		for col := byte('A'); col <= last[0]; col++ {
			if err := d.assign(models.NewAddress(string(col), row)); err != nil {
				return err
			}
		}
	}
	return nil
}

// assign files the cell at addr under the right grid.
func (d *Detector) assign(addr models.Address) error {
	value := d.value(addr)
	if value == nil {
		d.previous = 0
		return nil
	}
	rec := models.NewCellRecord(addr, value)

	switch {
	case d.grids.empty():
		d.startGrid(rec)
	case d.previous != 0:
		d.grids.add(d.previous, rec)
	default:
		return d.resolveVertical(addr, rec)
	}
	return nil
}

// resolveVertical handles the first populated cell of a run within a row.
func (d *Detector) resolveVertical(addr models.Address, rec models.CellRecord) error {
	if addr.Row == 1 {
		d.startGrid(rec)
		return nil
	}

	above := addr.Above()
	if d.value(above) == nil {
		joined, err := d.checkDiagonal(addr)
		if err != nil {
			return err
		}
		if !joined {
			d.startGrid(rec)
			return nil
		}
	}

	id, ok := d.grids.member(above)
	if !ok {
		d.stats.IndexFallbacks++
		d.metrics.IndexFallback()
		d.logger.Debug("cell above is not indexed, starting new grid",
			zap.Stringer("cell", addr), zap.Stringer("above", above))
		d.startGrid(rec)
		return nil
	}

	d.grids.add(id, rec)
	d.previous = id
	return nil
}

// checkDiagonal looks above and to the right of addr for a header row that
// starts one column further right. It reports whether the cell above addr
// now belongs to a grid.
func (d *Detector) checkDiagonal(addr models.Address) (bool, error) {
	diagonal := addr.Above().Right()
	if diagonal == (models.Address{}) || d.value(diagonal) == nil {
		return false, nil
	}

	if id, ok := d.grids.anchoredAt(diagonal); ok {
		d.migrate(id, addr.Above())
		return true, nil
	}

	switch d.policy {
	case StaggerStrict:
		return false, &StaggerError{Cell: addr.String(), Diagonal: diagonal.String()}
	case StaggerResolve:
		if id, ok := d.grids.member(diagonal); ok && d.widen(id, addr.Above()) {
			return true, nil
		}
	}

	d.stats.UnresolvedStaggers = append(d.stats.UnresolvedStaggers, addr.String())
	d.metrics.UnresolvedStagger()
	d.logger.Warn("stair-step deeper than one row left unresolved",
		zap.Stringer("cell", addr), zap.Stringer("diagonal", diagonal))
	return false, nil
}

// migrate moves the origin of grid id one column left to origin, filling
// the gap with an empty placeholder.
func (d *Detector) migrate(id int, origin models.Address) {
	old := d.grids.grid(id).Origin
	d.grids.prepend(id, models.Placeholder(origin))
	d.grids.relabel(id, origin)

	d.stats.Migrations++
	d.metrics.Migration()
	d.logger.Debug("migrated stair-step header",
		zap.Int("grid", id), zap.Stringer("from", old), zap.Stringer("origin", origin))
}

// widen walks up from top through every consecutive row of grid id that
// starts one column right of top, placing a placeholder at the start of
// each. The origin follows to the topmost placeholder when it sat at the
// start of that row. It reports whether any row was widened.
func (d *Detector) widen(id int, top models.Address) bool {
	g := d.grids.grid(id)
	column := top.Right().Column

	var filled []models.Address
	for r := top.Row; r >= 1; r-- {
		row, ok := g.Row(r)
		if !ok || len(row.Cells) == 0 || row.Cells[0].Column != column {
			break
		}
		addr := models.NewAddress(top.Column, r)
		if _, taken := d.grids.member(addr); taken {
			break
		}
		filled = append(filled, addr)
	}
	if len(filled) == 0 {
		return false
	}

	for _, addr := range filled {
		d.grids.prepend(id, models.Placeholder(addr))
	}
	highest := filled[len(filled)-1]
	old := g.Origin
	if old == highest.Right() {
		d.grids.relabel(id, highest)
	}

	d.stats.Migrations++
	d.metrics.Migration()
	d.logger.Debug("migrated deep stair-step header",
		zap.Int("grid", id), zap.Int("rows", len(filled)),
		zap.Stringer("from", old), zap.Stringer("origin", g.Origin))
	return true
}

func (d *Detector) startGrid(rec models.CellRecord) {
	d.previous = d.grids.start(rec)
	d.logger.Debug("new grid", zap.Int("grid", d.previous), zap.String("origin", rec.Address))
}

// value reads a cell, treating read failures as empty.
func (d *Detector) value(addr models.Address) interface{} {
	v, err := d.source.CellValue(addr.Column, addr.Row)
	if err != nil {
		d.stats.ReadErrors++
		d.metrics.ReadError()
		d.logger.Debug("cell read failed", zap.Stringer("cell", addr), zap.Error(err))
		return nil
	}
	return v
}
