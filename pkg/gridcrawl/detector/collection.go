package detector

import (
	"sort"

	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
)

// collection holds the grids found so far and the origins index mapping
// every member address to its grid id. Grid ids are 1-based positions in
// grids, so relabeling a grid's origin never touches the index.
type collection struct {
	grids   []*models.Grid
	members map[models.Address]int
}

func newCollection() *collection {
	return &collection{members: make(map[models.Address]int)}
}

func (c *collection) empty() bool {
	return len(c.grids) == 0
}

func (c *collection) grid(id int) *models.Grid {
	return c.grids[id-1]
}

// start opens a new grid anchored at rec and returns its id.
func (c *collection) start(rec models.CellRecord) int {
	id := len(c.grids) + 1
	addr := models.NewAddress(rec.Column, rec.Row)
	c.grids = append(c.grids, &models.Grid{ID: id, Origin: addr})
	c.add(id, rec)
	return id
}

// add appends rec to its row in grid id and registers its address.
func (c *collection) add(id int, rec models.CellRecord) {
	row := c.row(id, rec.Row)
	row.Cells = append(row.Cells, rec)
	c.members[models.NewAddress(rec.Column, rec.Row)] = id
}

// prepend files rec as the first cell of its row in grid id.
func (c *collection) prepend(id int, rec models.CellRecord) {
	row := c.row(id, rec.Row)
	row.Cells = append([]models.CellRecord{rec}, row.Cells...)
	c.members[models.NewAddress(rec.Column, rec.Row)] = id
}

// row returns the row of grid id with the given number, creating it in
// row order if needed.
func (c *collection) row(id, number int) *models.GridRow {
	g := c.grid(id)
	if r, ok := g.Row(number); ok {
		return r
	}
	i := sort.Search(len(g.Rows), func(i int) bool { return g.Rows[i].Number > number })
	g.Rows = append(g.Rows, models.GridRow{})
	copy(g.Rows[i+1:], g.Rows[i:])
	g.Rows[i] = models.GridRow{Number: number}
	return &g.Rows[i]
}

// member returns the id of the grid holding addr.
func (c *collection) member(addr models.Address) (int, bool) {
	id, ok := c.members[addr]
	return id, ok
}

// anchoredAt returns the id of the grid whose origin is addr.
func (c *collection) anchoredAt(addr models.Address) (int, bool) {
	id, ok := c.members[addr]
	if !ok || c.grid(id).Origin != addr {
		return 0, false
	}
	return id, true
}

func (c *collection) relabel(id int, origin models.Address) {
	c.grid(id).Origin = origin
}

func (c *collection) cells() int {
	n := 0
	for _, g := range c.grids {
		n += g.CellCount()
	}
	return n
}

// snapshot returns the grids in discovery order. The result shares
// memory with the collection.
func (c *collection) snapshot() []models.Grid {
	out := make([]models.Grid, len(c.grids))
	for i, g := range c.grids {
		out[i] = *g
	}
	return out
}
