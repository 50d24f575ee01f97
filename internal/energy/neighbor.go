package energy

// NeighborList buckets sites into 3D grid cells for O(1)-amortized exchange
// lookups: each site's cell is its coordinate divided by a fixed cell size,
// and a query scans the site's cell plus its 26 neighbors rather than every
// other site.
type NeighborList struct {
	cellSize float64
	buckets  map[[3]int][]int
	cellOf   []([3]int)
}

// Position is a site's lattice coordinate in the same units as cellSize.
type Position struct {
	X, Y, Z float64
}

// NewNeighborList builds an empty neighbor list with the given cell size.
// cellSize should be roughly the interaction cutoff radius.
func NewNeighborList(cellSize float64) *NeighborList {
	return &NeighborList{
		cellSize: cellSize,
		buckets:  make(map[[3]int][]int),
	}
}

func (nl *NeighborList) cell(p Position) [3]int {
	return [3]int{
		int(p.X / nl.cellSize),
		int(p.Y / nl.cellSize),
		int(p.Z / nl.cellSize),
	}
}

// Build populates the neighbor list from N site positions. Sized once at
// construction time and rebuilt only if the lattice geometry itself
// changes (it never does across a CMC run: spins rotate in place).
func (nl *NeighborList) Build(positions []Position) {
	nl.cellOf = make([][3]int, len(positions))
	for i, p := range positions {
		c := nl.cell(p)
		nl.cellOf[i] = c
		nl.buckets[c] = append(nl.buckets[c], i)
	}
}

// Neighbors returns every site sharing the 27-cell block (the site's own
// cell plus its 26 face/edge/corner neighbors) around site i, excluding i
// itself, within radius of positions[i].
func (nl *NeighborList) Neighbors(i int, positions []Position, radius float64) []int {
	c := nl.cellOf[i]
	radiusSq := radius * radius
	result := make([]int, 0, 16)

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				bucket := [3]int{c[0] + dx, c[1] + dy, c[2] + dz}
				for _, j := range nl.buckets[bucket] {
					if j == i {
						continue
					}
					ddx := positions[j].X - positions[i].X
					ddy := positions[j].Y - positions[i].Y
					ddz := positions[j].Z - positions[i].Z
					distSq := ddx*ddx + ddy*ddy + ddz*ddz
					if distSq <= radiusSq {
						result = append(result, j)
					}
				}
			}
		}
	}
	return result
}
