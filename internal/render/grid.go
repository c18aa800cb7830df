package render

// Grid is a square dark/light module matrix produced by a QR encoder at the
// highest error correction level (about 30% of modules recoverable). A Grid
// carries no quiet zone and is never modified by this package.
type Grid interface {
	// Size returns the number of modules on a side.
	Size() int
	// Dark reports whether the module at column x, row y is dark.
	Dark(x, y int) bool
}

// Bitmap is a Grid backed by rows of booleans, bitmap[y][x].
type Bitmap [][]bool

func (b Bitmap) Size() int { return len(b) }

func (b Bitmap) Dark(x, y int) bool {
	if y < 0 || y >= len(b) || x < 0 || x >= len(b[y]) {
		return false
	}
	return b[y][x]
}
