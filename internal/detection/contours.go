package detection

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Bounds represents a rectangular bounding box in pixel coordinates.
// (X1, Y1) is the top-left corner, (X2, Y2) the bottom-right.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Width returns the horizontal extent of the bounds in pixels.
func (b Bounds) Width() int { return b.X2 - b.X1 }

// Height returns the vertical extent of the bounds in pixels.
func (b Bounds) Height() int { return b.Y2 - b.Y1 }

// findContours groups the set pixels of a binary mask into connected
// components using 8-connectivity. Each returned contour is the full set
// of pixels of one component, in flood-fill discovery order; components
// themselves come out in raster-scan order of their first pixel.
func findContours(mask [][]bool, width, height int) [][]Point {
	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	contours := make([][]Point, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask[y][x] && !visited[y][x] {
				contour := make([]Point, 0)
				floodFill(mask, visited, x, y, width, height, &contour)
				contours = append(contours, contour)
			}
		}
	}
	return contours
}

// floodFill collects one connected component starting at (startX, startY).
// Iterative stack-based traversal; recursion would overflow on the large
// background component of a typical chart.
func floodFill(mask, visited [][]bool, startX, startY, width, height int, contour *[]Point) {
	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !mask[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true
		*contour = append(*contour, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
}

// boundingBox returns the tight bounding rectangle of a contour.
// The contour must be non-empty.
func boundingBox(contour []Point) Bounds {
	b := Bounds{X1: contour[0].X, Y1: contour[0].Y, X2: contour[0].X, Y2: contour[0].Y}
	for _, p := range contour[1:] {
		if p.X < b.X1 {
			b.X1 = p.X
		}
		if p.X > b.X2 {
			b.X2 = p.X
		}
		if p.Y < b.Y1 {
			b.Y1 = p.Y
		}
		if p.Y > b.Y2 {
			b.Y2 = p.Y
		}
	}
	return b
}
