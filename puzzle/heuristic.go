package puzzle

// ManhattanDistance sums, over the 8 non-blank tiles, the grid distance
// between a tile's position in s and its position in goal. Admissible
// and consistent for the sliding-tile metric: each move shifts exactly
// one tile by one grid step.
func ManhattanDistance(s, goal State) int {
	var goalPos [boardLen]int
	for i, v := range goal {
		goalPos[v] = i
	}

	sum := 0
	for i, v := range s {
		if v == blankTile {
			continue
		}
		target := goalPos[v]
		rowDiff := i/gridSize - target/gridSize
		colDiff := i%gridSize - target%gridSize
		if rowDiff < 0 {
			rowDiff = -rowDiff
		}
		if colDiff < 0 {
			colDiff = -colDiff
		}
		sum += rowDiff + colDiff
	}
	return sum
}
