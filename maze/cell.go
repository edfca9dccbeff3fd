package maze

// cell is one grid position. Borders are indexed by Direction and true
// means a wall is present; all four start closed. The visited flag is only
// meaningful while the generator runs.
type cell struct {
	location Location
	visited  bool
	borders  [directionCount]bool
}

func newCell(loc Location) cell {
	return cell{
		location: loc,
		borders:  [directionCount]bool{true, true, true, true},
	}
}
