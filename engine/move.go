package engine

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) IsValid(gridSize int) bool {
	return m.Row >= 0 && m.Col >= 0 && m.Row < gridSize && m.Col < gridSize
}

func (m Move) Equals(other Move) bool {
	return m.Row == other.Row && m.Col == other.Col
}

// Growth counts the rows and columns inserted on each side by Grid.Grow.
type Growth struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

func (g Growth) IsZero() bool {
	return g == Growth{}
}
