package model

// Bounds is the bounding box around all vertex geometry.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Stats summarizes the model in a single pass. Bounds is nil when no
// vertex contributes geometry. CellsByLayer counts cells per layer id
// and only contains layers that have cells.
type Stats struct {
	TotalCells       int            `json:"total_cells"`
	Vertices         int            `json:"vertices"`
	Edges            int            `json:"edges"`
	Groups           int            `json:"groups"`
	Layers           int            `json:"layers"`
	Bounds           *Bounds        `json:"bounds"`
	CellsWithText    int            `json:"cells_with_text"`
	CellsWithoutText int            `json:"cells_without_text"`
	CellsByLayer     map[string]int `json:"cells_by_layer"`
}

// GetStats computes diagram statistics in one pass over the cells.
func (m *Model) GetStats() Stats {
	s := Stats{
		Layers:       len(m.layers),
		CellsByLayer: make(map[string]int),
	}

	for _, c := range m.cells {
		s.TotalCells++

		switch {
		case c.IsEdge():
			s.Edges++
		default:
			s.Vertices++
			if c.IsGroup() {
				s.Groups++
			}
			if s.Bounds == nil {
				s.Bounds = &Bounds{
					MinX: c.Vertex.X,
					MinY: c.Vertex.Y,
					MaxX: c.Vertex.X + c.Vertex.Width,
					MaxY: c.Vertex.Y + c.Vertex.Height,
				}
			} else {
				s.Bounds.MinX = min(s.Bounds.MinX, c.Vertex.X)
				s.Bounds.MinY = min(s.Bounds.MinY, c.Vertex.Y)
				s.Bounds.MaxX = max(s.Bounds.MaxX, c.Vertex.X+c.Vertex.Width)
				s.Bounds.MaxY = max(s.Bounds.MaxY, c.Vertex.Y+c.Vertex.Height)
			}
		}

		if c.Label != "" {
			s.CellsWithText++
		} else {
			s.CellsWithoutText++
		}

		if m.LayerByID(c.Parent) != nil {
			s.CellsByLayer[c.Parent]++
		}
	}

	return s
}
