package model

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Reserved draw.io bookkeeping ids. Id "0" is the invisible root every
// layer hangs off; id "1" is the permanent default layer. Neither is ever
// a model cell.
const (
	RootID         = "0"
	DefaultLayerID = "1"
)

// DefaultLayerName is the display name of the permanent default layer.
const DefaultLayerName = "Background"

// Generated id prefixes. Cell and layer ids live in distinct namespaces
// so generated ids never collide.
const (
	CellIDPrefix  = "cell-"
	LayerIDPrefix = "layer-"
)

// Default styles matching the draw.io editor's own defaults.
const (
	DefaultVertexStyle = "rounded=0;whiteSpace=wrap;html=1;"
	DefaultEdgeStyle   = "edgeStyle=orthogonalEdgeStyle;rounded=0;orthogonalLoop=1;jettySize=auto;html=1;"
	DefaultGroupStyle  = "group;container=1;"
)

// ContainerToken marks a vertex as a container in draw.io styles.
// Group detection on import also accepts any style containing "swimlane"
// (case-insensitive), matching the editor's behavior.
const ContainerToken = "container=1"

// Default geometry applied when a rectangle request leaves fields unset.
const (
	DefaultX      = 100.0
	DefaultY      = 100.0
	DefaultWidth  = 120.0
	DefaultHeight = 60.0
)

// =============================================================================
// Cell - Tagged Variant
// =============================================================================

// Kind distinguishes the two cell payload shapes.
type Kind int

const (
	// KindVertex is a positioned box, possibly acting as a group container.
	KindVertex Kind = iota
	// KindEdge is a directed connection between two existing cells.
	KindEdge
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	if k == KindEdge {
		return "edge"
	}
	return "vertex"
}

// VertexData is the vertex payload: position, size, and group state.
// Children is the ordered list of cell ids whose Parent is this cell;
// it is only populated when IsGroup is true.
type VertexData struct {
	X, Y          float64
	Width, Height float64
	IsGroup       bool
	Children      []string
}

// EdgeData is the edge payload: the ids of the connected cells.
type EdgeData struct {
	Source string
	Target string
}

// Cell is a vertex or edge in the diagram graph. Exactly one of Vertex
// or Edge is non-nil, matching Kind. Style is an opaque draw.io token
// string; Parent is a layer id or a group-cell id.
type Cell struct {
	ID     string
	Kind   Kind
	Label  string
	Style  string
	Parent string

	Vertex *VertexData
	Edge   *EdgeData
}

// IsVertex reports whether the cell carries a vertex payload.
func (c *Cell) IsVertex() bool { return c.Kind == KindVertex }

// IsEdge reports whether the cell carries an edge payload.
func (c *Cell) IsEdge() bool { return c.Kind == KindEdge }

// IsGroup reports whether the cell is a vertex acting as a container.
func (c *Cell) IsGroup() bool { return c.Kind == KindVertex && c.Vertex != nil && c.Vertex.IsGroup }

// Clone returns a deep copy of the cell. Mutating the copy never
// affects the original.
func (c *Cell) Clone() *Cell {
	out := *c
	if c.Vertex != nil {
		v := *c.Vertex
		v.Children = append([]string(nil), c.Vertex.Children...)
		out.Vertex = &v
	}
	if c.Edge != nil {
		e := *c.Edge
		out.Edge = &e
	}
	return &out
}

// Layer is a named grouping of cells, independent of containment.
type Layer struct {
	ID   string
	Name string
}

// =============================================================================
// Operation Inputs
// =============================================================================

// Rectangle describes an addRectangle request. Nil fields use the fixed
// defaults; Width and Height are floored at 1.
type Rectangle struct {
	X, Y          *float64
	Width, Height *float64
	Text          *string
	Style         *string
}

// EdgeOptions describes the optional fields of an addEdge request.
type EdgeOptions struct {
	Text  *string
	Style *string
}

// CellPatch is a partial update for a vertex. Only non-nil fields are
// applied.
type CellPatch struct {
	Label         *string
	Style         *string
	X, Y          *float64
	Width, Height *float64
}

// EdgePatch is a partial update for an edge. Only non-nil fields are
// applied; Source and Target are re-validated before any mutation.
type EdgePatch struct {
	Label  *string
	Style  *string
	Source *string
	Target *string
}

// DeleteResult reports the outcome of deleteCell. Deleting an unknown id
// is a no-op with Deleted=false rather than an error. When a vertex is
// deleted, CascadedEdgeIDs lists every edge removed alongside it.
type DeleteResult struct {
	Deleted         bool
	CascadedEdgeIDs []string
}
