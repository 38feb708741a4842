package mxfile

import "encoding/xml"

// The element and attribute names below, the fixed canvas/grid attribute
// set, and the reserved bookkeeping ids "0" and "1" match the
// diagrams.net file schema. They must stay byte-compatible for
// interoperability with the editor.

// MxFile is the interchange document root. It wraps one or more pages
// and records the active layer id for round-tripping.
type MxFile struct {
	XMLName     xml.Name  `xml:"mxfile"`
	Host        string    `xml:"host,attr,omitempty"`
	Agent       string    `xml:"agent,attr,omitempty"`
	Version     string    `xml:"version,attr,omitempty"`
	ActiveLayer string    `xml:"activeLayer,attr,omitempty"`
	Diagrams    []Diagram `xml:"diagram"`
}

// Diagram is one page. Either Model holds the graph element directly, or
// Content carries an opaque percent-encoded+deflated+base64 blob in the
// legacy convention.
type Diagram struct {
	ID      string        `xml:"id,attr,omitempty"`
	Name    string        `xml:"name,attr,omitempty"`
	Model   *MxGraphModel `xml:"mxGraphModel"`
	Content string        `xml:",chardata"`
}

// MxGraphModel is the graph element with the editor's fixed canvas and
// grid attribute set.
type MxGraphModel struct {
	XMLName    xml.Name `xml:"mxGraphModel"`
	Dx         int      `xml:"dx,attr"`
	Dy         int      `xml:"dy,attr"`
	Grid       int      `xml:"grid,attr"`
	GridSize   int      `xml:"gridSize,attr"`
	Guides     int      `xml:"guides,attr"`
	Tooltips   int      `xml:"tooltips,attr"`
	Connect    int      `xml:"connect,attr"`
	Arrows     int      `xml:"arrows,attr"`
	Fold       int      `xml:"fold,attr"`
	Page       int      `xml:"page,attr"`
	PageScale  float64  `xml:"pageScale,attr"`
	PageWidth  int      `xml:"pageWidth,attr"`
	PageHeight int      `xml:"pageHeight,attr"`
	Math       int      `xml:"math,attr"`
	Shadow     int      `xml:"shadow,attr"`
	Root       MxRoot   `xml:"root"`
}

// MxRoot holds the page's cells. Source documents encode cells in two
// shapes: lean MxCell elements and richer object/UserObject wrappers
// nesting an MxCell. Export always writes the lean form.
type MxRoot struct {
	Cells       []MxCell   `xml:"mxCell"`
	Objects     []MxObject `xml:"object"`
	UserObjects []MxObject `xml:"UserObject"`
}

// MxCell is the lean cell encoding.
type MxCell struct {
	ID          string      `xml:"id,attr"`
	Value       string      `xml:"value,attr,omitempty"`
	Style       string      `xml:"style,attr,omitempty"`
	Parent      string      `xml:"parent,attr,omitempty"`
	Vertex      string      `xml:"vertex,attr,omitempty"`
	Edge        string      `xml:"edge,attr,omitempty"`
	Source      string      `xml:"source,attr,omitempty"`
	Target      string      `xml:"target,attr,omitempty"`
	Connectable string      `xml:"connectable,attr,omitempty"`
	Geometry    *MxGeometry `xml:"mxGeometry"`
}

// MxObject is the richer cell encoding: bookkeeping attributes on the
// wrapper, rendering data on the nested MxCell. When both declare the
// same attribute the outer value wins; unset outer attributes adopt the
// nested value.
type MxObject struct {
	ID    string  `xml:"id,attr"`
	Label string  `xml:"label,attr,omitempty"`
	Style string  `xml:"style,attr,omitempty"`
	Cell  *MxCell `xml:"mxCell"`
}

// MxGeometry carries vertex position/size, or the relative marker for
// edges (no coordinates).
type MxGeometry struct {
	X        *float64 `xml:"x,attr,omitempty"`
	Y        *float64 `xml:"y,attr,omitempty"`
	Width    *float64 `xml:"width,attr,omitempty"`
	Height   *float64 `xml:"height,attr,omitempty"`
	Relative string   `xml:"relative,attr,omitempty"`
	As       string   `xml:"as,attr"`
}

// newGraphModel returns an MxGraphModel with the editor's fixed canvas
// attributes.
func newGraphModel() MxGraphModel {
	return MxGraphModel{
		Dx:         800,
		Dy:         600,
		Grid:       1,
		GridSize:   10,
		Guides:     1,
		Tooltips:   1,
		Connect:    1,
		Arrows:     1,
		Fold:       1,
		Page:       1,
		PageScale:  1,
		PageWidth:  850,
		PageHeight: 1100,
	}
}
