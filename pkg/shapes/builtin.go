package shapes

// Builtin returns the shapes every installation knows without any
// configuration. Styles follow the stock draw.io shape set.
func Builtin() *Library {
	lib := New()
	lib.Add("rectangle", Shape{Style: "rounded=0;whiteSpace=wrap;html=1;"})
	lib.Add("rounded rectangle", Shape{Style: "rounded=1;whiteSpace=wrap;html=1;"})
	lib.Add("ellipse", Shape{Style: "ellipse;whiteSpace=wrap;html=1;", Aliases: []string{"circle", "oval"}})
	lib.Add("diamond", Shape{Style: "rhombus;whiteSpace=wrap;html=1;", Aliases: []string{"decision"}})
	lib.Add("cloud", Shape{Style: "shape=cloud;whiteSpace=wrap;html=1;", Aliases: []string{"internet"}})
	lib.Add("cylinder", Shape{Style: "shape=cylinder3;whiteSpace=wrap;html=1;boundedLbl=1;backgroundOutline=1;size=15;", Aliases: []string{"database", "db"}})
	lib.Add("actor", Shape{Style: "shape=umlActor;verticalLabelPosition=bottom;verticalAlign=top;html=1;outlineConnect=0;", Aliases: []string{"user", "person"}})
	lib.Add("process", Shape{Style: "shape=process;whiteSpace=wrap;html=1;backgroundOutline=1;"})
	lib.Add("document", Shape{Style: "shape=document;whiteSpace=wrap;html=1;boundedLbl=1;"})
	lib.Add("note", Shape{Style: "shape=note;whiteSpace=wrap;html=1;backgroundOutline=1;darkOpacity=0.05;"})
	lib.Add("parallelogram", Shape{Style: "shape=parallelogram;perimeter=parallelogramPerimeter;whiteSpace=wrap;html=1;fixedSize=1;", Aliases: []string{"data"}})
	lib.Add("hexagon", Shape{Style: "shape=hexagon;perimeter=hexagonPerimeter2;whiteSpace=wrap;html=1;fixedSize=1;"})
	lib.Add("triangle", Shape{Style: "triangle;whiteSpace=wrap;html=1;"})
	lib.Add("callout", Shape{Style: "shape=callout;whiteSpace=wrap;html=1;perimeter=calloutPerimeter;"})
	lib.Add("step", Shape{Style: "shape=step;perimeter=stepPerimeter;whiteSpace=wrap;html=1;fixedSize=1;"})
	return lib
}
