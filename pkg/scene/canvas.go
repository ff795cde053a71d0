package scene

import "github.com/iansan5653/propwatch/pkg/propwatch"

// Canvas owns a replaceable collection of shapes and the redraw sink they
// all report to. Constructing a canvas adopts every initial shape (their
// notifications re-route to the redraw sink) and then notifies the sink
// exactly once, so a freshly built canvas draws itself.
type Canvas struct {
	name   string
	width  int
	height int

	redraw propwatch.Notifier
	shapes *propwatch.NodeListRef[*Shape]
}

// NewCanvas creates a canvas delivering redraw requests to redraw.
func NewCanvas(name string, redraw propwatch.Notifier, shapes ...*Shape) *Canvas {
	return &Canvas{
		name:   name,
		width:  800,
		height: 600,
		redraw: redraw,
		shapes: propwatch.NewNodeListRef(propwatch.NewSliceTarget(shapes), redraw),
	}
}

// Name returns the canvas name.
func (c *Canvas) Name() string {
	return c.name
}

// Bounds returns the canvas dimensions.
func (c *Canvas) Bounds() (width, height int) {
	return c.width, c.height
}

// SetBounds sets the canvas dimensions. Dimensions are plain metadata, not
// observed members; changing them does not redraw.
func (c *Canvas) SetBounds(width, height int) {
	c.width = width
	c.height = height
}

// Shapes returns the current shape collection.
func (c *Canvas) Shapes() *propwatch.NodeList[*Shape] {
	return c.shapes.Get()
}

// Len returns the number of shapes.
func (c *Canvas) Len() int {
	return c.shapes.Get().Len()
}

// Shape returns the shape at index i.
func (c *Canvas) Shape(i int) (*Shape, bool) {
	return c.shapes.Get().At(i)
}

// Add appends s to the canvas. On success s is rebound to the redraw sink
// before the single notification, so s's own member writes redraw from
// then on.
func (c *Canvas) Add(s *Shape) bool {
	return c.shapes.Get().Append(s)
}

// Insert places s before index i, with Add's rebinding semantics.
func (c *Canvas) Insert(i int, s *Shape) bool {
	return c.shapes.Get().Insert(i, s)
}

// Remove deletes the shape at index i. The shape keeps its binding but is
// no longer drawn.
func (c *Canvas) Remove(i int) bool {
	return c.shapes.Get().Remove(i)
}

// Pop removes and returns the last shape in one operation with one
// notification.
func (c *Canvas) Pop() (*Shape, bool) {
	return c.shapes.Get().Pop()
}

// Replace swaps the whole shape collection. Every shape in shapes is
// rebound to the redraw sink first, then the sink is notified exactly
// once.
func (c *Canvas) Replace(shapes []*Shape) {
	c.shapes.Set(propwatch.NewSliceTarget(shapes))
}

// Clear truncates the collection to nothing with a single notification.
func (c *Canvas) Clear() bool {
	return c.shapes.Get().Truncate(0)
}
