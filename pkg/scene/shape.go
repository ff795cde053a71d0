package scene

import (
	"github.com/google/uuid"

	"github.com/iansan5653/propwatch/pkg/propwatch"
)

// Kind identifies what a shape draws as.
type Kind string

// Supported shape kinds.
const (
	KindRect    Kind = "rect"
	KindEllipse Kind = "ellipse"
	KindLine    Kind = "line"
)

// IsValid reports whether k is a supported kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindRect, KindEllipse, KindLine:
		return true
	}
	return false
}

// ShapeConfig carries a shape's initial member values.
type ShapeConfig struct {
	Kind    Kind
	Color   string
	Opacity float64
	Visible bool
	X       float64
	Y       float64
	Width   float64
	Height  float64
}

// DefaultShapeConfig returns a visible black rect at the origin.
func DefaultShapeConfig() ShapeConfig {
	return ShapeConfig{
		Kind:    KindRect,
		Color:   "#000000",
		Opacity: 1.0,
		Visible: true,
		X:       0,
		Y:       0,
		Width:   100,
		Height:  100,
	}
}

// Shape is an observed drawing element. All of its members deliver through
// one Node, so whoever owns the shape rebinds a single point to claim every
// notification the shape will ever produce. Construction performs no
// notifications.
type Shape struct {
	id   string
	kind Kind
	node *propwatch.Node

	color   *propwatch.Scalar[string]
	opacity *propwatch.Scalar[float64]
	visible *propwatch.BoolScalar

	coords *propwatch.ContainerRef[string, float64]
	size   *propwatch.ContainerRef[string, float64]
}

// NewShape creates a shape from cfg, delivering notifications to sink.
// Pass propwatch.Discard when the shape has no owner yet; adding it to a
// canvas rebinds it.
func NewShape(cfg ShapeConfig, sink propwatch.Notifier) *Shape {
	node := propwatch.NewNode(sink)
	return &Shape{
		id:      uuid.New().String(),
		kind:    cfg.Kind,
		node:    node,
		color:   propwatch.NewScalar(cfg.Color, node),
		opacity: propwatch.NewScalar(cfg.Opacity, node),
		visible: propwatch.NewBoolScalar(cfg.Visible, node),
		coords: propwatch.NewContainerRef(
			propwatch.NewMapTarget(map[string]float64{"x": cfg.X, "y": cfg.Y}), node),
		size: propwatch.NewContainerRef(
			propwatch.NewMapTarget(map[string]float64{"width": cfg.Width, "height": cfg.Height}), node),
	}
}

// ID returns the shape's unique identifier.
func (s *Shape) ID() string {
	return s.id
}

// Kind returns what the shape draws as.
func (s *Shape) Kind() Kind {
	return s.kind
}

// AsNode returns the shape's wiring point.
func (s *Shape) AsNode() *propwatch.Node {
	return s.node
}

// Color returns the current fill color.
func (s *Shape) Color() string {
	return s.color.Get()
}

// SetColor writes the fill color and notifies, changed or not.
func (s *Shape) SetColor(color string) {
	s.color.Set(color)
}

// Opacity returns the current opacity.
func (s *Shape) Opacity() float64 {
	return s.opacity.Get()
}

// SetOpacity writes the opacity and notifies.
func (s *Shape) SetOpacity(opacity float64) {
	s.opacity.Set(opacity)
}

// Visible returns whether the shape is visible.
func (s *Shape) Visible() bool {
	return s.visible.Get()
}

// SetVisible writes the visibility and notifies.
func (s *Shape) SetVisible(v bool) {
	s.visible.Set(v)
}

// ToggleVisible inverts the visibility and notifies.
func (s *Shape) ToggleVisible() {
	s.visible.Toggle()
}

// Coords returns the observed coordinate container (keys "x" and "y").
func (s *Shape) Coords() *propwatch.Container[string, float64] {
	return s.coords.Get()
}

// Size returns the observed size container (keys "width" and "height").
func (s *Shape) Size() *propwatch.Container[string, float64] {
	return s.size.Get()
}

// X returns the current x coordinate.
func (s *Shape) X() float64 {
	v, _ := s.coords.Get().Get("x")
	return v
}

// Y returns the current y coordinate.
func (s *Shape) Y() float64 {
	v, _ := s.coords.Get().Get("y")
	return v
}

// Width returns the current width.
func (s *Shape) Width() float64 {
	v, _ := s.size.Get().Get("width")
	return v
}

// Height returns the current height.
func (s *Shape) Height() float64 {
	v, _ := s.size.Get().Get("height")
	return v
}

// MoveTo writes both coordinates. These are two member writes and produce
// two notifications. Returns false if either write was refused.
func (s *Shape) MoveTo(x, y float64) bool {
	c := s.coords.Get()
	okX := c.Set("x", x)
	okY := c.Set("y", y)
	return okX && okY
}

// MoveBy shifts both coordinates, with MoveTo's write semantics.
func (s *Shape) MoveBy(dx, dy float64) bool {
	return s.MoveTo(s.X()+dx, s.Y()+dy)
}

// Resize writes both dimensions. Two member writes, two notifications.
// Returns false if either write was refused.
func (s *Shape) Resize(width, height float64) bool {
	sz := s.size.Get()
	okW := sz.Set("width", width)
	okH := sz.Set("height", height)
	return okW && okH
}

// ReplaceCoords swaps in a fresh coordinate container holding x and y.
// One replacement, one notification, regardless of how many members
// changed.
func (s *Shape) ReplaceCoords(x, y float64) {
	s.coords.Set(propwatch.NewMapTarget(map[string]float64{"x": x, "y": y}))
}

// ReplaceSize swaps in a fresh size container, the ReplaceCoords
// counterpart.
func (s *Shape) ReplaceSize(width, height float64) {
	s.size.Set(propwatch.NewMapTarget(map[string]float64{"width": width, "height": height}))
}

// FreezeCoords swaps the coordinate container for a frozen copy of the
// current values. Subsequent coordinate writes are refused by the target
// and report failure. The swap itself notifies once.
func (s *Shape) FreezeCoords() {
	s.coords.Set(propwatch.Freeze(
		propwatch.NewMapTarget(map[string]float64{"x": s.X(), "y": s.Y()})))
}
