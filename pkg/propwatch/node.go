package propwatch

// Node is the upward wiring point of an observed entity. It holds exactly
// one current sink; binding a new sink replaces the previous one rather
// than adding a subscriber. An entity's own primitives are constructed with
// the entity's Node as their sink, so rebinding the Node re-routes every
// notification the entity produces without touching the primitives.
type Node struct {
	id   uint64
	sink Notifier
}

// NewNode creates a Node delivering to sink.
func NewNode(sink Notifier) *Node {
	if sink == nil {
		panic("propwatch: NewNode requires a non-nil sink (use Discard for none)")
	}
	return &Node{
		id:   nextID(),
		sink: sink,
	}
}

// Bind replaces the Node's current sink. The previous sink is dropped
// silently; binding itself never notifies either sink.
func (n *Node) Bind(sink Notifier) {
	if sink == nil {
		panic("propwatch: Node.Bind requires a non-nil sink (use Discard for none)")
	}
	n.sink = sink
}

// Notify forwards to the current sink. Node implements Notifier so it can
// be passed directly as the sink of the primitives it routes for.
func (n *Node) Notify() {
	n.sink.Notify()
}

// ID returns the unique identifier for this node.
func (n *Node) ID() uint64 {
	return n.id
}

// Observed is implemented by entities that expose a Node for upward wiring.
// Collections of observed entities use it to re-route an element's
// notifications when the element is inserted.
type Observed interface {
	// AsNode returns the entity's wiring point.
	AsNode() *Node
}
