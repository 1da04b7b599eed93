package ast

// Walk visits the node and its descendants in document order.
// Returning false from fn skips the children of the current node.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, it := range n.Items {
		Walk(it, fn)
	}
}
