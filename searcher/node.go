package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

// Node is a position in the search tree. Each node owns its children; the tree
// has no shared or parent references and is dropped after a move is chosen.
type Node struct {
	State    game.GameState
	Path     []game.Move // Turn that led from the parent to this node
	Value    int
	Children []*Node
}

// BuildTree expands state to depth full-width plies using the material heuristic.
func BuildTree(state game.GameState, depth int) *Node {
	return build(state, nil, depth, game.EvaluateMaterial, metrics.NewDummyCollector())
}

// build gives every node its static value. Below depth 0 the node is a leaf;
// otherwise each complete turn of the side to move, with forced captures and
// multi-jumps resolved, becomes a child with the turn switched.
func build(state game.GameState, path []game.Move, depth int, evaluate game.Evaluate, collector metrics.Collector) *Node {
	if depth < 0 {
		panic("cannot build tree: negative depth")
	}

	node := &Node{State: state, Path: path, Value: evaluate(state)}
	if depth == 0 {
		collector.AddNode(true)
		return node
	}

	turns := state.Turns()
	collector.AddNode(len(turns) == 0)
	node.Children = make([]*Node, 0, len(turns))
	for _, turn := range turns {
		child := build(turn.Result.SwitchTurn(), turn.Path, depth-1, evaluate, collector)
		node.Children = append(node.Children, child)
	}
	return node
}

// Size counts the nodes of the tree rooted at n.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.Children {
		size += child.Size()
	}
	return size
}

// Propagate replaces every inner node's value with the min or max of its
// children, deepest levels first, alternating polarity by level. Childless
// nodes keep their static value.
func Propagate(node *Node, polarity Polarity) {
	if len(node.Children) == 0 {
		return
	}

	for _, child := range node.Children {
		Propagate(child, polarity.Flip())
	}

	best := node.Children[0].Value
	for _, child := range node.Children[1:] {
		if polarity.better(child.Value, best) {
			best = child.Value
		}
	}
	node.Value = best
}

// Select returns the first child, in generation order, whose value equals the root's.
func Select(root *Node) (*Node, bool) {
	for _, child := range root.Children {
		if child.Value == root.Value {
			return child, true
		}
	}
	return nil, false
}
