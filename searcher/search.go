package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"sync"

	"github.com/rs/zerolog/log"
)

type Option func(o *options)

type options struct {
	goroutines int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func defaultOptions() options {
	return options{
		goroutines: 1,
		evaluate:   game.EvaluateMaterial,
		metrics:    metrics.NewDummyCollector(),
	}
}

// WithGoroutines builds the subtrees under the root in parallel.
func WithGoroutines(goroutines int) Option {
	return func(o *options) {
		if goroutines > 0 {
			o.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(o *options) {
		if evaluate != nil {
			o.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.metrics = metrics.NewCollector()
	}
}

// Minimax searches the full game tree to a fixed depth and plays the first
// root child whose propagated value equals the root's.
type Minimax struct {
	depth int
	options
}

func NewMinimax(depth int, opts ...Option) *Minimax {
	if depth < 0 {
		panic("Search depth must not be negative")
	}
	m := &Minimax{depth: depth, options: defaultOptions()}
	for _, opt := range opts {
		opt(&m.options)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// Search picks a turn for the side to move in state. When there is none it
// returns ErrNoMoves together with the unchanged state.
func (m *Minimax) Search(state game.GameState) (Choice, metrics.SearchMetric, error) {
	m.metrics.Start(ModeMinimax, m.depth, m.goroutines)

	root := m.buildTree(state)
	Propagate(root, RootPolarity(state.CurrentPlayer))
	m.metrics.SetRootValue(root.Value)
	metric := m.metrics.Complete()

	child, ok := Select(root)
	if !ok {
		return Choice{State: state}, metric, ErrNoMoves
	}

	log.Debug().
		Str("player", state.CurrentPlayer.String()).
		Int("depth", m.depth).
		Int("children", len(root.Children)).
		Int("value", root.Value).
		Msgf("minimax picked %v", child.Path)

	return Choice{Path: child.Path, State: child.State}, metric, nil
}

// buildTree builds the root's subtrees on m.goroutines workers. Children keep
// their generation order regardless of which worker built them.
func (m *Minimax) buildTree(state game.GameState) *Node {
	if m.depth == 0 || m.goroutines <= 1 {
		return build(state, nil, m.depth, m.evaluate, m.metrics)
	}

	root := &Node{State: state, Value: m.evaluate(state)}
	turns := state.Turns()
	m.metrics.AddNode(len(turns) == 0)
	root.Children = make([]*Node, len(turns))

	task := make(chan int, len(turns))
	for i := range turns {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for ith := range task {
				turn := turns[ith]
				root.Children[ith] = build(turn.Result.SwitchTurn(), turn.Path, m.depth-1, m.evaluate, m.metrics)
			}
		}()
	}

	wg.Wait()
	return root
}

// ComputeBestMove plays one full-minimax turn from state and returns the
// resulting state with the opponent to move.
func ComputeBestMove(state game.GameState, depth int) (game.GameState, error) {
	choice, _, err := NewMinimax(depth).Search(state)
	return choice.State, err
}
