package tree

import (
	"math/rand"
	"time"

	"github.com/mctscore/uctsearch-go/channel"
	"github.com/mctscore/uctsearch-go/emit"
)

// Protocol messages a Worker sends over its channel.Chan. Any other
// value sent by the worker, or read from the evaluator where one of
// these is expected, is a domain value (a variable ID or a score).
const (
	MsgStart         = -1
	MsgSwitchRollout = -2
	MsgGetScore      = -3
	MsgStop          = -4
)

// Worker drives one evaluator connection through repeated rollouts
// against a shared Tree. Workers share no mutable state with each
// other except through the Tree's atomics; a Worker's own fields
// (rng, pool, channel) are private to it.
type Worker struct {
	id      int
	tree    *Tree
	ch      channel.Chan
	c       float64
	rng     *rand.Rand
	pool    *Pool
	metrics Metrics
	emitter emit.Emitter
}

// NewWorker creates a Worker with the given id driving ch against t.
func NewWorker(id int, t *Tree, ch channel.Chan, opts ...WorkerOption) *Worker {
	cfg := workerConfig{
		c:       1.0,
		seed:    int64(id),
		metrics: t.defaultMetrics,
		emitter: t.defaultEmitter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	pool := cfg.pool
	if pool == nil {
		pool = NewPool(t.defaultPoolBlock)
	}

	return &Worker{
		id:      id,
		tree:    t,
		ch:      ch,
		c:       cfg.c,
		rng:     rand.New(rand.NewSource(cfg.seed)),
		pool:    pool,
		metrics: cfg.metrics,
		emitter: cfg.emitter,
	}
}

// ID returns this worker's identifier.
func (w *Worker) ID() int { return w.id }

// Rollout runs one full selection/expansion/scoring/backpropagation
// cycle: descend the tree (rollin), tell the evaluator to switch to
// rollout mode, optionally expand the leaf edge it stopped at, ask for
// the terminal score, and fold that score back up the path.
func (w *Worker) Rollout() error {
	w.metrics.InflightWorkers(1)
	defer w.metrics.InflightWorkers(-1)
	w.metrics.RolloutStarted(w.id)
	w.emitter.Emit(emit.Event{WorkerID: w.id, EdgeID: -1, Msg: "rollout_start"})

	if err := w.ch.Write(MsgStart); err != nil {
		return &RolloutError{WorkerID: w.id, Phase: PhaseRollin, Cause: err}
	}

	rollinStart := time.Now()
	leaf, depth, err := w.rollin()
	if err != nil {
		return &RolloutError{WorkerID: w.id, Phase: PhaseRollin, Cause: err}
	}
	rollinMS := msSince(rollinStart)
	w.emitter.Emit(emit.Event{WorkerID: w.id, EdgeID: leaf.id, Msg: "rollin_done", Meta: map[string]any{"depth": depth}})

	if err := w.ch.Write(MsgSwitchRollout); err != nil {
		return &RolloutError{WorkerID: w.id, Phase: PhaseSwitch, Cause: err}
	}

	expandStart := time.Now()
	nActions, err := w.ch.Read()
	if err != nil {
		return &RolloutError{WorkerID: w.id, Phase: PhaseExpand, Cause: err}
	}
	if nActions < 0 {
		return &RolloutError{WorkerID: w.id, Phase: PhaseExpand, Cause: ErrProtocolViolation}
	}
	if nActions > 0 {
		raced, err := Expand(w.pool, leaf, nActions, w.ch, w.rng)
		if err != nil {
			return &RolloutError{WorkerID: w.id, Phase: PhaseExpand, Cause: err}
		}
		if raced {
			w.metrics.ExpansionRace()
		}
	}
	expandMS := msSince(expandStart)
	w.emitter.Emit(emit.Event{WorkerID: w.id, EdgeID: leaf.id, Msg: "expand", Meta: map[string]any{"n_actions": nActions}})

	if err := w.ch.Write(MsgGetScore); err != nil {
		return &RolloutError{WorkerID: w.id, Phase: PhaseScore, Cause: err}
	}
	scoreStart := time.Now()
	score, err := w.ch.Read()
	if err != nil {
		return &RolloutError{WorkerID: w.id, Phase: PhaseScore, Cause: err}
	}
	scoreMS := msSince(scoreStart)
	w.emitter.Emit(emit.Event{WorkerID: w.id, EdgeID: leaf.id, Msg: "score", Meta: map[string]any{"score": score}})

	backpropStart := time.Now()
	Backprop(leaf, float64(score))
	backpropMS := msSince(backpropStart)
	w.emitter.Emit(emit.Event{WorkerID: w.id, EdgeID: leaf.id, Msg: "backprop_done"})

	w.metrics.RolloutCompleted(w.id, depth, rollinMS, expandMS, scoreMS, backpropMS)
	return nil
}

// rollin descends from the tree's root, writing the solver variable
// for each edge it selects, until it reaches an unexpanded edge or
// the tree's configured max depth.
func (w *Worker) rollin() (*Edge, int, error) {
	a := w.tree.Root()
	next := Select(a, w.c)
	depth := 0
	maxDepth := w.tree.MaxDepth()
	for next != nil && (maxDepth < 0 || depth < maxDepth) {
		a = next
		if err := w.ch.Write(a.prevState.ActionVar(a.id)); err != nil {
			return nil, depth, err
		}
		next = Select(a, w.c)
		depth++
	}
	return a, depth, nil
}

// Stop tells the evaluator this worker will make no further requests.
func (w *Worker) Stop() error {
	w.emitter.Emit(emit.Event{WorkerID: w.id, EdgeID: -1, Msg: "worker_stop"})
	return w.ch.Write(MsgStop)
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t)) / float64(time.Millisecond)
}
