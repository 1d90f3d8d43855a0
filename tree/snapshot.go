package tree

// EdgeStat is a point-in-time statistics snapshot for one edge in the
// tree, keyed by the path of action indices from the root.
//
// A snapshot is a diagnostic and monitoring aid only: because it walks
// the tree while other workers may be concurrently expanding and
// backpropagating, it is neither a consistent cut nor authoritative,
// and it is never used to rank or persist a final solution.
type EdgeStat struct {
	Path           []int
	Visits         int64
	PendingUpdates int64
	Score          float64
	NActions       int
}

// Snapshot walks root down to depth levels and returns a best-effort
// statistics snapshot of every edge visited so far. depth < 0 walks
// the whole expanded tree.
func Snapshot(root *Edge, depth int) []EdgeStat {
	var out []EdgeStat
	walkSnapshot(root, nil, depth, &out)
	return out
}

func walkSnapshot(a *Edge, path []int, depth int, out *[]EdgeStat) {
	p := append(append([]int{}, path...), a.id)
	s := a.state.Load()
	nActions := 0
	if s != nil {
		nActions = s.NActions()
	}
	*out = append(*out, EdgeStat{
		Path:           p,
		Visits:         a.Visits(),
		PendingUpdates: a.PendingUpdates(),
		Score:          a.Score(),
		NActions:       nActions,
	})

	if s == nil || depth == 0 {
		return
	}
	for i := range s.actions {
		walkSnapshot(&s.actions[i], p, depth-1, out)
	}
}
