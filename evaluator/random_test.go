package evaluator

import (
	"testing"

	"github.com/mctscore/uctsearch-go/channel"
	"github.com/mctscore/uctsearch-go/tree"
)

// TestRandomBoundsOutput checks that Random never offers more
// variables than configured, never repeats a variable within one
// expansion, and never reports a score outside [0, scoreMax).
func TestRandomBoundsOutput(t *testing.T) {
	a, b := channel.NewMemPair(4)
	r := NewRandom([]int{1, 2, 3, 4, 5}, 3, 50, 7)
	done := make(chan error, 1)
	go func() { done <- r.Run(b) }()

	for i := 0; i < 20; i++ {
		if err := a.Write(tree.MsgStart); err != nil {
			t.Fatalf("Write(MsgStart) error = %v", err)
		}
		if err := a.Write(tree.MsgSwitchRollout); err != nil {
			t.Fatalf("Write(MsgSwitchRollout) error = %v", err)
		}
		n, err := a.Read()
		if err != nil {
			t.Fatalf("Read(n_actions) error = %v", err)
		}
		if n < 0 || n > 3 {
			t.Fatalf("n_actions = %d, want in [0,3]", n)
		}
		seen := make(map[int]bool, n)
		for j := 0; j < n; j++ {
			v, err := a.Read()
			if err != nil {
				t.Fatalf("Read(var) error = %v", err)
			}
			if seen[v] {
				t.Fatalf("variable %d offered twice in one expansion", v)
			}
			seen[v] = true
		}
		if err := a.Write(tree.MsgGetScore); err != nil {
			t.Fatalf("Write(MsgGetScore) error = %v", err)
		}
		score, err := a.Read()
		if err != nil {
			t.Fatalf("Read(score) error = %v", err)
		}
		if score < 0 || score >= 50 {
			t.Fatalf("score = %d, want in [0,50)", score)
		}
	}

	if err := a.Write(tree.MsgStop); err != nil {
		t.Fatalf("Write(MsgStop) error = %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
