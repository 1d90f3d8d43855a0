package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/mctscore/uctsearch-go/channel"
	"github.com/mctscore/uctsearch-go/tree"
)

type fakeModel struct {
	vars  string
	score string
}

func (f *fakeModel) Complete(_ context.Context, prompt string) (string, error) {
	if strings.Contains(prompt, "VARS:") {
		return f.vars, nil
	}
	return f.score, nil
}

func TestEvaluatorParsesProposedVarsAndScore(t *testing.T) {
	a, b := channel.NewMemPair(4)
	ev := NewEvaluator(&fakeModel{vars: "VARS: 3, 5, 9", score: "SCORE: 17"}, []int{1, 3, 5, 9}, 0)
	done := make(chan error, 1)
	go func() { done <- ev.Run(b) }()

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
	if n != 3 {
		t.Fatalf("n_actions = %d, want 3", n)
	}
	var got []int
	for i := 0; i < n; i++ {
		v, err := a.Read()
		if err != nil {
			t.Fatalf("Read(var) error = %v", err)
		}
		got = append(got, v)
	}
	want := []int{3, 5, 9}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("var %d = %d, want %d", i, got[i], w)
		}
	}

	if err := a.Write(tree.MsgGetScore); err != nil {
		t.Fatalf("Write(MsgGetScore) error = %v", err)
	}
	score, err := a.Read()
	if err != nil {
		t.Fatalf("Read(score) error = %v", err)
	}
	if score != 17 {
		t.Fatalf("score = %d, want 17", score)
	}

	if err := a.Write(tree.MsgStop); err != nil {
		t.Fatalf("Write(MsgStop) error = %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestParseVarsEmptyReply(t *testing.T) {
	if got := parseVars("VARS:"); got != nil {
		t.Fatalf("parseVars(empty) = %v, want nil", got)
	}
}

func TestParseScoreDefaultsToZero(t *testing.T) {
	if got := parseScore("not a score line"); got != 0 {
		t.Fatalf("parseScore(garbage) = %d, want 0", got)
	}
}
