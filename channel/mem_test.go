package channel

import "testing"

func TestMemPairRoundTrip(t *testing.T) {
	a, b := NewMemPair(0)
	go func() {
		_ = a.Write(42)
	}()
	v, err := b.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if v != 42 {
		t.Fatalf("Read() = %d, want 42", v)
	}
}

func TestMemPairPreservesOrder(t *testing.T) {
	a, b := NewMemPair(8)
	want := []int{1, 2, 3, 4, 5}
	for _, v := range want {
		if err := a.Write(v); err != nil {
			t.Fatalf("Write(%d) error = %v", v, err)
		}
	}
	for _, w := range want {
		got, err := b.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if got != w {
			t.Fatalf("Read() = %d, want %d", got, w)
		}
	}
}

func TestMemPairCloseUnblocksReadersAndWriters(t *testing.T) {
	a, b := NewMemPair(0)
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := a.Read(); err != ErrClosed {
		t.Fatalf("Read() after close = %v, want ErrClosed", err)
	}
	if err := b.Write(1); err != ErrClosed {
		t.Fatalf("Write() after close = %v, want ErrClosed", err)
	}
	// Closing twice, or from the other endpoint, must not panic.
	if err := b.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}
