package script

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestRewardEval(t *testing.T) {
	r, err := LoadReward(filepath.Join("..", "scripts", "last_pickup_bonus.tengo"))
	if err != nil {
		t.Fatalf("LoadReward: %v", err)
	}
	// in holds health, collected, total and increment.
	cases := []struct {
		name string
		in   [4]int
		want int
	}{
		{"first", [4]int{0, 0, 3, 1}, 1},
		{"middle", [4]int{1, 1, 3, 2}, 2},
		{"last", [4]int{2, 2, 3, 1}, 5},
		{"repeat_first", [4]int{0, 0, 3, 1}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := r.Eval(c.in[0], c.in[1], c.in[2], c.in[3])
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}
			if got != c.want {
				t.Fatalf("Eval = %d, want %d", got, c.want)
			}
		})
	}
}

func TestRewardUsesStdlib(t *testing.T) {
	r, err := CompileReward("scaled", []byte(`
math := import("math")
reward = int(math.sqrt(health + 16))
`))
	if err != nil {
		t.Fatalf("CompileReward: %v", err)
	}
	got, err := r.Eval(9, 0, 1, 1)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != 5 {
		t.Fatalf("Eval = %d, want 5", got)
	}
}

func TestRewardErrors(t *testing.T) {
	if _, err := CompileReward("bad", []byte("reward = (")); err == nil {
		t.Fatalf("expected a compile error")
	}
	if _, err := CompileReward("os", []byte(`os := import("os")`)); err == nil {
		t.Fatalf("the os module should not be importable")
	}
	if _, err := LoadReward(filepath.Join(t.TempDir(), "absent.tengo")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}

	r, err := CompileReward("type", []byte(`s := "a"; reward = s - increment`))
	if err != nil {
		t.Fatalf("CompileReward: %v", err)
	}
	if _, err := r.Eval(0, 0, 1, 1); err == nil {
		t.Fatalf("expected a runtime error for string minus int")
	}
}
