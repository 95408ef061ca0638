// Package script runs the optional Tengo pickup reward script.
//
// A reward script sees the globals health, collected, total and increment
// before each pickup is counted and assigns the health to grant to reward:
//
//	reward = increment
//	if collected + 1 == total { reward = increment * 5 }
//
// Leaving reward untouched grants increment.
package script

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Reward is a compiled reward script. It is not safe for concurrent use.
type Reward struct {
	name     string
	compiled *tengo.Compiled
}

// LoadReward reads and compiles the script at path.
func LoadReward(path string) (*Reward, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	return CompileReward(path, src)
}

// CompileReward compiles src; name is only used in errors.
func CompileReward(name string, src []byte) (*Reward, error) {
	s := tengo.NewScript(src)
	for _, v := range []string{"health", "collected", "total", "increment", "reward"} {
		if err := s.Add(v, 0); err != nil {
			return nil, fmt.Errorf("script: %s: %w", name, err)
		}
	}
	s.SetImports(stdlib.GetModuleMap("math", "text", "fmt"))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Reward{name: name, compiled: compiled}, nil
}

// Eval returns the health granted for the next pickup.
func (r *Reward) Eval(health, collected, total, increment int) (int, error) {
	vars := []struct {
		name  string
		value int
	}{
		{"health", health},
		{"collected", collected},
		{"total", total},
		{"increment", increment},
		{"reward", increment},
	}
	for _, v := range vars {
		if err := r.compiled.Set(v.name, v.value); err != nil {
			return 0, fmt.Errorf("script: %s: set %s: %w", r.name, v.name, err)
		}
	}
	if err := r.compiled.Run(); err != nil {
		return 0, fmt.Errorf("script: run %s: %w", r.name, err)
	}
	return r.compiled.Get("reward").Int(), nil
}
