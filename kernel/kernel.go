// Package kernel holds the computational patterns under measurement. Each
// kernel prepares its input outside the timed region and hands back a Task
// whose Run is the measured computation.
package kernel

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/weiihann/kernbench/workload"
)

// Category groups kernels by the machine resource they stress.
type Category string

// Kernel categories.
const (
	CategoryCompute   Category = "compute"
	CategoryStencil   Category = "stencil"
	CategoryMemory    Category = "memory"
	CategorySort      Category = "sort"
	CategoryText      Category = "text"
	CategorySearch    Category = "search"
	CategoryBranch    Category = "branch"
	CategoryRecursion Category = "recursion"
)

// Task is a prepared kernel run. Run is the timed body and consumes the
// input and output buffers captured at preparation time, so it is called
// once per Prepare. Witness is read after the clock stops.
type Task interface {
	Run()
	Witness() Witness
}

// Kernel is one benchmark workload.
type Kernel interface {
	Name() string
	Category() Category
	// Seed is the seed used to build the generator passed to Prepare.
	Seed() int64
	// Prepare validates parameters and generates input. Nothing it does
	// is timed.
	Prepare(gen *workload.Generator) (Task, error)
}

// Parameterized is implemented by kernels that expose their parameter
// struct, e.g. for listing.
type Parameterized interface {
	Parameters() any
}

// Field is one labeled witness value. Value holds an int64 or a float64.
type Field struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Int builds an integer witness field.
func Int(name string, v int64) Field {
	return Field{Name: name, Value: v}
}

// Float builds a floating-point witness field.
func Float(name string, v float64) Field {
	return Field{Name: name, Value: v}
}

// String formats the value without loss so it can be parsed back. Floats
// always carry a decimal point or exponent, which keeps 1.0 a float.
func (f Field) String() string {
	switch v := f.Value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}

		return s
	default:
		return fmt.Sprint(v)
	}
}

// MarshalJSON writes the value in its String form so integral floats stay
// floats when decoded.
func (f Field) MarshalJSON() ([]byte, error) {
	var value json.RawMessage

	switch v := f.Value.(type) {
	case int64:
		value = json.RawMessage(f.String())
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("witness field %s: unsupported value %v", f.Name, v)
		}
		value = json.RawMessage(f.String())
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("witness field %s: %w", f.Name, err)
		}
		value = raw
	}

	return json.Marshal(struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	}{f.Name, value})
}

// UnmarshalJSON restores integer values as int64 rather than float64.
func (f *Field) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name  string      `json:"name"`
		Value json.Number `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	f.Name = raw.Name

	if i, err := raw.Value.Int64(); err == nil {
		f.Value = i

		return nil
	}

	v, err := raw.Value.Float64()
	if err != nil {
		return fmt.Errorf("witness field %s: %w", raw.Name, err)
	}

	f.Value = v

	return nil
}

// Float64 returns the value as a float64.
func (f Field) Float64() float64 {
	switch v := f.Value.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}

// Witness is the observable output of a kernel run. Printing it keeps the
// compiler from discarding the timed work.
type Witness []Field

// Get returns the field called name.
func (w Witness) Get(name string) (Field, bool) {
	for _, f := range w {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// String renders the witness as space-separated name=value pairs.
func (w Witness) String() string {
	parts := make([]string, len(w))
	for i, f := range w {
		parts[i] = f.Name + "=" + f.String()
	}

	return strings.Join(parts, " ")
}

// ParseWitness is the inverse of Witness.String.
func ParseWitness(s string) (Witness, error) {
	tokens := strings.Fields(s)
	w := make(Witness, 0, len(tokens))

	for _, tok := range tokens {
		name, raw, ok := strings.Cut(tok, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed witness field %q", tok)
		}

		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			w = append(w, Int(name, i))

			continue
		}

		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("witness field %s: %w", name, err)
		}

		w = append(w, Float(name, f))
	}

	return w, nil
}
