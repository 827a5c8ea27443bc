package bruntime

import (
	"math"
	"strconv"
	"strings"
)

type ValueKind int

const (
	IntKind ValueKind = iota
	FloatKind
)

// Value is a number with an int/float kind. Sums, differences and products
// of two ints stay ints; quotients and RND draws are floats; INT truncates
// back to an int.
type Value struct {
	kind ValueKind
	i    int64
	f    float64
}

func Int(v int64) Value {
	return Value{kind: IntKind, i: v}
}

func Float(v float64) Value {
	return Value{kind: FloatKind, f: v}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) Int64() int64 {
	if v.kind == IntKind {
		return v.i
	}
	return int64(math.Trunc(v.f))
}

func (v Value) Float64() float64 {
	if v.kind == IntKind {
		return float64(v.i)
	}
	return v.f
}

func (v Value) String() string {
	if v.kind == IntKind {
		return strconv.FormatInt(v.i, 10)
	}
	return strconv.FormatFloat(v.f, 'g', -1, 64)
}

func add(a, b Value) Value {
	if a.kind == IntKind && b.kind == IntKind {
		return Int(a.i + b.i)
	}
	return Float(a.Float64() + b.Float64())
}

func sub(a, b Value) Value {
	if a.kind == IntKind && b.kind == IntKind {
		return Int(a.i - b.i)
	}
	return Float(a.Float64() - b.Float64())
}

func mul(a, b Value) Value {
	if a.kind == IntKind && b.kind == IntKind {
		return Int(a.i * b.i)
	}
	return Float(a.Float64() * b.Float64())
}

// parseInput turns one line of user input into a Value, preferring the int
// kind when the text carries no fraction.
func parseInput(raw string) (Value, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Value{}, false
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Int(i), true
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Float(f), true
	}
	return Value{}, false
}
