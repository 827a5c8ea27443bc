package bruntime

import "fmt"

// Array is the backing store for one array variable. DIM fixes the bounds
// and turns on bounds checking; an array first touched without DIM is
// dynamic and grows with whatever indices it sees. Every reference carries
// exactly four index slots, so the store is keyed by a four-tuple.
type Array struct {
	dynamic bool
	bounds  [4]int
	data    map[[4]int]Value
}

func newDeclaredArray(bounds [4]int) *Array {
	return &Array{bounds: bounds, data: map[[4]int]Value{}}
}

func newDynamicArray() *Array {
	return &Array{dynamic: true, data: map[[4]int]Value{}}
}

func (a *Array) check(index [4]int) error {
	for i, v := range index {
		if v < 0 {
			return fmt.Errorf("array index %d out of range: %d", i, v)
		}
		if !a.dynamic && v > a.bounds[i] {
			return fmt.Errorf("array index %d out of range: %d > %d", i, v, a.bounds[i])
		}
	}
	return nil
}

// Get returns the cell value, defaulting to integer 0 for untouched cells.
func (a *Array) Get(index [4]int) (Value, error) {
	if err := a.check(index); err != nil {
		return Value{}, err
	}
	if v, ok := a.data[index]; ok {
		return v, nil
	}
	return Int(0), nil
}

func (a *Array) Set(index [4]int, v Value) error {
	if err := a.check(index); err != nil {
		return err
	}
	a.data[index] = v
	return nil
}
