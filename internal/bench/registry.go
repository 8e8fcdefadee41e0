package bench

import (
	"fmt"
	"sort"

	"github.com/san-kum/seqbench/internal/seq"
)

// Container is the operation set the harness measures.
type Container interface {
	Append(value int)
	InsertFirst(value int)
	InsertAt(value, index int) error
	Get(index int) (int, error)
	First() (int, error)
	Last() (int, error)
	RemoveFirst() error
	RemoveAt(index int) error
	RemoveLast() error
	Size() int
}

// Factory builds an empty container with the given initial capacity.
type Factory func(capacity int) (Container, error)

// Operation is one timed call. middle is len(input)/2 and value is the
// element inserted by add_* operations.
type Operation struct {
	Name string
	Run  func(c Container, middle, value int) error
}

type Registry struct {
	structures map[string]Factory
	operations map[string]Operation
}

func NewRegistry() *Registry {
	r := &Registry{
		structures: make(map[string]Factory),
		operations: make(map[string]Operation),
	}

	r.structures["arraylist"] = func(capacity int) (Container, error) {
		d, err := seq.NewWithCapacity(capacity)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	r.structures["queue"] = func(capacity int) (Container, error) {
		q, err := seq.NewQueueWithCapacity(capacity)
		if err != nil {
			return nil, err
		}
		return q, nil
	}

	r.add("add_first", func(c Container, _, v int) error {
		c.InsertFirst(v)
		return nil
	})
	r.add("add_middle", func(c Container, mid, v int) error {
		return c.InsertAt(v, mid)
	})
	r.add("add_last", func(c Container, _, v int) error {
		c.Append(v)
		return nil
	})
	r.add("get_first", func(c Container, _, _ int) error {
		_, err := c.First()
		return err
	})
	r.add("get", func(c Container, mid, _ int) error {
		_, err := c.Get(mid)
		return err
	})
	r.add("get_last", func(c Container, _, _ int) error {
		_, err := c.Last()
		return err
	})
	r.add("remove_first", func(c Container, _, _ int) error {
		return c.RemoveFirst()
	})
	r.add("remove_middle", func(c Container, mid, _ int) error {
		return c.RemoveAt(mid)
	})
	r.add("remove_last", func(c Container, _, _ int) error {
		return c.RemoveLast()
	})

	return r
}

func (r *Registry) add(name string, fn func(c Container, middle, value int) error) {
	r.operations[name] = Operation{Name: name, Run: fn}
}

func (r *Registry) GetStructure(name string) (Factory, error) {
	fn, ok := r.structures[name]
	if !ok {
		return nil, fmt.Errorf("unknown structure: %s", name)
	}
	return fn, nil
}

func (r *Registry) GetOperation(name string) (Operation, error) {
	op, ok := r.operations[name]
	if !ok {
		return Operation{}, fmt.Errorf("unknown operation: %s", name)
	}
	return op, nil
}

func (r *Registry) ListStructures() []string {
	return sortedKeys(r.structures)
}

func (r *Registry) ListOperations() []string {
	return sortedKeys(r.operations)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
