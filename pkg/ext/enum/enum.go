package enum

import (
	"reflect"
	"slices"
	"sync"

	"github.com/ib-77/extkit/pkg/ext"
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Member[E Integer] struct {
	Name  string
	Value E
}

func M[E Integer](name string, value E) Member[E] {
	return Member[E]{Name: name, Value: value}
}

// Enum is the registered descriptor of the enumeration E.
type Enum[E Integer] struct {
	typ     reflect.Type
	members []Member[E]
}

func (e *Enum[E]) Type() reflect.Type {
	return e.typ
}

func (e *Enum[E]) Values() []E {
	values := make([]E, len(e.members))
	for i, m := range e.members {
		values[i] = m.Value
	}
	return values
}

func (e *Enum[E]) Names() []string {
	names := make([]string, len(e.members))
	for i, m := range e.members {
		names[i] = m.Name
	}
	return names
}

// Name returns the first declared name for v.
func (e *Enum[E]) Name(v E) (string, bool) {
	for _, m := range e.members {
		if m.Value == v {
			return m.Name, true
		}
	}
	return "", false
}

func (e *Enum[E]) Parse(name string) (E, bool) {
	for _, m := range e.members {
		if m.Name == name {
			return m.Value, true
		}
	}
	var zero E
	return zero, false
}

// entry is the type-erased view kept in the registry.
type entry struct {
	values any // []E
	names  []string
	ints   []int
}

var (
	mu       sync.RWMutex
	registry = map[reflect.Type]entry{}
)

// Register records the ordered members of E and returns its descriptor.
// Registering E again replaces the previous members. It panics if a member
// value does not fit in an int, since EnumToDictionary reports values as int.
func Register[E Integer](members ...Member[E]) *Enum[E] {
	e := &Enum[E]{
		typ:     reflect.TypeFor[E](),
		members: slices.Clone(members),
	}

	ints := make([]int, len(members))
	for i, m := range members {
		n := int(m.Value)
		if E(n) != m.Value || (n < 0) != (m.Value < 0) {
			panic(ext.NewArgumentError("Register", "members", m.Name, "value does not fit in int"))
		}
		ints[i] = n
	}

	mu.Lock()
	registry[e.typ] = entry{values: e.Values(), names: e.Names(), ints: ints}
	mu.Unlock()

	return e
}

func lookup(op string, t reflect.Type) (entry, error) {
	if t == nil {
		return entry{}, &ext.ArgumentError{Op: op, Param: "t", Err: ext.ErrNilReference}
	}

	mu.RLock()
	en, ok := registry[t]
	mu.RUnlock()

	if !ok {
		return entry{}, &ext.TypeError{Op: op, Got: t, Err: ext.ErrTypeMismatch}
	}
	return en, nil
}

// EnumToList returns the members of the enumeration t, in declared order, as
// values of T. T must be the enumeration type itself.
func EnumToList[T any](t reflect.Type) ([]T, error) {
	en, err := lookup("EnumToList", t)
	if err != nil {
		return nil, err
	}

	want := reflect.TypeFor[T]()
	if want != t {
		return nil, &ext.TypeError{Op: "EnumToList", Want: t, Got: want, Err: ext.ErrTypeMismatch}
	}

	values, ok := en.values.([]T)
	if !ok {
		return nil, &ext.TypeError{Op: "EnumToList", Want: t, Got: want, Err: ext.ErrTypeMismatch}
	}
	return slices.Clone(values), nil
}

// EnumToDictionary maps each member name of the enumeration t to its integer value.
func EnumToDictionary(t reflect.Type) (map[string]int, error) {
	en, err := lookup("EnumToDictionary", t)
	if err != nil {
		return nil, err
	}

	dict := make(map[string]int, len(en.names))
	for i, name := range en.names {
		dict[name] = en.ints[i]
	}
	return dict, nil
}
