package convert

import (
	"fmt"
	"reflect"
)

// Source reads an existing container.
type Source interface {
	Len(container any) (int, error)
	Each(container any, fn func(i int, elem any) error) error
}

// Target builds a new container.
type Target interface {
	New(capacity int) Builder
}

// Builder accumulates the elements of a container under construction.
type Builder interface {
	Append(elem any) error
	Build() any
}

// Handler is the full capability set of one container kind.
type Handler interface {
	Source
	Target
}

// Sequence handles ordered containers held in Go slices. Go arrays are
// accepted as sources. Type is the slice type to build and may be nil for
// handlers only used as sources.
type Sequence struct {
	Type reflect.Type
}

func (h Sequence) Len(container any) (int, error) {
	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), nil
	default:
		return 0, fmt.Errorf("%w: %T is not a sequence", ErrUnexpectedValue, container)
	}
}

func (h Sequence) Each(container any, fn func(i int, elem any) error) error {
	rv := reflect.ValueOf(container)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("%w: %T is not a sequence", ErrUnexpectedValue, container)
	}

	for i := range rv.Len() {
		if err := fn(i, rv.Index(i).Interface()); err != nil {
			return err
		}
	}

	return nil
}

func (h Sequence) New(capacity int) Builder {
	if h.Type == nil || h.Type.Kind() != reflect.Slice {
		panic("sequence handler has no slice type to build")
	}

	return &sequenceBuilder{slice: reflect.MakeSlice(h.Type, 0, capacity)}
}

type sequenceBuilder struct {
	slice reflect.Value
}

func (b *sequenceBuilder) Append(elem any) error {
	v, err := valueOf(b.slice.Type().Elem(), elem)
	if err != nil {
		return err
	}

	b.slice = reflect.Append(b.slice, v)

	return nil
}

func (b *sequenceBuilder) Build() any {
	return b.slice.Interface()
}

// HashSet handles unordered containers held in map[E]struct{}. Type is the
// map type to build and may be nil for handlers only used as sources.
type HashSet struct {
	Type reflect.Type
}

func (h HashSet) Len(container any) (int, error) {
	rv := reflect.ValueOf(container)
	if rv.Kind() != reflect.Map {
		return 0, fmt.Errorf("%w: %T is not a set", ErrUnexpectedValue, container)
	}

	return rv.Len(), nil
}

func (h HashSet) Each(container any, fn func(i int, elem any) error) error {
	rv := reflect.ValueOf(container)
	if rv.Kind() != reflect.Map {
		return fmt.Errorf("%w: %T is not a set", ErrUnexpectedValue, container)
	}

	i := 0
	for iter := rv.MapRange(); iter.Next(); i++ {
		if err := fn(i, iter.Key().Interface()); err != nil {
			return err
		}
	}

	return nil
}

func (h HashSet) New(capacity int) Builder {
	if h.Type == nil || h.Type.Kind() != reflect.Map {
		panic("set handler has no map type to build")
	}

	return &setBuilder{
		set:  reflect.MakeMapWithSize(h.Type, capacity),
		keys: newKeyIndex(h.Type.Key()),
	}
}

type setBuilder struct {
	set  reflect.Value
	keys *keyIndex
}

func (b *setBuilder) Append(elem any) error {
	key, err := valueOf(b.set.Type().Key(), elem)
	if err != nil {
		return err
	}

	// duplicates collapse into one entry
	key, _ = b.keys.canonical(key)
	b.set.SetMapIndex(key, reflect.Zero(b.set.Type().Elem()))

	return nil
}

func (b *setBuilder) Build() any {
	return b.set.Interface()
}

// ContainerConverter reads every element of the source container in order,
// converts it and appends it to a freshly built target container of the
// same capacity. Any element failure fails the whole conversion.
func ContainerConverter(from Source, to Target, elem Converter) Converter {
	return NullSafe(func(src any) (any, error) {
		n, err := from.Len(src)
		if err != nil {
			return nil, err
		}

		builder := to.New(n)
		err = from.Each(src, func(i int, item any) error {
			converted, err := elem(item)
			if err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}

			if err = builder.Append(converted); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}

		return builder.Build(), nil
	})
}
