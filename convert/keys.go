package convert

import (
	"math/big"
	"reflect"
)

// keyIndex makes boxed set entries and map keys compare by the value they
// point to: the first pointer seen for a value becomes the key every later
// equal value is stored under. Other key types already compare by value and
// need no index.
type keyIndex struct {
	seen map[any]reflect.Value
}

type boxedKey struct {
	value any
	null  bool
}

func newKeyIndex(t reflect.Type) *keyIndex {
	if t.Kind() != reflect.Pointer {
		return nil
	}

	return &keyIndex{seen: make(map[any]reflect.Value)}
}

// canonical returns the key k is stored under, and whether an equal key was
// already seen.
func (idx *keyIndex) canonical(k reflect.Value) (reflect.Value, bool) {
	if idx == nil {
		return k, false
	}

	id, ok := boxedIdentity(k)
	if !ok {
		return k, false
	}

	if prev, found := idx.seen[id]; found {
		return prev, true
	}

	idx.seen[id] = k

	return k, false
}

// boxedIdentity returns the comparable value behind the pointer k. Big
// numbers compare by their exact text.
func boxedIdentity(k reflect.Value) (boxedKey, bool) {
	if k.IsNil() {
		return boxedKey{null: true}, true
	}

	switch n := k.Interface().(type) {
	case *big.Int:
		return boxedKey{value: "bigint:" + n.String()}, true
	case *big.Float:
		return boxedKey{value: "bigdec:" + n.Text('g', -1)}, true
	}

	if !k.Elem().Comparable() {
		return boxedKey{}, false
	}

	return boxedKey{value: k.Elem().Interface()}, true
}
