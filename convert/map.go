package convert

import (
	"fmt"
	"reflect"
)

// MapConverter builds a new map of type mapType, converting every key and
// value of the source map. Any entry failure fails the whole conversion.
func MapConverter(key, value Converter, mapType reflect.Type) Converter {
	if mapType == nil || mapType.Kind() != reflect.Map {
		panic("map converter requires a map type")
	}

	return NullSafe(func(src any) (any, error) {
		rv := reflect.ValueOf(src)
		if rv.Kind() != reflect.Map {
			return nil, fmt.Errorf("%w: %T is not a map", ErrUnexpectedValue, src)
		}

		res := reflect.MakeMapWithSize(mapType, rv.Len())
		keys := newKeyIndex(mapType.Key())
		for iter := rv.MapRange(); iter.Next(); {
			k, err := convertInto(key, mapType.Key(), iter.Key().Interface())
			if err != nil {
				return nil, fmt.Errorf("key %v: %w", iter.Key(), err)
			}

			v, err := convertInto(value, mapType.Elem(), iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("value of key %v: %w", iter.Key(), err)
			}

			k, _ = keys.canonical(k)
			res.SetMapIndex(k, v)
		}

		return res.Interface(), nil
	})
}

func convertInto(c Converter, t reflect.Type, v any) (reflect.Value, error) {
	converted, err := c(v)
	if err != nil {
		return reflect.Value{}, err
	}

	return valueOf(t, converted)
}
