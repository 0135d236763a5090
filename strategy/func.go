package strategy

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"

	"type-caster/chain"
	"type-caster/convert"
	"type-caster/descriptor"
)

var (
	ErrNotAFunction  = errors.New("provided value is not a function")
	ErrNotAConverter = errors.New("provided function is not a recognizable converter")
)

var errorType = reflect.TypeFor[error]()

// Custom is a strategy built from a plain Go function. It matches exactly
// the descriptors of the function's parameter and first result.
type Custom struct {
	Src, Dst descriptor.Descriptor
	name     string
	fn       reflect.Value
	hasBool  bool
	hasErr   bool
}

// Func builds a Custom strategy. Supported signatures:
//   - func(src S) D
//   - func(src S) (D, bool)
//   - func(src S) (D, error)
//   - func(src S) (D, bool, error)
//
// A false bool result converts to null.
func Func(fn any) (*Custom, error) {
	fnVal := reflect.ValueOf(fn)
	if fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		return nil, ErrNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.IsVariadic() {
		return nil, ErrNotAConverter
	}

	c := &Custom{
		Src:  descriptor.Of(fnType.In(0)),
		Dst:  descriptor.Of(fnType.Out(0)),
		name: funcName(fnVal),
		fn:   fnVal,
	}

	switch fnType.NumOut() {
	case 1:
	case 2:
		switch last := fnType.Out(1); {
		case last.Kind() == reflect.Bool:
			c.hasBool = true
		case last == errorType:
			c.hasErr = true
		default:
			return nil, ErrNotAConverter
		}
	case 3:
		if fnType.Out(1).Kind() != reflect.Bool || fnType.Out(2) != errorType {
			return nil, ErrNotAConverter
		}

		c.hasBool = true
		c.hasErr = true
	default:
		return nil, ErrNotAConverter
	}

	return c, nil
}

// MustFunc is like Func but panics on error.
func MustFunc(fn any) *Custom {
	c, err := Func(fn)
	if err != nil {
		panic(err)
	}

	return c
}

func (c *Custom) Name() string { return c.name }

func (c *Custom) Resolve(src, dst descriptor.Descriptor, cur chain.Cursor) (convert.Converter, bool) {
	if !src.Equal(c.Src) || !dst.Equal(c.Dst) {
		return cur.Next(src, dst)
	}

	return convert.NullSafe(c.call), true
}

func (c *Custom) call(src any) (any, error) {
	in := reflect.ValueOf(src)
	if want := c.fn.Type().In(0); !in.Type().AssignableTo(want) {
		return nil, fmt.Errorf("%w: got %T, want %s", convert.ErrUnexpectedValue, src, want)
	}

	out := c.fn.Call([]reflect.Value{in})
	if c.hasErr {
		if err, _ := out[len(out)-1].Interface().(error); err != nil {
			return nil, fmt.Errorf("%s: %w", c.name, err)
		}
	}

	if c.hasBool && !out[1].Bool() {
		return nil, nil
	}

	return out[0].Interface(), nil
}

// funcName returns the package qualified name of a function, e.g. "strconv.Itoa".
func funcName(fn reflect.Value) string {
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return "func"
	}

	_, name := path.Split(f.Name())

	return name
}
