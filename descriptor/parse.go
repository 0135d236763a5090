package descriptor

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"type-caster/internal/suggest"
	"type-caster/primitive"
)

var ErrSyntax = errors.New("invalid descriptor syntax")

// Parse reads the textual form produced by Descriptor.String:
//
//	i32, *i32, bigint, bigdec     primitive, boxed and big number kinds
//	[]T, list<T>, set<T>           arrays and containers
//	map<K,V>                       maps
//	string, any, named:pkg.Type    named types
//	$E, ?, ? extends T, ? super T  placeholders and wildcards
func Parse(s string) (Descriptor, error) {
	p := parser{src: s}

	d, err := p.descriptor()
	if err != nil {
		return Descriptor{}, err
	}

	p.skipSpace()
	if !p.eof() {
		return Descriptor{}, p.errorf("unexpected %q", p.src[p.pos:])
	}

	return d, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Descriptor {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d in %q: %s", ErrSyntax, p.pos, p.src, fmt.Sprintf(format, args...))
}

func (p *parser) consume(prefix string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.src[p.pos:], prefix) {
		p.pos += len(prefix)
		return true
	}

	return false
}

func (p *parser) expect(token string) error {
	if !p.consume(token) {
		return p.errorf("expected %q", token)
	}

	return nil
}

// word reads an identifier made of letters, digits and the characters ._/-
func (p *parser) word() string {
	p.skipSpace()
	start := p.pos
	for !p.eof() {
		c := rune(p.src[p.pos])
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && !strings.ContainsRune("._/-", c) {
			break
		}
		p.pos++
	}

	return p.src[start:p.pos]
}

// identity reads a named type identity, which may be any Go type string such
// as *pkg.T, map[string]int or func(int) (bool, error). It ends at a "," or
// ">" outside brackets, or at the end of input.
func (p *parser) identity() string {
	p.skipSpace()
	start, depth := p.pos, 0
loop:
	for ; !p.eof(); p.pos++ {
		switch p.src[p.pos] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case ',', '>':
			if depth <= 0 {
				break loop
			}
		}
	}

	return strings.TrimRightFunc(p.src[start:p.pos], unicode.IsSpace)
}

func (p *parser) descriptor() (Descriptor, error) {
	switch {
	case p.consume("*"):
		k, err := p.kind()
		if err != nil {
			return Descriptor{}, err
		}

		if !k.HasPrimitive() {
			return Descriptor{}, p.errorf("%s is already boxed", k.ShortName())
		}

		return Boxed(k), nil
	case p.consume("[]"):
		elem, err := p.descriptor()
		if err != nil {
			return Descriptor{}, err
		}

		return Array(elem), nil
	case p.consume("?"):
		return p.wildcard()
	case p.consume("$"):
		name := p.word()
		if name == "" {
			return Descriptor{}, p.errorf("placeholder name expected")
		}

		return Placeholder(name), nil
	case p.consume("named:"):
		name := p.identity()
		if name == "" {
			return Descriptor{}, p.errorf("named type identity expected")
		}

		return Named(name), nil
	}

	start := p.pos
	switch word := p.word(); word {
	case "list", "set":
		elem, err := p.enclosed()
		if err != nil {
			return Descriptor{}, err
		}

		if word == "set" {
			return Set(elem), nil
		}

		return List(elem), nil
	case "map":
		return p.mapShape()
	case IdentityString:
		return Str(), nil
	case IdentityAny:
		return Any(), nil
	default:
		p.pos = start
		k, err := p.kind()
		if err != nil {
			return Descriptor{}, err
		}

		if k.HasPrimitive() {
			return Primitive(k), nil
		}

		return Boxed(k), nil
	}
}

func (p *parser) kind() (primitive.KindEnum, error) {
	word := p.word()
	k, err := primitive.ParseKind(word)
	if err != nil {
		known := append(primitive.Names(), "list", "set", "map", IdentityString, IdentityAny)
		if best, ok := suggest.Closest(word, known); ok {
			return 0, p.errorf("unknown type %q, did you mean %q?", word, best)
		}

		return 0, p.errorf("unknown type %q", word)
	}

	return k, nil
}

func (p *parser) enclosed() (Descriptor, error) {
	if err := p.expect("<"); err != nil {
		return Descriptor{}, err
	}

	elem, err := p.descriptor()
	if err != nil {
		return Descriptor{}, err
	}

	if err = p.expect(">"); err != nil {
		return Descriptor{}, err
	}

	return elem, nil
}

func (p *parser) mapShape() (Descriptor, error) {
	if err := p.expect("<"); err != nil {
		return Descriptor{}, err
	}

	key, err := p.descriptor()
	if err != nil {
		return Descriptor{}, err
	}

	if err = p.expect(","); err != nil {
		return Descriptor{}, err
	}

	value, err := p.descriptor()
	if err != nil {
		return Descriptor{}, err
	}

	if err = p.expect(">"); err != nil {
		return Descriptor{}, err
	}

	return Map(key, value), nil
}

func (p *parser) wildcard() (Descriptor, error) {
	start := p.pos
	switch p.word() {
	case "extends":
		upper, err := p.descriptor()
		if err != nil {
			return Descriptor{}, err
		}

		return WildcardExtends(upper), nil
	case "super":
		lower, err := p.descriptor()
		if err != nil {
			return Descriptor{}, err
		}

		return WildcardSuper(lower), nil
	default:
		p.pos = start
		return Wildcard(), nil
	}
}
