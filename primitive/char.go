package primitive

// Char is the primitive character kind. It is a distinct type so that a
// character never collides with int32 when a descriptor is captured from a Go type.
type Char rune

func (c Char) String() string {
	return string(rune(c))
}
