package libevents

import "fmt"

type symbol struct {
	desc string
}

// EventKey identifies an event. Named keys compare by content, symbol keys compare by
// identity: a key built with NewSymbol is only equal to itself and its copies.
// EventKey is comparable and can be used as the K parameter of an Emitter.
type EventKey struct {
	name string
	sym  *symbol
}

// Name returns the named key for s. Name("a") == Name("a").
func Name(s string) EventKey {
	return EventKey{name: s}
}

// NewSymbol returns a fresh opaque key. desc is only used for String.
func NewSymbol(desc string) EventKey {
	return EventKey{sym: &symbol{desc: desc}}
}

func (k EventKey) IsSymbol() bool {
	return k.sym != nil
}

func (k EventKey) String() string {
	if k.sym != nil {
		return fmt.Sprintf("Symbol(%s)", k.sym.desc)
	}
	return k.name
}
