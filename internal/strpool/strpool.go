// Package strpool interns strings so that two tokens which compare equal
// share a single backing value. Callers that hold a *string from the same
// Pool can compare by pointer instead of hashing or scanning the contents.
// The dom package's id/tag/class index and the css selector matcher do not
// intern through a Pool; they key on and compare plain strings.
package strpool

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// Pool is a string interner. It is not safe for concurrent use, matching the
// single-threaded DOM tree in the rest of the module. The dom package keeps
// a per-document slot for one Pool but never creates or fills it.
type Pool struct {
	entries map[string]*string
	count   int
}

// New returns an empty Pool.
func New() *Pool {
	return &Pool{entries: make(map[string]*string, 64)}
}

// Intern returns the canonical *string for s within this pool, allocating
// one on first use. Well-known HTML tag and attribute names (those present
// in golang.org/x/net/html/atom's static table) are canonicalized against
// the atom's own lowercase spelling, so "DIV" and "div" intern to the same
// value the way tag names already compare in an HTML document.
func (p *Pool) Intern(s string) *string {
	if v, ok := p.entries[s]; ok {
		return v
	}
	if a := atom.Lookup([]byte(strings.ToLower(s))); a != 0 {
		if canon, ok := p.entries[a.String()]; ok {
			p.entries[s] = canon
			return canon
		}
		name := a.String()
		v := &name
		p.entries[s] = v
		p.entries[name] = v
		p.count++
		return v
	}
	v := new(string)
	*v = s
	p.entries[s] = v
	p.count++
	return v
}

// Lookup reports whether s has already been interned in this pool, without
// inserting it.
func (p *Pool) Lookup(s string) (*string, bool) {
	v, ok := p.entries[s]
	return v, ok
}

// Same reports whether a and b were interned from this pool and refer to
// the same backing string.
func (p *Pool) Same(a, b *string) bool {
	return a == b
}

// Len reports the number of distinct canonical strings held by the pool.
func (p *Pool) Len() int {
	return p.count
}
