// Package symbol holds the closed table of characters cb knows how to copy.
//
// The table is fixed at build time. Every Symbol has exactly one codepoint and
// resolving a Symbol cannot fail for a well-formed table.
package symbol

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"

	"github.com/rileyhilliard/cb/internal/errors"
	"github.com/rileyhilliard/cb/internal/util"
)

// Symbol identifies one entry of the table.
type Symbol int

// Symbols in display order.
const (
	EnDash Symbol = iota
	EmDash
	Minus
	Times
	Div
	Sim
	Approx
	Gte
	Lte
	In
	Ni
	Union
	Intersection
	Subset
	SubsetEq
	Supset
	SupsetEq
	RightArrow
	MapsTo
	LeftArrow
	MapsFrom
	Prime
	PlusMinus
	Degree
	TradeMark

	count
)

// Category groups related symbols for listing.
type Category string

const (
	CategoryDashes    Category = "Dashes"
	CategoryOperators Category = "Operators"
	CategoryEquality  Category = "Equality"
	CategorySetTheory Category = "Set Theory"
	CategoryArrows    Category = "Long Arrows"
	CategoryOther     Category = "Other"
)

// Categories returns the categories in display order.
func Categories() []Category {
	return []Category{
		CategoryDashes,
		CategoryOperators,
		CategoryEquality,
		CategorySetTheory,
		CategoryArrows,
		CategoryOther,
	}
}

type entry struct {
	name      string
	aliases   []string
	codepoint uint32
	category  Category
}

// table is indexed by Symbol. TestTableIsTotal keeps it in step with the consts.
var table = [count]entry{
	EnDash: {name: "en-dash", codepoint: 0x2013, category: CategoryDashes},
	EmDash: {name: "em-dash", codepoint: 0x2014, category: CategoryDashes},

	Minus: {name: "minus", codepoint: 0x2212, category: CategoryOperators},
	Times: {name: "times", codepoint: 0x00D7, category: CategoryOperators},
	Div:   {name: "div", codepoint: 0x00F7, category: CategoryOperators},

	Sim:    {name: "sim", codepoint: 0x223C, category: CategoryEquality},
	Approx: {name: "approx", codepoint: 0x2248, category: CategoryEquality},
	Gte:    {name: "gte", codepoint: 0x2265, category: CategoryEquality},
	Lte:    {name: "lte", codepoint: 0x2264, category: CategoryEquality},

	In:           {name: "in", codepoint: 0x2208, category: CategorySetTheory},
	Ni:           {name: "ni", codepoint: 0x220B, category: CategorySetTheory},
	Union:        {name: "union", codepoint: 0x222A, category: CategorySetTheory},
	Intersection: {name: "intersection", codepoint: 0x2229, category: CategorySetTheory},
	Subset:       {name: "subset", codepoint: 0x2282, category: CategorySetTheory},
	SubsetEq:     {name: "subseteq", aliases: []string{"subset-eq"}, codepoint: 0x2286, category: CategorySetTheory},
	Supset:       {name: "supset", codepoint: 0x2283, category: CategorySetTheory},
	SupsetEq:     {name: "supseteq", aliases: []string{"supset-eq"}, codepoint: 0x2287, category: CategorySetTheory},

	RightArrow: {name: "right-arrow", codepoint: 0x27F6, category: CategoryArrows},
	MapsTo:     {name: "maps-to", codepoint: 0x27FC, category: CategoryArrows},
	LeftArrow:  {name: "left-arrow", codepoint: 0x27F5, category: CategoryArrows},
	MapsFrom:   {name: "maps-from", codepoint: 0x27FB, category: CategoryArrows},

	Prime:     {name: "prime", codepoint: 0x2032, category: CategoryOther},
	PlusMinus: {name: "plus-minus", codepoint: 0x00B1, category: CategoryOther},
	Degree:    {name: "degree", codepoint: 0x00B0, category: CategoryOther},
	TradeMark: {name: "trade-mark", codepoint: 0x2122, category: CategoryOther},
}

// byName maps canonical names and aliases to symbols.
var byName = func() map[string]Symbol {
	m := make(map[string]Symbol, len(table))
	for i, e := range table {
		m[e.name] = Symbol(i)
		for _, a := range e.aliases {
			m[a] = Symbol(i)
		}
	}
	return m
}()

// knownNames holds every accepted name, canonical names first.
var knownNames = func() []string {
	names := Names()
	for _, e := range table {
		names = append(names, e.aliases...)
	}
	return names
}()

// Parse looks up a symbol by its canonical name or an alias.
// Names are case-sensitive.
func Parse(name string) (Symbol, error) {
	s, ok := byName[name]
	if !ok {
		return 0, errors.NewUnknownSymbol(name, util.SuggestSimilar(name, knownNames, 3))
	}
	return s, nil
}

// All returns every symbol in display order.
func All() []Symbol {
	out := make([]Symbol, count)
	for i := range out {
		out[i] = Symbol(i)
	}
	return out
}

// Names returns the canonical names in display order.
func Names() []string {
	names := make([]string, count)
	for i, e := range table {
		names[i] = e.name
	}
	return names
}

// Name returns the canonical name.
func (s Symbol) Name() string {
	return s.entry().name
}

// Aliases returns alternate accepted names, if any.
func (s Symbol) Aliases() []string {
	return s.entry().aliases
}

// Codepoint returns the Unicode scalar value.
func (s Symbol) Codepoint() uint32 {
	return s.entry().codepoint
}

// Category returns the display group.
func (s Symbol) Category() Category {
	return s.entry().category
}

// Rune decodes the codepoint. An invalid table entry is a programming error and panics.
func (s Symbol) Rune() rune {
	r := rune(s.entry().codepoint)
	if !utf8.ValidRune(r) {
		panic(fmt.Sprintf("symbol: %s maps to invalid scalar value U+%04X", s.entry().name, s.entry().codepoint))
	}
	return r
}

// Description returns the Unicode character name, e.g. "MINUS SIGN".
func (s Symbol) Description() string {
	return runenames.Name(s.Rune())
}

// String returns the canonical name.
func (s Symbol) String() string {
	if s < 0 || s >= count {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return s.entry().name
}

// Resolve renders the symbol as a one-character string.
func Resolve(s Symbol) string {
	return string(s.Rune())
}

// FormatCodepoint renders a codepoint in U+XXXX notation.
func FormatCodepoint(cp uint32) string {
	return fmt.Sprintf("U+%04X", cp)
}

func (s Symbol) entry() entry {
	if s < 0 || s >= count {
		panic(fmt.Sprintf("symbol: %d is outside the table", int(s)))
	}
	return table[s]
}
