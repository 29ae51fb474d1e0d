// Package cmdline reads named options the same way on every target: from
// the process arguments on native builds and from the page's URL query in
// the browser.
//
// Only options are supported. There are no positional or required
// arguments. A name of one character is a short option (-f, or ?f=... on
// the web); anything longer is a long option (--foo, ?foo=...).
//
//	p := cmdline.New()
//	fullscreen := p.Flag("fullscreen", "f")
//	volume := p.Int("volume", "v")
//	parsed, err := p.Parse()
//	if err != nil { ... }
//	if v, ok := cmdline.Get(parsed, volume); ok { ... }
package cmdline

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Parser holds the set of options a program understands. Register options
// first, then call Parse (or ParseArgs / ParseQuery) any number of times.
type Parser struct {
	args  []*argDef
	names map[string]bool
}

type argDef struct {
	long  []string
	short []string
	flag  bool
	parse func(string) (any, error)
}

// primary is the name reported in errors raised by value parsing.
func (d *argDef) primary() string {
	if len(d.long) > 0 {
		return d.long[0]
	}
	return d.short[0]
}

// Arg identifies a registered option whose parsed value has type T.
type Arg[T any] struct {
	id int
}

// Parsed holds the values found by one parse. Options that were not given
// have no value.
type Parsed struct {
	values []any
}

// New returns an empty Parser.
func New() *Parser {
	return &Parser{names: make(map[string]bool)}
}

// Flag registers a boolean option that takes no value. When present its
// value is true.
func (p *Parser) Flag(names ...string) Arg[bool] {
	return Arg[bool]{id: p.add(&argDef{flag: true}, names)}
}

// Option registers an option whose value is converted by parse. A parse
// error is reported as ValueParsingFailed.
func Option[T any](p *Parser, parse func(string) (T, error), names ...string) Arg[T] {
	def := &argDef{parse: func(s string) (any, error) { return parse(s) }}
	return Arg[T]{id: p.add(def, names)}
}

// String registers an option taking any string value.
func (p *Parser) String(names ...string) Arg[string] {
	return Option(p, func(s string) (string, error) { return s, nil }, names...)
}

// Int registers an option taking a base-10 integer.
func (p *Parser) Int(names ...string) Arg[int] {
	return Option(p, strconv.Atoi, names...)
}

// add panics on programmer errors: no names, malformed names and names
// already taken by another option.
func (p *Parser) add(def *argDef, names []string) int {
	if len(names) == 0 {
		panic("cmdline: option registered without a name")
	}
	for _, n := range names {
		switch {
		case n == "" || n[0] == '-':
			panic(fmt.Sprintf("cmdline: invalid option name %q", n))
		case p.names[n]:
			panic(fmt.Sprintf("cmdline: option %q registered twice", n))
		case utf8.RuneCountInString(n) == 1:
			if len(n) != 1 {
				panic(fmt.Sprintf("cmdline: short option %q must be ASCII", n))
			}
			def.short = append(def.short, n)
		default:
			def.long = append(def.long, n)
		}
		p.names[n] = true
	}
	p.args = append(p.args, def)
	return len(p.args) - 1
}

// Get returns the value parsed for arg and whether the option was present.
func Get[T any](parsed *Parsed, arg Arg[T]) (T, bool) {
	var zero T
	if parsed == nil || arg.id < 0 || arg.id >= len(parsed.values) {
		return zero, false
	}
	v, ok := parsed.values[arg.id].(T)
	if !ok {
		return zero, false
	}
	return v, true
}
