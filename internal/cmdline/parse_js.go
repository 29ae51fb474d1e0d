//go:build js && wasm

package cmdline

import (
	"errors"
	"fmt"
	"syscall/js"
)

var errNoLocation = errors.New("page has no location")

// Parse reads the query string of the page the program runs in.
func (p *Parser) Parse() (*Parsed, error) {
	search, err := locationSearch()
	if err != nil {
		return nil, &ParseError{Kind: ParsingFailed, Err: err}
	}
	return p.ParseQuery(search)
}

func locationSearch() (search string, err error) {
	defer func() {
		if r := recover(); r != nil {
			jsErr, ok := r.(js.Error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("reading location.search: %w", jsErr)
		}
	}()
	loc := js.Global().Get("location")
	if loc.IsUndefined() || loc.IsNull() {
		return "", errNoLocation
	}
	v := js.Global().Get("Reflect").Call("get", loc, "search")
	if v.Type() != js.TypeString {
		return "", errNoLocation
	}
	return v.String(), nil
}
