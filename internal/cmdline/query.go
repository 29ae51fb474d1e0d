package cmdline

import (
	"net/url"
	"strings"
)

// ParseQuery parses a URL query string such as "?volume=5&f". Long names
// are looked up before short ones and the first present name wins. Keys
// that match no option are ignored, and an option given without a value is
// handed "" to parse. A flag is true whenever any of its names is present.
func (p *Parser) ParseQuery(query string) (*Parsed, error) {
	params, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return nil, &ParseError{Kind: ParsingFailed, Err: err}
	}

	parsed := &Parsed{values: make([]any, len(p.args))}
	for id, def := range p.args {
		for _, name := range append(append([]string(nil), def.long...), def.short...) {
			vals, ok := params[name]
			if !ok {
				continue
			}
			if def.flag {
				parsed.values[id] = true
				break
			}
			raw := ""
			if len(vals) > 0 {
				raw = vals[0]
			}
			v, err := def.parse(raw)
			if err != nil {
				return nil, &ParseError{Kind: ValueParsingFailed, Name: name, Err: err}
			}
			parsed.values[id] = v
			break
		}
	}
	return parsed, nil
}
