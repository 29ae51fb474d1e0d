//go:build !js

package cmdline

import "os"

// Parse reads the arguments the program was started with.
func (p *Parser) Parse() (*Parsed, error) {
	return p.ParseArgs(os.Args[1:])
}
