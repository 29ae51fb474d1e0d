package cmdline

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// ParseArgs parses command-line style arguments, without the program name.
// Parsing stops at the first problem. Arguments after the options, or after
// a "--" terminator, are an UnknownValue error.
func (p *Parser) ParseArgs(args []string) (*Parsed, error) {
	parsed := &Parsed{values: make([]any, len(p.args))}
	var valueErr *ParseError

	fs := pflag.NewFlagSet("", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SetInterspersed(false)

	for id, def := range p.args {
		bind := func(name, shorthand string) {
			v := &argValue{def: def, name: name, slot: &parsed.values[id], failed: &valueErr}
			f := fs.VarPF(v, name, shorthand, "")
			if def.flag {
				f.NoOptDefVal = "true"
			}
		}
		// pflag pairs one long name with at most one shorthand; leftover
		// short names get a flag of their own.
		for i, long := range def.long {
			short := ""
			if i < len(def.short) {
				short = def.short[i]
			}
			bind(long, short)
		}
		for i := len(def.long); i < len(def.short); i++ {
			bind(def.short[i], def.short[i])
		}
	}

	if err := fs.Parse(args); err != nil {
		if valueErr != nil {
			return nil, valueErr
		}
		return nil, classifyFlagError(err)
	}
	if fs.NArg() > 0 {
		return nil, &ParseError{Kind: UnknownValue}
	}
	return parsed, nil
}

// argValue adapts a registered option to pflag.Value. It stores parsed
// values straight into the Parsed slot.
type argValue struct {
	def    *argDef
	name   string
	slot   *any
	failed **ParseError
}

func (v *argValue) Set(s string) error {
	var (
		val any
		err error
	)
	if v.def.flag {
		val, err = strconv.ParseBool(s)
	} else {
		val, err = v.def.parse(s)
	}
	if err != nil {
		*v.failed = &ParseError{Kind: ValueParsingFailed, Name: v.name, Err: err}
		return err
	}
	*v.slot = val
	return nil
}

func (v *argValue) String() string { return "" }

func (v *argValue) Type() string {
	if v.def.flag {
		return "bool"
	}
	return "value"
}

// classifyFlagError maps pflag's parse errors onto ErrorKind. pflag reports
// them as formatted messages, e.g. "unknown flag: --baz" or
// `flag needs an argument: "f" in -f`.
func classifyFlagError(err error) *ParseError {
	if errors.Is(err, pflag.ErrHelp) {
		return &ParseError{Kind: UnknownOption, Name: "help", Err: err}
	}
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, "unknown flag: "); ok {
		return &ParseError{Kind: UnknownOption, Name: flagName(rest), Err: err}
	}
	if rest, ok := strings.CutPrefix(msg, "unknown shorthand flag: "); ok {
		return &ParseError{Kind: UnknownOption, Name: flagName(rest), Err: err}
	}
	if rest, ok := strings.CutPrefix(msg, "flag needs an argument: "); ok {
		return &ParseError{Kind: MissingValue, Name: flagName(rest), Err: err}
	}
	return &ParseError{Kind: ParsingFailed, Err: err}
}

// flagName extracts the bare option name from the tail of a pflag message:
// "--baz", `"x" in -x` or `'x' in -x`.
func flagName(s string) string {
	if long, ok := strings.CutPrefix(s, "--"); ok {
		name, _, _ := strings.Cut(long, "=")
		return name
	}
	name, _, _ := strings.Cut(s, " ")
	return strings.Trim(name, `"'`)
}
