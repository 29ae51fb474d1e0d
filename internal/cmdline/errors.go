package cmdline

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// ParsingFailed is an overall failure to read the input.
	ParsingFailed ErrorKind = iota
	// ValueParsingFailed means an option's value was rejected by its parser.
	ValueParsingFailed
	// UnknownOption means the input names an option that was never
	// registered.
	UnknownOption
	// MissingValue means an option that needs a value was given none.
	MissingValue
	// UnknownValue means the input holds a value that belongs to no option.
	UnknownValue
)

func (k ErrorKind) String() string {
	switch k {
	case ParsingFailed:
		return "ParsingFailed"
	case ValueParsingFailed:
		return "ValueParsingFailed"
	case UnknownOption:
		return "UnknownOption"
	case MissingValue:
		return "MissingValue"
	case UnknownValue:
		return "UnknownValue"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is returned by every parse method. Name is the option as it
// was written, without dashes, when Kind concerns a single option.
type ParseError struct {
	Kind ErrorKind
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ValueParsingFailed:
		return fmt.Sprintf("could not parse value for option %s: %v", e.Name, e.Err)
	case UnknownOption:
		return fmt.Sprintf("unknown option %s", e.Name)
	case MissingValue:
		return fmt.Sprintf("no value for option %s", e.Name)
	case UnknownValue:
		return "found a value that is not an option or the value of one"
	default:
		if e.Err != nil {
			return fmt.Sprintf("could not parse arguments: %v", e.Err)
		}
		return "could not parse arguments"
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
