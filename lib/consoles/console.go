package consoles

import (
	"io"
)

type Console interface {
	Printf(format string, a ...any)

	PushPrefix(format string, a ...any)
	PopPrefix()

	// ErrorWriter returns a writer for error reporting, with every line
	// prefixed by the given tag.
	ErrorWriter(tag string) io.Writer
}
