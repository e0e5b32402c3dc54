/*
File : kodi-script-go/eval/output.go
*/
package eval

import "strings"

// OutputBuffer captures everything a run prints. Each Write call becomes
// one output entry, which matches the one-entry-per-print contract of
// the result record. The buffer satisfies io.Writer so builtins can use
// ordinary fmt calls against it.
type OutputBuffer struct {
	entries []string
}

// NewOutputBuffer creates an empty output buffer.
func NewOutputBuffer() *OutputBuffer {
	return &OutputBuffer{entries: make([]string, 0)}
}

// Write appends one output entry, stripping the single trailing newline
// fmt.Fprintln adds.
func (buf *OutputBuffer) Write(p []byte) (int, error) {
	buf.entries = append(buf.entries, strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// Lines returns a copy of the captured entries in emission order.
func (buf *OutputBuffer) Lines() []string {
	lines := make([]string, len(buf.entries))
	copy(lines, buf.entries)
	return lines
}
