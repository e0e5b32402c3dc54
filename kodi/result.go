/*
File : kodi-script-go/kodi/result.go
*/
package kodi

// Result is the record a run hands back to the host.
//
// Value is the final expression value of the program converted to a
// native Go value (nil, bool, float64, string, []interface{}, or
// map[string]interface{}), or nil if the program produced none. Output
// holds one entry per `print` call, in emission order. Errors holds
// human-readable error messages; a non-empty list means the run did not
// complete, and Value is then undefined but safe to access.
type Result struct {
	Value  interface{} // Final program value
	Output []string    // One entry per print call
	Errors []string    // Empty on success
}

// OK reports whether the run completed without errors.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}
