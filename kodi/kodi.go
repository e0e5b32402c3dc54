/*
File : kodi-script-go/kodi/kodi.go
*/

// Package kodi is the host façade of the KodiScript runtime. Hosts embed
// the language through three entry points: Eval returns just a value and
// raises on failure, Run returns the full Result record, and NewBuilder
// assembles a configured single-use run with injected variables,
// registered functions, and execution limits.
package kodi

import "errors"

// Eval runs a source string and returns only its value. Any lexical,
// parse, or runtime error is returned as a Go error carrying the first
// message.
func Eval(source string) (interface{}, error) {
	result := NewBuilder(source).Execute()
	if !result.OK() {
		return nil, errors.New(result.Errors[0])
	}
	return result.Value, nil
}

// Run executes a source string with an optional variables map and
// returns the full Result record. Errors are reported in the record, not
// raised.
func Run(source string, vars map[string]interface{}) Result {
	builder := NewBuilder(source)
	if vars != nil {
		builder.WithVariables(vars)
	}
	return builder.Execute()
}
