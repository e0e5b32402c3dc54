/*
File : kodi-script-go/file/file.go
*/

// Package file implements the host-side script loader. It reads `.kodi`
// sources from disk, extracts the directive comments that configure a
// run, and executes them through the builder. The CLI and the compliance
// fixtures both go through this package; the language core itself never
// touches the filesystem.
package file

import (
	"os"
	"strconv"
	"strings"

	"github.com/issadicko/kodi-script-go/kodi"
)

// Extension is the conventional suffix for KodiScript sources.
const Extension = ".kodi"

// Directives are run settings read from comments inside a script:
//
//	// config: maxOps=N     caps the operation count
//	// expect: error        marks the run as expected to fail
type Directives struct {
	MaxOps      int  // Operation cap; zero means unlimited
	ExpectError bool // The reference outcome is an error
}

// ParseDirectives scans a source for directive comments. Unknown
// directives are ignored.
func ParseDirectives(src string) Directives {
	var directives Directives

	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "//") {
			continue
		}
		body := strings.TrimSpace(strings.TrimPrefix(line, "//"))

		if cfg, ok := strings.CutPrefix(body, "config:"); ok {
			for _, field := range strings.Fields(cfg) {
				if value, ok := strings.CutPrefix(field, "maxOps="); ok {
					if n, err := strconv.Atoi(value); err == nil {
						directives.MaxOps = n
					}
				}
			}
		}

		if expect, ok := strings.CutPrefix(body, "expect:"); ok {
			if strings.TrimSpace(expect) == "error" {
				directives.ExpectError = true
			}
		}
	}

	return directives
}

// Load reads a script file and its directives.
func Load(path string) (string, Directives, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", Directives{}, err
	}
	src := string(data)
	return src, ParseDirectives(src), nil
}

// RunFile loads a script file and executes it with its directives
// applied. The error return covers filesystem failures only; script
// failures land in the Result.
func RunFile(path string) (kodi.Result, Directives, error) {
	src, directives, err := Load(path)
	if err != nil {
		return kodi.Result{}, directives, err
	}

	builder := kodi.NewBuilder(src)
	if directives.MaxOps > 0 {
		builder.WithMaxOperations(directives.MaxOps)
	}

	return builder.Execute(), directives, nil
}
