package foodist

import (
	"fmt"
	"io"
	"runtime"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a spew rendering of v to w, prefixed with the caller's
// location.
func Dump(w io.Writer, v ...any) {
	_, file, line, _ := runtime.Caller(1)
	fmt.Fprintf(w, "%s:%d:\n", file, line)
	dumpConfig.Fdump(w, v...)
}
