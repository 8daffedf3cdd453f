package actions

import (
	"fmt"
	"io"
	"strings"
)

var annotationEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")

// Fail writes an error workflow command so the runner marks the step failed
// with err as its annotation.
func Fail(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "::error::%s\n", annotationEscaper.Replace(err.Error()))
}
