// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"
	"strings"
)

// String renders q as "value +/- error", e.g. "1 +/- 3" or "[1 2] +/- [3 2]".
func (q *Quantity) String() string {
	if q == nil {
		return "<nil>"
	}
	if len(q.values) == 0 {
		return "<empty>"
	}
	if q.array {
		return fmt.Sprintf("%v +/- %v", q.values, q.errs)
	}

	return fmt.Sprintf("%v +/- %v", q.values[0], q.errs[0])
}

// GoString renders q as "(value,error)".
func (q *Quantity) GoString() string {
	if q == nil {
		return "<nil>"
	}
	if len(q.values) == 0 {
		return "<empty>"
	}
	if q.array {
		return fmt.Sprintf("(%v,%v)", q.values, q.errs)
	}

	return fmt.Sprintf("(%v,%v)", q.values[0], q.errs[0])
}

// Format implements fmt.Formatter. Float verbs (%e %E %f %F %g %G) with their
// width and precision apply to both the value and the error; %v and %s use
// String, %#v uses GoString.
func (q *Quantity) Format(f fmt.State, verb rune) {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		if q == nil || len(q.values) == 0 {
			fmt.Fprint(f, q.String())
			return
		}
		layout := formatVerb(f, verb)
		if q.array {
			fmt.Fprintf(f, "%s +/- %s", formatSlice(layout, q.values), formatSlice(layout, q.errs))
			return
		}
		fmt.Fprintf(f, layout+" +/- "+layout, q.values[0], q.errs[0])
	case 'v':
		if f.Flag('#') {
			fmt.Fprint(f, q.GoString())
			return
		}
		fmt.Fprint(f, q.String())
	case 's':
		fmt.Fprint(f, q.String())
	default:
		fmt.Fprintf(f, "%%!%c(quantity=%s)", verb, q.String())
	}
}

// formatVerb rebuilds the verb with flags, width and precision from f.
func formatVerb(f fmt.State, verb rune) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, flag := range "+- 0" {
		if f.Flag(int(flag)) {
			b.WriteRune(flag)
		}
	}
	if w, ok := f.Width(); ok {
		fmt.Fprintf(&b, "%d", w)
	}
	if p, ok := f.Precision(); ok {
		fmt.Fprintf(&b, ".%d", p)
	}
	b.WriteRune(verb)

	return b.String()
}

func formatSlice(layout string, xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf(layout, x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
