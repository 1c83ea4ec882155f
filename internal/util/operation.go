package util

import (
	"fmt"
	"runtime"
	"strings"

	vbt "github.com/2lambda123/vectorbt"
	"github.com/2lambda123/vectorbt/errors"
)

// SafeMapKernel wraps a MapKernel such that panics are recovered and
// converted into KernelErrors carrying the offending record position
func SafeMapKernel(kernel vbt.MapKernel) vbt.MapKernel {
	return func(row vbt.Row, args ...interface{}) (value float64, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = errors.KernelError{Pos: row.Pos(), Cause: fmt.Errorf("kernel panic: %w\nRow: %s\n%s", anErr, row.ToString(), GetTrace())}
				} else {
					err = errors.KernelError{Pos: row.Pos(), Cause: fmt.Errorf("kernel panic: %v\nRow: %s\n%s", r, row.ToString(), GetTrace())}
				}
			} else if err != nil {
				err = errors.KernelError{Pos: row.Pos(), Cause: err}
			}
		}()
		value, err = kernel(row, args...)
		return
	}
}

// GetTrace produces the string representation of a stack trace
func GetTrace() string {
	var name, file string
	var line int
	var pc [16]uintptr
	n := runtime.Callers(4, pc[:])
	var res strings.Builder
	for _, pc := range pc[:n] {
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		file, line = fn.FileLine(pc)
		name = fn.Name()
		if !strings.HasPrefix(name, "runtime.") {
			fmt.Fprintf(&res, "%s\n\t%s:%d\n", name, file, line)
		}
	}
	return res.String()
}
