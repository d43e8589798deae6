package conv2d

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseKernel parses a matrix literal such as "0 -1 0; -1 5 -1; 0 -1 0".
// Rows are separated by ';' or newlines, values by spaces, tabs or commas.
// Blank rows are ignored.
func ParseKernel(spec string) (*Kernel, error) {
	lines := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ';' || r == '\n'
	})

	var rows [][]float64
	for _, line := range lines {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ',' || r == '\r'
		})
		if len(fields) == 0 {
			continue
		}

		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidKernelSpec, len(rows), err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyKernel
	}
	return NewKernel(rows)
}
