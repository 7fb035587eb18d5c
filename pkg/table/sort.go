package table

import "fmt"

// SortingAlgorithm selects how the host's tablesort plugin compares the
// cells of a column.
type SortingAlgorithm int

const (
	// Default sorts cells as text.
	Default SortingAlgorithm = iota
	// Float sorts cells as decimal numbers.
	Float
	// Integer sorts cells as whole numbers.
	Integer
	// Date sorts cells as dates.
	Date
)

var sortTokens = [...]string{
	Default: "",
	Float:   "float",
	Integer: "integer",
	Date:    "date",
}

// Token returns the class token the plugin recognizes. Unknown values map
// to the Default token.
func (a SortingAlgorithm) Token() string {
	if a < 0 || int(a) >= len(sortTokens) {
		return ""
	}
	return sortTokens[a]
}

// String names the algorithm; Default is "default".
func (a SortingAlgorithm) String() string {
	if a == Default {
		return "default"
	}
	return a.Token()
}

// ParseSortingAlgorithm accepts a token or "default".
func ParseSortingAlgorithm(s string) (SortingAlgorithm, error) {
	if s == "default" {
		return Default, nil
	}
	for i, token := range sortTokens {
		if token == s {
			return SortingAlgorithm(i), nil
		}
	}
	return Default, fmt.Errorf("table: unknown sorting algorithm %q", s)
}

// SortToken returns the class token for column. Columns beyond selection
// sort with Default.
func SortToken(column int, selection []SortingAlgorithm) string {
	if column < 0 || column >= len(selection) {
		return Default.Token()
	}
	return selection[column].Token()
}
