package timer

import (
	"strconv"
	"strings"
)

const maxParts = 3

// MaxSeconds is the longest countdown accepted. Past it the clock step is
// lost in float precision and the display overflows.
const MaxSeconds = 1e12

// Parse converts "ss", "mm:ss" or "hh:mm:ss" into seconds. Fields are read
// from the right, so a single field is always seconds ("90" is a minute and a half).
// Every field must consist of ASCII digits only: signs, blanks and empty fields are rejected.
func Parse(value string) (float64, error) {
	if value == "" {
		return 0, errEmpty()
	}

	parts := strings.Split(value, ":")
	if len(parts) > maxParts {
		return 0, errTooManyParts(value)
	}

	var total float64
	place := 1.0
	for i := len(parts) - 1; i >= 0; i-- {
		n, err := parseField(parts[i])
		if err != nil {
			return 0, errBadField(value, parts[i])
		}
		total += float64(n) * place
		place *= 60
	}
	if total > MaxSeconds {
		return 0, errTooLong(value)
	}
	return total, nil
}

func parseField(field string) (uint64, error) {
	if field == "" {
		return 0, strconv.ErrSyntax
	}
	for _, r := range field {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseUint(field, 10, 64)
}
