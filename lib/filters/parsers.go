package filters

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var yearsArg = regexp.MustCompile(`^([0-9]{4}|0)(-([0-9]{4}|0))?$`)

// ParseStringFilter turns a list of comma separated argument values into a
// token filter. An empty list, or one containing "all" in any case, means
// no filtering and yields nil.
func ParseStringFilter(args []string) *StringFilter {
	tokens := lo.FlatMap(args, func(a string, _ int) []string {
		return strings.Split(a, ",")
	})

	if len(tokens) == 0 {
		return nil
	}

	if lo.ContainsBy(tokens, func(t string) bool { return strings.EqualFold(t, "all") }) {
		return nil
	}

	return NewStringFilter(tokens...)
}

// ParseYearRange parses the years argument: a four digit year (YYYY), an
// inclusive range (YYYY-ZZZZ), or 0 meaning all years. A 0 on either side
// of a range also means all years.
func ParseYearRange(arg string) (*YearRange, error) {
	if arg == "" {
		return nil, nil
	}

	groups := yearsArg.FindStringSubmatch(arg)
	if groups == nil {
		return nil, errors.Errorf("invalid input for years argument: %v", arg)
	}

	min, _ := strconv.Atoi(groups[1])

	max := min
	if groups[3] != "" {
		max, _ = strconv.Atoi(groups[3])
	}

	if min == 0 || max == 0 {
		return nil, nil
	}

	return NewYearRange(min, max), nil
}
