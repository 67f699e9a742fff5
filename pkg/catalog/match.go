package catalog

import (
	"strconv"
	"strings"
)

// MatchRule selects how a stored spec value is compared against a
// selected facet value.
type MatchRule int

// Match rule constants.
const (
	// SubstringCI is the fallback: case-insensitive containment.
	SubstringCI MatchRule = iota
	// AtLeastInteger compares the first digit runs of both values,
	// matching when item >= selected.
	AtLeastInteger
	// AtLeastCapacity is AtLeastInteger with TB/GB unit normalization.
	AtLeastCapacity
	// RangeBucket interprets the selected value as "до N", "от N" or "A-B".
	RangeBucket
)

// matchRules is the fixed key → rule dispatch table. Keys absent here
// fall through to SubstringCI. New numeric keys must be added explicitly;
// predictability is preferred over extensibility.
var matchRules = map[string]MatchRule{
	"cores":        AtLeastInteger,
	"threads":      AtLeastInteger,
	"memorySlots":  AtLeastInteger,
	"sataPorts":    AtLeastInteger,
	"m2Slots":      AtLeastInteger,
	"fansIncluded": AtLeastInteger,
	"power":        AtLeastInteger,

	"memoryCapacity":  AtLeastCapacity,
	"storageCapacity": AtLeastCapacity,

	"gpuClock":     RangeBucket,
	"memoryClock":  RangeBucket,
	"frequency":    RangeBucket,
	"maxFrequency": RangeBucket,
	"fanSpeed":     RangeBucket,
}

// RuleForKey returns the match rule used for a spec key.
func RuleForKey(key string) MatchRule {
	return matchRules[key]
}

// MatchesFacet reports whether a stored spec value satisfies a selected
// facet value for the given key. All parsing is total: malformed values
// produce a non-match, never an error.
func MatchesFacet(key, itemValue, selectedValue string) bool {
	switch matchRules[key] {
	case AtLeastInteger:
		item, okItem := firstInt(itemValue)
		sel, okSel := firstInt(selectedValue)
		return okItem && okSel && item >= sel
	case AtLeastCapacity:
		item, okItem := capacityGB(itemValue)
		sel, okSel := capacityGB(selectedValue)
		return okItem && okSel && item >= sel
	case RangeBucket:
		item, ok := leadingNumber(itemValue)
		if !ok {
			return false
		}
		return matchRangeBucket(item, selectedValue)
	default:
		// An empty selected value is a substring of everything and
		// therefore matches any item value.
		return strings.Contains(
			strings.ToLower(itemValue),
			strings.ToLower(selectedValue),
		)
	}
}

func matchRangeBucket(item float64, selected string) bool {
	switch {
	case strings.HasPrefix(selected, "до"):
		maxVal, ok := leadingNumber(strings.TrimPrefix(selected, "до"))
		return ok && item <= maxVal
	case strings.HasPrefix(selected, "от"):
		minVal, ok := leadingNumber(strings.TrimPrefix(selected, "от"))
		return ok && item >= minVal
	case strings.Contains(selected, "-"):
		lo, hi, ok := splitRange(selected)
		return ok && item >= lo && item <= hi
	default:
		// Unrecognized bucket shapes never match.
		return false
	}
}

func splitRange(s string) (lo, hi float64, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, okLo := leadingNumber(parts[0])
	hi, okHi := leadingNumber(parts[1])
	if !okLo || !okHi {
		return 0, 0, false
	}
	return lo, hi, true
}

// firstInt extracts the first run of decimal digits in s.
func firstInt(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// leadingNumber extracts the first run of digits (with an optional
// decimal point) in s as a float.
func leadingNumber(s string) (float64, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}
	end := start
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	// "3." parses fine with ParseFloat but trim anyway for cleanliness.
	frag := strings.TrimSuffix(s[start:end], ".")
	n, err := strconv.ParseFloat(frag, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// capacityGB normalizes a capacity string to a GB-equivalent integer:
// "2 TB" → 2000, "512 GB" → 512, "512" → 512.
func capacityGB(s string) (int, bool) {
	upper := strings.ToUpper(s)
	if strings.Contains(upper, "TB") {
		n, ok := leadingNumber(s)
		if !ok {
			return 0, false
		}
		return int(n * 1000), true
	}
	// "GB" and unitless both take the leading integer as-is.
	return firstInt(s)
}
