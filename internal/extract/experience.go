// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strconv"
)

// yearsRe matches "3 years", "5+ years", "2.5 year" and similar. There is no
// trailing word boundary: PDF text layers often drop the space after
// "years".
var yearsRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*years?`)

// ExtractYearsExperience returns the largest year count mentioned in text,
// or nil when there is none.
func ExtractYearsExperience(text string) *float64 {
	var best *float64
	for _, m := range yearsRe.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if best == nil || v > *best {
			best = &v
		}
	}
	return best
}
