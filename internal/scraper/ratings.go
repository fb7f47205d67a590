package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

// The ratings bar of a listing card is a single text blob containing the
// user rating as a decimal ("7.9") and, when critics reviewed the title,
// an integer metascore followed by the literal word "Metascore"
// ("81        Metascore"). Either part can be absent.

var metascoreRe = regexp.MustCompile(`(\d{1,3})\s+Metascore`)

// SplitRatingsBar decomposes a ratings-bar blob into the user rating and
// the metascore. A nil result marks a missing value; the caller keeps one
// result per row so column alignment is never disturbed.
func SplitRatingsBar(blob string) (rating *float64, metascore *int) {
	metascore = findMetascore(blob)

	for _, token := range strings.Fields(blob) {
		if token == "Metascore" {
			continue
		}
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		// The metascore integer is part of the "NN Metascore" pattern,
		// not the user rating.
		if metascore != nil && !strings.Contains(token, ".") && int(f) == *metascore {
			continue
		}
		rating = &f
		break
	}

	return rating, metascore
}

func findMetascore(blob string) *int {
	m := metascoreRe.FindStringSubmatch(blob)
	if m == nil {
		return nil
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &v
}
