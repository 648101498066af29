package img2ascii

import (
	"fmt"
	"math"
)

// FindBestMatch returns the character whose brightness is closest to
// target. chars and brightness must be aligned. The scan is linear and
// ties keep the earliest character, so with chars in canonical order the
// lowest code point wins.
func FindBestMatch(target float64, brightness []float64, chars []rune) (rune, error) {
	if len(chars) == 0 {
		return 0, ErrEmptyCharset
	}
	if len(brightness) != len(chars) {
		return 0, fmt.Errorf("brightness table has %d entries for %d characters",
			len(brightness), len(chars))
	}

	best := chars[0]
	bestDist := math.Abs(target - brightness[0])
	for i := 1; i < len(chars); i++ {
		if d := math.Abs(target - brightness[i]); d < bestDist {
			best, bestDist = chars[i], d
		}
	}
	return best, nil
}
