package classify

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// "제3권", "Vol. 2", "No.5호" style markers.
	volumeMarkerPattern = regexp.MustCompile(`(?:제\s*|[Vv]ol\.\s*|[Nn]o\.\s*)?(\d{1,3})\s*[권호]`)
	// Zero-padded series tokens like "01" standing alone mid-title.
	volumePaddedPattern = regexp.MustCompile(`(?:^|\s)(0\d)(?:\s|$)`)
	// A bare trailing number at the end of the title.
	volumeTrailingPattern = regexp.MustCompile(`(?:^|\s)(\d{1,3})\s*$`)
)

// ExtractVolume pulls a series volume number out of a title, or nil when the
// title carries none. Marker forms ("3권", "제2호") win over a zero-padded
// standalone token ("01"), which wins over a bare trailing number.
func ExtractVolume(text string) *int {
	trimmed := strings.TrimSpace(text)
	for _, pattern := range []*regexp.Regexp{volumeMarkerPattern, volumePaddedPattern, volumeTrailingPattern} {
		match := pattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}
		volume, err := strconv.Atoi(match[1])
		if err != nil || volume == 0 {
			continue
		}
		return &volume
	}
	return nil
}
