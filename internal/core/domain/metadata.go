package domain

import (
	"regexp"
	"strconv"
)

// Extraction is pure string matching over the filename and caption.
// Patterns follow the release naming convention [S01-E07] Title [1080P].mkv.
var (
	episodePattern = regexp.MustCompile(`\[S\d+-E(\d+)\]`)
	qualityPattern = regexp.MustCompile(`\[S\d+-E\d+\].*\[(\d+)P?\]`)
)

// allowedQualities is the closed set of resolutions accepted as a quality tier
var allowedQualities = map[int]struct{}{
	144:  {},
	240:  {},
	360:  {},
	480:  {},
	720:  {},
	1080: {},
	1440: {},
	2160: {},
}

// ExtractEpisode returns the episode number from the first field
// (filename, then caption) matching the [S##-E##] tag, or nil
func ExtractEpisode(filename, caption string) *int {
	for _, text := range []string{filename, caption} {
		match := episodePattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		episode, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		return &episode
	}
	return nil
}

// ExtractQuality returns the quality tier from the first field
// (filename, then caption) matching the bracketed-number pattern.
//
// The first field with a pattern match decides the outcome: when its
// captured number is outside the allowed resolution set the result is
// nil and the remaining field is NOT consulted as a fallback.
func ExtractQuality(filename, caption string) *int {
	for _, text := range []string{filename, caption} {
		match := qualityPattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		quality, err := strconv.Atoi(match[1])
		if err != nil {
			return nil
		}
		if _, ok := allowedQualities[quality]; !ok {
			return nil
		}
		return &quality
	}
	return nil
}
