package domain

// EpisodeRange is a closed [Min, Max] interval of episode numbers
type EpisodeRange struct {
	Min int
	Max int
}

// BucketSummary aggregates one named quality bucket
type BucketSummary struct {
	Quality int
	Count   int
	Range   *EpisodeRange
}

// Summary holds the aggregate statistics of one closed session
type Summary struct {
	Total      int
	Processed  int
	Failed     int
	Buckets    []BucketSummary
	OtherCount int
	OtherRange *EpisodeRange
}

// Summarize computes the final report over already-sorted classifier output.
// total is the session's full record count, including invalid ones.
func Summarize(c *Classified, total int) Summary {
	s := Summary{
		Total:      total,
		Processed:  len(c.Valid),
		Failed:     total - len(c.Valid),
		OtherCount: len(c.Other),
	}

	for _, q := range FixedQualities {
		bucket := c.Buckets[q]
		s.Buckets = append(s.Buckets, BucketSummary{
			Quality: q,
			Count:   len(bucket),
			Range:   episodeRange(bucket),
		})
	}
	s.OtherRange = episodeRange(c.Other)

	return s
}

func episodeRange(files []FileRecord) *EpisodeRange {
	var r *EpisodeRange
	for _, f := range files {
		if f.Episode == nil {
			continue
		}
		if r == nil {
			r = &EpisodeRange{Min: *f.Episode, Max: *f.Episode}
			continue
		}
		if *f.Episode < r.Min {
			r.Min = *f.Episode
		}
		if *f.Episode > r.Max {
			r.Max = *f.Episode
		}
	}
	return r
}
