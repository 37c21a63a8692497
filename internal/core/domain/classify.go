package domain

import "sort"

// FixedQualities is the ordered list of named quality buckets;
// dispatch replays buckets in this order, then the catch-all bucket.
var FixedQualities = []int{480, 720, 1080}

// Classified is the result of partitioning a closed session's records
type Classified struct {
	// Buckets holds the named quality groups, keyed by FixedQualities entries
	Buckets map[int][]FileRecord
	// Other holds valid records whose quality is outside the named set
	Other []FileRecord
	// Valid / Invalid is the original partition, kept for reporting
	Valid   []FileRecord
	Invalid []FileRecord
}

// Classify partitions records into valid/invalid, groups the valid ones by
// quality tier, and sorts each group for delivery.
//
// The three named buckets sort by episode number only; insertion order breaks
// ties (stable). The catch-all bucket sorts by (episode, quality).
// Returns ErrNoValidFiles when no record parsed both fields.
func Classify(files []FileRecord) (*Classified, error) {
	c := &Classified{
		Buckets: make(map[int][]FileRecord, len(FixedQualities)),
	}
	for _, q := range FixedQualities {
		c.Buckets[q] = nil
	}

	for _, f := range files {
		if !f.Parsed() {
			c.Invalid = append(c.Invalid, f)
			continue
		}
		c.Valid = append(c.Valid, f)
		if _, named := c.Buckets[*f.Quality]; named {
			c.Buckets[*f.Quality] = append(c.Buckets[*f.Quality], f)
		} else {
			c.Other = append(c.Other, f)
		}
	}

	if len(c.Valid) == 0 {
		return nil, ErrNoValidFiles
	}

	for _, q := range FixedQualities {
		bucket := c.Buckets[q]
		sort.SliceStable(bucket, func(i, j int) bool {
			return *bucket[i].Episode < *bucket[j].Episode
		})
	}
	sort.SliceStable(c.Other, func(i, j int) bool {
		if *c.Other[i].Episode != *c.Other[j].Episode {
			return *c.Other[i].Episode < *c.Other[j].Episode
		}
		return *c.Other[i].Quality < *c.Other[j].Quality
	})

	return c, nil
}
