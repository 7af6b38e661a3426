package query

import (
	"sort"
	"strings"
)

// maxBalancedResults bounds the final candidate set handed to answer generation.
const maxBalancedResults = 6

// sourceBucket is the provenance classification used for diversity balancing.
type sourceBucket string

const (
	bucketSEC      sourceBucket = "sec"
	bucketInternal sourceBucket = "internal"
	bucketWeb      sourceBucket = "web"
	bucketOther    sourceBucket = "other"
)

// backfillOrder is the bucket order used when quota picks leave free slots.
var backfillOrder = []sourceBucket{bucketSEC, bucketInternal, bucketWeb, bucketOther}

// classify assigns a match to exactly one provenance bucket. Precedence
// matters: a filing label wins over an internal sourceType, which wins over
// any web sourceType.
func classify(m Match) sourceBucket {
	source := m.metaString("source")
	sourceType := m.metaString("sourceType")

	switch {
	case strings.Contains(source, "Filing"):
		return bucketSEC
	case sourceType == "internal-document" || strings.Contains(source, "Internal"):
		return bucketInternal
	case strings.Contains(sourceType, "web"):
		return bucketWeb
	default:
		return bucketOther
	}
}

// bucketQuota is one per-bucket take count for the quota step.
type bucketQuota struct {
	bucket sourceBucket
	n      int
}

// quotaFor picks the take quotas from the analysis, in the order they are
// applied. needsInternal outranks isFinancial; "other" is never
// quota-selected.
func quotaFor(analysis Analysis) []bucketQuota {
	switch {
	case analysis.NeedsInternal:
		return []bucketQuota{{bucketInternal, 3}, {bucketSEC, 2}, {bucketWeb, 1}}
	case analysis.IsFinancial:
		return []bucketQuota{{bucketSEC, 3}, {bucketInternal, 2}, {bucketWeb, 1}}
	default:
		return []bucketQuota{{bucketInternal, 2}, {bucketSEC, 2}, {bucketWeb, 2}}
	}
}

// Balance merges executor matches into a source-balanced result set of at
// most maxBalancedResults unique matches, sorted by score descending.
// Bucket quotas determine membership only; the final sort can reorder across
// buckets. The sort is stable so equal scores keep their prior order.
func Balance(matches []Match, analysis Analysis) []Match {
	if len(matches) == 0 {
		return []Match{}
	}

	buckets := make(map[sourceBucket][]Match, 4)
	for _, m := range matches {
		b := classify(m)
		buckets[b] = append(buckets[b], m)
	}

	selected := make([]Match, 0, maxBalancedResults)
	picked := make(map[string]bool, maxBalancedResults)

	take := func(b sourceBucket, n int) {
		for _, m := range buckets[b] {
			if n == 0 {
				return
			}
			if picked[m.ID] {
				continue
			}
			selected = append(selected, m)
			picked[m.ID] = true
			n--
		}
	}

	// Quota picks in the branch's declared order.
	for _, bq := range quotaFor(analysis) {
		take(bq.bucket, bq.n)
	}

	// Backfill remaining slots from whatever was not selected, preserving
	// each bucket's executor-ranked order.
	for _, b := range backfillOrder {
		remaining := maxBalancedResults - len(selected)
		if remaining <= 0 {
			break
		}
		take(b, remaining)
	}

	if len(selected) > maxBalancedResults {
		selected = selected[:maxBalancedResults]
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Score > selected[j].Score
	})

	return selected
}
