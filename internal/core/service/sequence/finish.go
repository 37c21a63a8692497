package sequence

import (
	"context"
	"fmt"

	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

// Finish closes the user's session and runs the delivery pipeline: classify
// the collected records, replay each quality bucket in order, then report.
//
// The session is gone once the store Close succeeds, whatever happens after;
// a failed send never aborts the rest of the run. Lifecycle errors
// (domain.ErrNotInSession, domain.ErrEmptySession, domain.ErrNoValidFiles)
// are returned for the handler to phrase to the user.
func (s *sequenceService) Finish(ctx context.Context, userID int64, username string) error {
	files, err := s.store.Close(ctx, userID)
	if err != nil {
		return err
	}
	total := len(files)

	s.notify(ctx, userID, fmt.Sprintf("📊 Sequence added to queue. Received %d files.", total), false)
	s.audit.Record(ctx, domain.NewAuditEvent(userID, username, "Ended sequence", fmt.Sprintf("Files received: %d", total)))

	classified, err := domain.Classify(files)
	if err != nil {
		return err
	}

	s.notify(ctx, userID, "🔄 Sending sorted files by quality...", false)

	dump, hasDump := s.store.DumpChannel(ctx, userID)

	for _, quality := range domain.FixedQualities {
		bucket := classified.Buckets[quality]
		if len(bucket) == 0 {
			continue
		}
		s.notify(ctx, userID, fmt.Sprintf(
			"📺 **%dP QUALITY EPISODES** 📺\nSending %d episodes in %dp quality...",
			quality, len(bucket), quality,
		), true)
		s.dispatchBucket(ctx, userID, bucket, dump, hasDump)
	}

	if len(classified.Other) > 0 {
		s.notify(ctx, userID, fmt.Sprintf(
			"📺 **OTHER QUALITY EPISODES** 📺\nSending %d episodes with unknown quality...",
			len(classified.Other),
		), true)
		s.dispatchBucket(ctx, userID, classified.Other, dump, hasDump)
	}

	summary := domain.Summarize(classified, total)
	s.notify(ctx, userID, renderSummary(summary), true)

	s.logger.Info("sequence finished",
		"user_id", userID,
		"total", summary.Total,
		"processed", summary.Processed,
		"failed", summary.Failed,
	)
	return nil
}
