package sequence

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/port"
)

// dispatchBucket replays one sorted bucket sequentially. Per record: primary
// send to the user, then, if bound, a dump-channel send followed by the
// pacing delay. A failed primary send skips that record's dump send; either
// failure is reported to the user and the loop moves on.
func (s *sequenceService) dispatchBucket(ctx context.Context, userID int64, bucket []domain.FileRecord, dump port.Destination, hasDump bool) {
	primary := port.Destination(strconv.FormatInt(userID, 10))

	for _, record := range bucket {
		if err := s.send(ctx, primary, record); err != nil {
			s.logger.Error("failed to send file", "user_id", userID, "file", record.Filename, "error", err)
			s.notify(ctx, userID, fmt.Sprintf("❌ Error sending file: %s", record.DisplayName()), false)
			continue
		}

		if !hasDump {
			continue
		}
		if err := s.send(ctx, dump, record); err != nil {
			s.logger.Error("failed to send file to dump channel",
				"user_id", userID,
				"channel", string(dump),
				"file", record.Filename,
				"error", err,
			)
			s.notify(ctx, userID, fmt.Sprintf("❌ Error sending file: %s", record.DisplayName()), false)
			continue
		}
		time.Sleep(s.pacing)
	}
}

func (s *sequenceService) send(ctx context.Context, dest port.Destination, record domain.FileRecord) error {
	if record.Kind == domain.MediaKindVideo {
		return s.transport.SendVideo(ctx, dest, record.FileID, record.Caption)
	}
	return s.transport.SendDocument(ctx, dest, record.FileID, record.Caption)
}
