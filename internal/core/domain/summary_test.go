package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

func TestSummarize_ProcessedPlusFailedEqualsTotal(t *testing.T) {
	files := []domain.FileRecord{
		record(1, 720, "a.mkv"),
		record(2, 720, "b.mkv"),
		invalidRecord("broken.mkv"),
	}
	classified, err := domain.Classify(files)
	require.NoError(t, err)

	summary := domain.Summarize(classified, len(files))

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, summary.Total, summary.Processed+summary.Failed)
}

func TestSummarize_BucketRanges(t *testing.T) {
	files := []domain.FileRecord{
		record(2, 720, "a.mkv"),
		record(1, 720, "b.mkv"),
		record(1, 1080, "c.mkv"),
	}
	classified, err := domain.Classify(files)
	require.NoError(t, err)

	summary := domain.Summarize(classified, len(files))

	require.Len(t, summary.Buckets, 3)

	b480 := summary.Buckets[0]
	assert.Equal(t, 480, b480.Quality)
	assert.Equal(t, 0, b480.Count)
	assert.Nil(t, b480.Range)

	b720 := summary.Buckets[1]
	assert.Equal(t, 720, b720.Quality)
	assert.Equal(t, 2, b720.Count)
	require.NotNil(t, b720.Range)
	assert.Equal(t, 1, b720.Range.Min)
	assert.Equal(t, 2, b720.Range.Max)

	b1080 := summary.Buckets[2]
	assert.Equal(t, 1, b1080.Count)
	require.NotNil(t, b1080.Range)
	assert.Equal(t, 1, b1080.Range.Min)
	assert.Equal(t, 1, b1080.Range.Max)
}

func TestSummarize_OtherBucketRange(t *testing.T) {
	files := []domain.FileRecord{
		record(3, 1440, "a.mkv"),
		record(9, 144, "b.mkv"),
	}
	classified, err := domain.Classify(files)
	require.NoError(t, err)

	summary := domain.Summarize(classified, len(files))

	assert.Equal(t, 2, summary.OtherCount)
	require.NotNil(t, summary.OtherRange)
	assert.Equal(t, 3, summary.OtherRange.Min)
	assert.Equal(t, 9, summary.OtherRange.Max)
}

func TestSummarize_NoFailures(t *testing.T) {
	files := []domain.FileRecord{record(1, 480, "a.mkv")}
	classified, err := domain.Classify(files)
	require.NoError(t, err)

	summary := domain.Summarize(classified, len(files))

	assert.Equal(t, 0, summary.Failed)
	assert.Nil(t, summary.OtherRange)
	assert.Equal(t, 0, summary.OtherCount)
}
