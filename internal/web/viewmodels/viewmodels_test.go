package viewmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hubwiki/internal/models"
)

func TestNewRevision(t *testing.T) {
	now := time.Now()
	author, reason := "ann", "fix typo"
	ts := now.Add(-2 * time.Hour).Unix()

	v := NewRevision(models.Revision{ID: "r1", Author: &author, Reason: &reason, Timestamp: &ts}, now)

	assert.Equal(t, "r1", v.ID)
	assert.Equal(t, "ann", v.Author)
	assert.Equal(t, "fix typo", v.Reason)
	assert.Equal(t, ts, v.Timestamp)
	assert.Equal(t, "2 hours ago", v.When)
}

func TestNewRevisionBareMetadata(t *testing.T) {
	v := NewRevision(models.Revision{ID: "r2"}, time.Now())

	assert.Equal(t, "r2", v.ID)
	assert.Empty(t, v.Author)
	assert.Empty(t, v.Reason)
	assert.Zero(t, v.Timestamp)
	assert.Empty(t, v.When)
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{time.Hour, "1 hour ago"},
		{26 * time.Hour, "1 day ago"},
		{14 * 24 * time.Hour, "14 days ago"},
		{45 * 24 * time.Hour, "1 month ago"},
		{400 * 24 * time.Hour, "1 year ago"},
		{3 * 365 * 24 * time.Hour, "3 years ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RelativeTime(now.Add(-tt.ago), now), "ago=%s", tt.ago)
	}
}

func TestRelativeTimeFutureTimestamp(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "just now", RelativeTime(now.Add(time.Hour), now))
}
