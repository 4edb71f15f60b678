package gdrive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSearchQuery(t *testing.T) {
	since := time.Date(2026, time.March, 2, 15, 30, 0, 0, time.UTC)
	got := searchQuery("folder-1", ".json", since)
	want := "('folder-1' in parents) and (name contains '.json') and (createdTime >= '2026-03-02')"
	assert.Equal(t, want, got)
}
