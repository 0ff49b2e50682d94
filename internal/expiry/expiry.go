// Package expiry classifies pantry item urgency relative to the current
// moment. Two policies live here: the two-state pantry-screen status and the
// banded home-feed listing. Their thresholds differ at the call sites, so
// they stay separate functions rather than one unified table.
package expiry

import (
	"math"
	"sort"
	"time"

	"github.com/calebmartin/larder/internal/model"
)

// DefaultThreshold is the pantry-screen expiring window in days.
const DefaultThreshold = 2

type StatusType string

const (
	StatusExpired  StatusType = "expired"
	StatusExpiring StatusType = "expiring"
)

// Status is a pantry item's urgency. Days is an absolute count: days overdue
// for expired, days remaining for expiring.
type Status struct {
	Type StatusType `json:"type"`
	Days int        `json:"days"`
}

// DaysUntil is the calendar-day distance from now to the expiration date.
// Fractional days round up, so "3.1 days left" reports as 4 until the next
// day boundary is crossed.
func DaysUntil(expiration, now time.Time) int {
	return int(math.Ceil(expiration.Sub(now).Hours() / 24))
}

// StatusOf classifies one item against the caller's threshold. The second
// result is false when the item has no usable expiration date or is further
// out than the threshold. Pure function of (expiration, now, threshold).
func StatusOf(item model.PantryItem, now time.Time, threshold int) (Status, bool) {
	if !item.HasExpiration() {
		return Status{}, false
	}

	days := DaysUntil(item.ExpirationDate.Time, now)
	if days < 0 {
		return Status{Type: StatusExpired, Days: -days}, true
	}
	if days <= threshold {
		return Status{Type: StatusExpiring, Days: days}, true
	}
	return Status{}, false
}

// Band is the home-feed urgency color band.
type Band string

const (
	BandDanger  Band = "danger"
	BandWarning Band = "warning"
	BandSuccess Band = "success"
)

// ExpiringItem is one home-feed entry.
type ExpiringItem struct {
	Name     string `json:"name"`
	DaysLeft int    `json:"daysLeft"`
	Status   Band   `json:"status"`
}

// ExpiringSoon builds the home-screen feed: items within [-1, 4] days of
// expiry, banded danger when 1 day or less remains, warning at 2 days,
// success at 3-4 days, sorted ascending by days left.
func ExpiringSoon(items []model.PantryItem, now time.Time) []ExpiringItem {
	feed := make([]ExpiringItem, 0, len(items))
	for _, item := range items {
		if !item.HasExpiration() {
			continue
		}

		days := DaysUntil(item.ExpirationDate.Time, now)
		if days < -1 || days > 4 {
			continue
		}

		band := BandSuccess
		switch {
		case days <= 1:
			band = BandDanger
		case days <= 2:
			band = BandWarning
		}

		feed = append(feed, ExpiringItem{Name: item.Name, DaysLeft: days, Status: band})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].DaysLeft < feed[j].DaysLeft
	})
	return feed
}
