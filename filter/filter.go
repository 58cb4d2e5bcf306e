package filter

import (
	"strconv"
	"time"

	"github.com/securehome-za/securehome/adtsecurehome"
)

// Notification is one entry of the site notification feed. The vendor
// guarantees no schema, so well-known fields are extracted defensively and
// the raw entry stays reachable for expressions through Raw.
type Notification struct {
	SiteID   string
	Site     string
	Type     string
	Message  string
	Received time.Time
	Raw      map[string]any
}

// FromPayload extracts notifications from a site-notifications payload.
// Entries that are not objects are skipped; missing fields stay zero.
func FromPayload(payload adtsecurehome.APIResponse) []Notification {
	entries := entryList(payload)

	notifications := make([]Notification, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		notifications = append(notifications, Notification{
			SiteID:   stringField(m, "siteId", "siteID"),
			Site:     stringField(m, "siteName", "site"),
			Type:     stringField(m, "eventType", "type", "notificationType"),
			Message:  stringField(m, "message", "text", "description"),
			Received: timeField(m, "timestamp", "receivedAt", "date"),
			Raw:      m,
		})
	}

	return notifications
}

// entryList locates the notification array in the payload.
func entryList(payload adtsecurehome.APIResponse) []any {
	for _, key := range []string{"siteNotifications", "notifications", "data"} {
		if list, ok := payload[key].([]any); ok {
			return list
		}
	}
	return nil
}

// stringField returns the first present key as a string, coercing JSON
// numbers (the vendor mixes numeric and string IDs).
func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// timeField reads a timestamp as epoch milliseconds, epoch seconds or
// RFC 3339 text, whichever the entry carries.
func timeField(m map[string]any, keys ...string) time.Time {
	for _, key := range keys {
		switch v := m[key].(type) {
		case float64:
			if v > 1e12 {
				return time.UnixMilli(int64(v))
			}
			if v > 0 {
				return time.Unix(int64(v), 0)
			}
		case string:
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
