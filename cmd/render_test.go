package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/securehome-za/securehome/adtsecurehome"
	"github.com/securehome-za/securehome/filter"
)

func TestFormatNotifications(t *testing.T) {
	t.Run("empty feed", func(t *testing.T) {
		out := formatNotifications(nil)
		if out != "No notifications found\n" {
			t.Errorf("unexpected output: %q", out)
		}
	})

	t.Run("lists entries with ages", func(t *testing.T) {
		notifications := []filter.Notification{
			{Site: "Home", Type: "ARM", Message: "Partition 1 armed", Received: time.Now().Add(-2 * time.Hour)},
			{SiteID: "18", Message: "Mains restored"},
		}

		out := formatNotifications(notifications)

		if !strings.Contains(out, "Notifications (2):") {
			t.Errorf("missing header in %q", out)
		}
		if !strings.Contains(out, "Partition 1 armed") || !strings.Contains(out, "Mains restored") {
			t.Errorf("missing entries in %q", out)
		}
		if !strings.Contains(out, "Site: Home") {
			t.Errorf("missing site name in %q", out)
		}
		if !strings.Contains(out, "Site: 18") {
			t.Errorf("missing site ID fallback in %q", out)
		}
		if !strings.Contains(out, "ago") {
			t.Errorf("missing relative age in %q", out)
		}
	})
}

func TestFormatSites(t *testing.T) {
	payload := adtsecurehome.APIResponse{
		"sites": []any{
			map[string]any{
				"id":   float64(18),
				"name": "Home",
				"partitions": []any{
					map[string]any{"id": float64(1), "name": "House"},
					map[string]any{"id": float64(2)},
				},
			},
		},
	}

	out := formatSites(payload)

	for _, want := range []string{"Site (1):", "Home", "ID: 18", "House (ID: 1)", "ID: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("formatSites() missing %q in %q", want, out)
		}
	}

	if formatSites(adtsecurehome.APIResponse{"status": "SUCCESS"}) != "" {
		t.Error("expected empty string for unrecognized payload")
	}
}

func TestFormatStateInfo(t *testing.T) {
	payload := adtsecurehome.APIResponse{
		"stateInfo": []any{
			map[string]any{"siteName": "Home", "siteId": "18", "partitionId": float64(1), "armed": true},
			map[string]any{"siteId": "19", "state": "DISARMED"},
		},
	}

	out := formatStateInfo(payload)

	for _, want := range []string{"Site states (2):", "Home", "ID: 18", "Partition: 1", "State: Armed", "State: DISARMED"} {
		if !strings.Contains(out, want) {
			t.Errorf("formatStateInfo() missing %q in %q", want, out)
		}
	}

	if formatStateInfo(adtsecurehome.APIResponse{}) != "" {
		t.Error("expected empty string for unrecognized payload")
	}
}

func TestTextField(t *testing.T) {
	m := map[string]any{
		"name":  "Home",
		"id":    float64(18),
		"empty": "",
		"armed": true,
	}

	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"string value", []string{"name"}, "Home"},
		{"numeric value", []string{"id"}, "18"},
		{"first match wins", []string{"name", "id"}, "Home"},
		{"empty string skipped", []string{"empty", "name"}, "Home"},
		{"non-text value skipped", []string{"armed"}, ""},
		{"missing key", []string{"nope"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textField(m, tt.keys...); got != tt.want {
				t.Errorf("textField(%v) = %q, want %q", tt.keys, got, tt.want)
			}
		})
	}
}
