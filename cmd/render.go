package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/securehome-za/securehome/adtsecurehome"
	"github.com/securehome-za/securehome/filter"
)

// printJSON pretty-prints a payload to stdout
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render payload: %w", err)
	}

	fmt.Println(string(data))
	return nil
}

// formatNotifications renders the notification feed for console display
func formatNotifications(notifications []filter.Notification) string {
	if len(notifications) == 0 {
		return "No notifications found\n"
	}

	var sb strings.Builder

	// Header
	sb.WriteString("\nNotification")
	if len(notifications) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(notifications))

	for i, n := range notifications {
		isLast := i == len(notifications)-1
		prefix := "├"
		if isLast {
			prefix = "╰"
		}

		title := n.Message
		if title == "" {
			title = n.Type
		}
		if title == "" {
			title = "(no message)"
		}
		fmt.Fprintf(&sb, "%s── %s\n", prefix, title)

		indent := "│   "
		if isLast {
			indent = "    "
		}

		var parts []string
		if n.Site != "" {
			parts = append(parts, fmt.Sprintf("Site: %s", n.Site))
		} else if n.SiteID != "" {
			parts = append(parts, fmt.Sprintf("Site: %s", n.SiteID))
		}
		if n.Type != "" && n.Type != title {
			parts = append(parts, fmt.Sprintf("Type: %s", n.Type))
		}
		if len(parts) > 0 {
			fmt.Fprintf(&sb, "%s%s\n", indent, strings.Join(parts, " | "))
		}

		if !n.Received.IsZero() {
			fmt.Fprintf(&sb, "%sReceived: %s (%s)\n", indent,
				n.Received.Format("2006-01-02 15:04"), humanize.Time(n.Received))
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatStateInfo renders the armed state of each site from a state-info
// payload. Returns "" when the payload shape is not recognized.
func formatStateInfo(payload adtsecurehome.APIResponse) string {
	entries := objectList(payload, "stateInfo", "states", "sites")
	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("\nSite state")
	if len(entries) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(entries))

	for i, m := range entries {
		isLast := i == len(entries)-1
		prefix := "├"
		if isLast {
			prefix = "╰"
		}

		name := textField(m, "siteName", "name", "description")
		if name == "" {
			name = textField(m, "siteId", "id")
		}
		if name == "" {
			name = "(unknown site)"
		}
		fmt.Fprintf(&sb, "%s── %s\n", prefix, name)

		indent := "│   "
		if isLast {
			indent = "    "
		}

		var parts []string
		if id := textField(m, "siteId", "id"); id != "" && id != name {
			parts = append(parts, fmt.Sprintf("ID: %s", id))
		}
		if partition := textField(m, "partitionId", "partition"); partition != "" {
			parts = append(parts, fmt.Sprintf("Partition: %s", partition))
		}
		if state := stateField(m); state != "" {
			parts = append(parts, fmt.Sprintf("State: %s", state))
		}
		if len(parts) > 0 {
			fmt.Fprintf(&sb, "%s%s\n", indent, strings.Join(parts, " | "))
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatSites renders the site list from a sync-info payload. Returns ""
// when the payload shape is not recognized.
func formatSites(payload adtsecurehome.APIResponse) string {
	entries := objectList(payload, "sites", "siteList")
	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("\nSite")
	if len(entries) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(entries))

	for i, site := range entries {
		isLast := i == len(entries)-1
		prefix := "├"
		if isLast {
			prefix = "╰"
		}

		name := textField(site, "name", "siteName", "description")
		if name == "" {
			name = "(unnamed site)"
		}
		fmt.Fprintf(&sb, "%s── %s\n", prefix, name)

		indent := "│   "
		if isLast {
			indent = "    "
		}

		if id := textField(site, "id", "siteId"); id != "" {
			fmt.Fprintf(&sb, "%sID: %s\n", indent, id)
		}

		if partitions, ok := site["partitions"].([]any); ok && len(partitions) > 0 {
			var names []string
			for _, p := range partitions {
				pm, ok := p.(map[string]any)
				if !ok {
					continue
				}

				label := textField(pm, "name", "partitionName")
				pid := textField(pm, "id", "partitionId")
				switch {
				case label != "" && pid != "":
					names = append(names, fmt.Sprintf("%s (ID: %s)", label, pid))
				case label != "":
					names = append(names, label)
				case pid != "":
					names = append(names, fmt.Sprintf("ID: %s", pid))
				}
			}
			if len(names) > 0 {
				fmt.Fprintf(&sb, "%sPartitions: %s\n", indent, strings.Join(names, ", "))
			}
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// objectList returns the first key holding a list of objects.
func objectList(payload adtsecurehome.APIResponse, keys ...string) []map[string]any {
	for _, key := range keys {
		list, ok := payload[key].([]any)
		if !ok {
			continue
		}

		var entries []map[string]any
		for _, entry := range list {
			if m, ok := entry.(map[string]any); ok {
				entries = append(entries, m)
			}
		}
		if len(entries) > 0 {
			return entries
		}
	}
	return nil
}

// textField returns the first present key as text, converting numeric IDs.
func textField(m map[string]any, keys ...string) string {
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

// stateField extracts the armed state, accepting either a state label or an
// armed boolean.
func stateField(m map[string]any) string {
	if state := textField(m, "state", "armState", "status"); state != "" {
		return state
	}

	if armed, ok := m["armed"].(bool); ok {
		if armed {
			return "Armed"
		}
		return "Disarmed"
	}

	return ""
}
