package assistant

import (
	"fmt"
	"strings"

	"github.com/username/address-book/internal/contacts"
)

const (
	tableRow   = "%-21s  %-11s %-10s"
	tableWidth = 42
)

// FormatTable renders directory entries as a fixed-width table framed by
// '=' rules
func FormatTable(entries []contacts.Entry) string {
	rule := strings.Repeat("=", tableWidth)

	lines := make([]string, 0, len(entries)+3)
	lines = append(lines, rule, fmt.Sprintf(tableRow, "Name:", "Phone: ", "Birthday: "))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf(tableRow, e.Name, e.Phone, e.Birthday))
	}
	lines = append(lines, rule)

	return strings.Join(lines, "\n")
}
