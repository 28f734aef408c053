package views

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"chainfeed/internal/domain"
)

// ActivityRenderer renders a single activity record
type ActivityRenderer struct {
	styles *Styles
}

// NewActivityRenderer creates a new activity renderer
func NewActivityRenderer(styles *Styles) *ActivityRenderer {
	return &ActivityRenderer{styles: styles}
}

// Render produces the multi-line representation of one activity.
// Lines beyond the first are indented to read as one block.
func (r *ActivityRenderer) Render(a domain.Activity, showFullAddresses bool) string {
	var b strings.Builder

	// Headline: type, optional platform, network, timestamp, optional tag
	headline := a.Type
	if a.Platform != "" {
		headline += " on " + r.styles.Platform.Render(a.Platform)
	}
	b.WriteString(headline)
	b.WriteString("  ")
	b.WriteString(r.styles.Network.Render(a.Network))
	b.WriteString("  ")
	b.WriteString(r.styles.Timestamp.Render(FormatTimestamp(a.Timestamp)))
	if a.Tag != "" {
		b.WriteString("  ")
		b.WriteString(r.styles.TagBadge.Render("#" + a.Tag))
	}

	action, ok := a.FirstAction()
	if !ok {
		return b.String()
	}

	if action.Type != "" {
		b.WriteString("\n  ")
		b.WriteString(r.styles.Dim.Render(action.Type))
		if value, ok := action.MetadataValue(); ok {
			b.WriteString(" ")
			b.WriteString(r.styles.Value.Render(value))
		}
	} else if value, ok := action.MetadataValue(); ok {
		b.WriteString("\n  ")
		b.WriteString(r.styles.Value.Render(value))
	}

	if action.From != "" || action.To != "" {
		b.WriteString("\n  ")
		parts := []string{}
		if action.From != "" {
			parts = append(parts, "From: "+r.styles.Address.Render(displayAddress(action.From, showFullAddresses)))
		}
		if action.To != "" {
			parts = append(parts, "To: "+r.styles.Address.Render(displayAddress(action.To, showFullAddresses)))
		}
		b.WriteString(strings.Join(parts, "  "))
	}

	if link, ok := action.FirstRelatedURL(); ok {
		b.WriteString("\n  ")
		b.WriteString(r.styles.Link.Render("View on " + Hostname(link)))
		b.WriteString(" ")
		b.WriteString(r.styles.Dim.Render(link))
	}

	return b.String()
}

func displayAddress(addr string, full bool) string {
	if full {
		return addr
	}
	return AbbreviateAddress(addr)
}

// AbbreviateAddress shortens an address to its first six and last four
// characters. Addresses too short to abbreviate are returned unchanged.
func AbbreviateAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// Hostname extracts the host of a URL for link labels. Unparseable URLs
// fall back to the raw string so the link is still identifiable.
func Hostname(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return u.Hostname()
}

// FormatTimestamp renders a unix-seconds timestamp in local time.
func FormatTimestamp(ts int64) string {
	return time.Unix(ts, 0).Local().Format("Jan 2, 2006 15:04:05")
}

// Pluralize returns the singular for a count of one, otherwise the plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// CountHeader builds the results header line for an account.
func CountHeader(account string, count int) string {
	return fmt.Sprintf("%s has %d %s", account, count, Pluralize(count, "activity", "activities"))
}
