package crawl

import (
	"fmt"
	"net/url"
)

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// ListingLabel names a listing by its program code (g_ta_cod) when the URL
// has one, and by its truncated URL otherwise.
func ListingLabel(rawURL string, maxLen int) string {
	u, err := url.Parse(rawURL)
	if err == nil {
		if code := u.Query().Get("g_ta_cod"); code != "" {
			return "g_ta_cod=" + code
		}
	}
	return TruncateURL(rawURL, maxLen)
}

// FormatPercent formats n as a percentage of total with one decimal, or
// "N/A" when total is zero.
func FormatPercent(n, total int) string {
	if total <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
}
