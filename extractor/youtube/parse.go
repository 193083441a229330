package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/KRTirtho/NewPipeCLI/extractor"
	"github.com/samber/lo"
)

// dig walks nested innertube JSON by object keys (string) and array indexes (int).
func dig(v any, keys ...any) any {
	cur := v
	for _, k := range keys {
		switch key := k.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil
			}
			cur = m[key]
		case int:
			a, ok := cur.([]any)
			if !ok || key < 0 || key >= len(a) {
				return nil
			}
			cur = a[key]
		}
	}
	return cur
}

func digString(v any, keys ...any) string {
	s, _ := dig(v, keys...).(string)
	return s
}

func digList(v any, keys ...any) []any {
	a, _ := dig(v, keys...).([]any)
	return a
}

// text flattens an innertube text object, either {simpleText} or {runs: [{text}]}.
func text(v any) string {
	if s, ok := dig(v, "simpleText").(string); ok {
		return s
	}
	if s, ok := dig(v, "content").(string); ok {
		return s
	}

	var b strings.Builder
	for _, run := range digList(v, "runs") {
		b.WriteString(digString(run, "text"))
	}
	return b.String()
}

// images maps a thumbnails array. Protocol-relative URLs get https.
func images(v any) []extractor.Image {
	list, _ := v.([]any)
	out := make([]extractor.Image, 0, len(list))
	for _, raw := range list {
		url := digString(raw, "url")
		if url == "" {
			continue
		}
		if strings.HasPrefix(url, "//") {
			url = "https:" + url
		}
		out = append(out, extractor.Image{
			URL:    url,
			Width:  dimension(dig(raw, "width")),
			Height: dimension(dig(raw, "height")),
		})
	}
	return out
}

func dimension(v any) int {
	if n, ok := v.(float64); ok && n > 0 {
		return int(n)
	}
	return extractor.ImageSizeUnknown
}

var countPattern = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*([KMB])?`)

// parseCount reads "1,234 views" or "1.2M subscribers". Text without a number,
// such as "No views", is zero when it says so and unknown otherwise.
func parseCount(s string) int64 {
	s = strings.TrimSpace(s)
	match := countPattern.FindStringSubmatch(s)
	if match == nil {
		if strings.HasPrefix(strings.ToLower(s), "no ") {
			return 0
		}
		return extractor.Unknown
	}

	n, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
	if err != nil {
		return extractor.Unknown
	}

	switch match[2] {
	case "K":
		n *= 1e3
	case "M":
		n *= 1e6
	case "B":
		n *= 1e9
	}
	return int64(n + 0.5)
}

// parseDuration reads a clock string such as "1:02:03" into seconds.
func parseDuration(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return extractor.Unknown
	}

	var seconds int64
	for _, part := range strings.Split(s, ":") {
		n, err := strconv.ParseInt(strings.ReplaceAll(part, ",", ""), 10, 64)
		if err != nil {
			return extractor.Unknown
		}
		seconds = seconds*60 + n
	}
	return seconds
}

var relativeDatePattern = regexp.MustCompile(`(\d+)\s+(second|minute|hour|day|week|month|year)s?\s+ago`)

// parseRelativeDate turns "3 years ago" into an approximate date. Nil when s is not relative.
func parseRelativeDate(s string, now time.Time) *extractor.DateWrapper {
	match := relativeDatePattern.FindStringSubmatch(strings.ToLower(s))
	if match == nil {
		return nil
	}

	n, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	var t time.Time
	switch match[2] {
	case "second":
		t = now.Add(-time.Duration(n) * time.Second)
	case "minute":
		t = now.Add(-time.Duration(n) * time.Minute)
	case "hour":
		t = now.Add(-time.Duration(n) * time.Hour)
	case "day":
		t = now.AddDate(0, 0, -n)
	case "week":
		t = now.AddDate(0, 0, -7*n)
	case "month":
		t = now.AddDate(0, -n, 0)
	case "year":
		t = now.AddDate(-n, 0, 0)
	}

	return &extractor.DateWrapper{Time: t, Approximation: true}
}

var clockPattern = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s?)?$`)

// parseStartPosition reads the t= parameter of a watch URL: "90", "90s" or "1m30s".
func parseStartPosition(s string) int64 {
	match := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil || s == "" {
		return 0
	}

	var seconds int64
	for i, unit := range []int64{3600, 60, 1} {
		if match[i+1] == "" {
			continue
		}
		n, _ := strconv.ParseInt(match[i+1], 10, 64)
		seconds += n * unit
	}
	return seconds
}

func channelURL(id string) string {
	if id == "" {
		return ""
	}
	return fmt.Sprintf("%s/channel/%s", BaseURL, id)
}

func watchURL(id string) string {
	return fmt.Sprintf("%s/watch?v=%s", BaseURL, id)
}

func playlistURL(id string) string {
	return fmt.Sprintf("%s/playlist?list=%s", BaseURL, id)
}

var verifiedBadges = []string{"BADGE_STYLE_TYPE_VERIFIED", "BADGE_STYLE_TYPE_VERIFIED_ARTIST"}

// verified reports whether an ownerBadges array holds a verification badge.
func verified(badges any) bool {
	list, _ := badges.([]any)
	return lo.SomeBy(list, func(badge any) bool {
		return lo.Contains(verifiedBadges, digString(badge, "metadataBadgeRenderer", "style"))
	})
}
