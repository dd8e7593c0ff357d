package stats

import (
	"errors"
	"strings"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/pkg/apperror"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var errUnknownLayout = errors.New("unrecognized timestamp layout")

// ParseTimestamp accepts the layouts the vocabulary store has produced over
// time. Values without an offset are read in loc.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperror.Data(raw, errors.New("empty timestamp"))
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.Data(raw, errUnknownLayout)
}

// ParseTimestamps parses every value it can. Malformed values are returned as
// DataErrors and left out of the result.
func ParseTimestamps(raw []string, loc *time.Location) ([]time.Time, []error) {
	out := make([]time.Time, 0, len(raw))
	var skipped []error
	for _, r := range raw {
		t, err := ParseTimestamp(r, loc)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		out = append(out, t)
	}
	return out, skipped
}
