package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	pullRequestURLPattern = regexp.MustCompile(`https?://\S+/pull/\d+`)
	sessionIDPattern      = regexp.MustCompile(`session_id=([\w-]+)`)
)

// Correlation holds the identifiers extracted from a backend response
type Correlation struct {
	PRNumber       int // 0 when the URL is absent or has no numeric tail
	PullRequestURL string
	SessionID      string
}

// Correlate extracts a pull request URL and a session id from a
// free-form backend message. A directly supplied session id wins over
// one embedded in the message; absent both, the session id is empty.
// The PR number is the trailing path segment of the URL parsed as a
// base-10 integer.
//
// Correlate is pure: identical inputs always yield identical results.
func Correlate(message, sessionID string) Correlation {
	correlation := Correlation{
		PullRequestURL: pullRequestURLPattern.FindString(message),
		SessionID:      sessionID,
	}

	if correlation.SessionID == "" {
		if match := sessionIDPattern.FindStringSubmatch(message); match != nil {
			correlation.SessionID = match[1]
		}
	}

	if correlation.PullRequestURL != "" {
		segments := strings.Split(correlation.PullRequestURL, "/")
		if number, err := strconv.Atoi(segments[len(segments)-1]); err == nil {
			correlation.PRNumber = number
		}
	}

	return correlation
}
