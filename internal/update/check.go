// Package update looks up the latest devinci release.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultAPI is the GitHub API root used by Check.
const DefaultAPI = "https://api.github.com"

// Result holds the outcome of a release lookup.
type Result struct {
	Latest    string
	Current   string
	UpdateURL string
}

// NeedsUpdate reports whether Latest is newer than Current.
func (r *Result) NeedsUpdate() bool {
	return r != nil && compareVersions(r.Latest, r.Current) > 0
}

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Checker queries a releases API.
type Checker struct {
	API    string
	Client *http.Client
}

// NewChecker returns a Checker for the public GitHub API.
func NewChecker() *Checker {
	return &Checker{API: DefaultAPI, Client: &http.Client{Timeout: 3 * time.Second}}
}

// Latest fetches the newest release of owner/repo and compares it with current.
func (c *Checker) Latest(ctx context.Context, owner, repo, current string) (*Result, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", strings.TrimSuffix(c.API, "/"), owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("release lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release lookup returned %s", resp.Status)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("failed to decode release: %w", err)
	}
	return &Result{
		Latest:    strings.TrimPrefix(rel.TagName, "v"),
		Current:   strings.TrimPrefix(current, "v"),
		UpdateURL: rel.HTMLURL,
	}, nil
}

// compareVersions returns >0 if a > b, <0 if a < b, 0 if equal.
func compareVersions(a, b string) int {
	ap, bp := parseVersion(a), parseVersion(b)
	for i := range ap {
		if ap[i] != bp[i] {
			return ap[i] - bp[i]
		}
	}
	return 0
}

// parseVersion splits "1.2.3" into [1, 2, 3]. Missing parts are 0.
func parseVersion(v string) [3]int {
	var parts [3]int
	for i, s := range strings.SplitN(v, ".", 3) {
		if j := strings.IndexAny(s, "-+"); j >= 0 {
			s = s[:j]
		}
		parts[i], _ = strconv.Atoi(s)
	}
	return parts
}
