package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
)

// robotsGate answers "may I fetch this URL?" from cached per-host
// robots.txt rules. Lookup failures fail open: an unreachable or missing
// robots.txt never blocks a fetch. A 401 or 403 for robots.txt itself is
// treated as "crawling unwelcome" and blocks the whole host.
type robotsGate struct {
	client    *http.Client
	userAgent string

	mu    sync.Mutex
	rules map[string]*robotsRules // keyed by scheme://host
}

func newRobotsGate(client *http.Client, userAgent string) *robotsGate {
	return &robotsGate{
		client:    client,
		userAgent: userAgent,
		rules:     make(map[string]*robotsRules),
	}
}

func (g *robotsGate) allowed(ctx context.Context, u *url.URL) bool {
	base := u.Scheme + "://" + u.Host

	g.mu.Lock()
	rules, ok := g.rules[base]
	g.mu.Unlock()

	if !ok {
		rules = g.fetchRules(ctx, base)
		g.mu.Lock()
		g.rules[base] = rules
		g.mu.Unlock()
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}

	return rules.isAllowed(g.userAgent, path)
}

func (g *robotsGate) fetchRules(ctx context.Context, base string) *robotsRules {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/robots.txt", nil)
	if err != nil {
		return &robotsRules{}
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return &robotsRules{}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return disallowAll
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &robotsRules{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &robotsRules{}
	}

	return parseRobotsTxt(string(body))
}

// disallowAll blocks every path for every agent.
var disallowAll = &robotsRules{groups: []robotsGroup{{
	agents:   []string{"*"},
	disallow: []string{"/"},
}}}

// robotsRules holds the parsed groups of one robots.txt file.
// The zero value allows everything.
type robotsRules struct {
	groups []robotsGroup
}

type robotsGroup struct {
	agents   []string
	allow    []string
	disallow []string
}

// parseRobotsTxt parses the User-agent, Allow and Disallow directives of a
// robots.txt file. Consecutive User-agent lines share one group; a
// User-agent line after any rule line starts a new group. Unknown
// directives and comments are ignored.
func parseRobotsTxt(text string) *robotsRules {
	var groups []robotsGroup
	current := robotsGroup{}
	flush := func() {
		if len(current.agents) == 0 && len(current.allow) == 0 && len(current.disallow) == 0 {
			return
		}
		groups = append(groups, current)
		current = robotsGroup{}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		colon := strings.IndexByte(line, ':')
		if colon <= 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(line[:colon]))
		val := strings.TrimSpace(line[colon+1:])

		switch key {
		case "user-agent", "useragent":
			if len(current.agents) > 0 && (len(current.allow) > 0 || len(current.disallow) > 0) {
				flush()
			}
			current.agents = append(current.agents, strings.ToLower(val))
		case "allow":
			current.allow = append(current.allow, val)
		case "disallow":
			current.disallow = append(current.disallow, val)
		}
	}
	flush()

	return &robotsRules{groups: groups}
}

// isAllowed evaluates the path against the rules for the given user agent.
//
// The most specific matching User-agent group is selected (longest agent
// token contained in userAgent; "*" loses to any named match). Within that
// group the matching directive with the longest pattern wins, Allow beating
// Disallow on ties. With no matching directive or group, the path is
// allowed.
func (r *robotsRules) isAllowed(userAgent, path string) bool {
	idx := r.selectGroup(userAgent)
	if idx < 0 {
		return true
	}
	grp := r.groups[idx]

	bestScore := -1
	bestAllow := true
	evaluate := func(patterns []string, isAllow bool) {
		for _, p := range patterns {
			if p == "" {
				continue
			}
			if !robotsPatternMatches(p, path) {
				continue
			}
			score := robotsPatternSpecificity(p)
			if score > bestScore || (score == bestScore && isAllow && !bestAllow) {
				bestScore = score
				bestAllow = isAllow
			}
		}
	}
	evaluate(grp.disallow, false)
	evaluate(grp.allow, true)

	if bestScore == -1 {
		return true
	}
	return bestAllow
}

func (r *robotsRules) selectGroup(userAgent string) int {
	ua := strings.ToLower(strings.TrimSpace(userAgent))
	bestIdx := -1
	bestScore := -1
	for i, g := range r.groups {
		for _, agent := range g.agents {
			token := strings.TrimSpace(agent)
			if token == "" {
				continue
			}
			var score int
			switch {
			case token == "*":
				score = 0
			case strings.Contains(ua, token):
				score = len(token)
			default:
				continue
			}
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
	}
	return bestIdx
}

// robotsPatternMatches reports whether the robots pattern matches the path.
// Patterns anchor at the start of the path; '*' matches any sequence and a
// trailing '$' anchors the end.
func robotsPatternMatches(pattern, path string) bool {
	anchorEnd := strings.HasSuffix(pattern, "$")
	p := strings.TrimSuffix(pattern, "$")

	var b strings.Builder
	b.WriteString("^")
	for _, r := range p {
		if r == '*' {
			b.WriteString(".*")
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	if anchorEnd {
		b.WriteString("$")
	}

	re, err := regexp.Compile(b.String())
	if err != nil {
		return false
	}
	return re.MatchString(path)
}

// robotsPatternSpecificity scores a pattern by its length with wildcards
// removed and any trailing '$' ignored.
func robotsPatternSpecificity(pattern string) int {
	p := strings.TrimSuffix(pattern, "$")
	return len(strings.ReplaceAll(p, "*", ""))
}
