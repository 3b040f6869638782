// Package profile resolves free-text user input into a search string
// plus best-effort metadata (detected skills and roles). Resolution is
// purely lexical and feeds the orchestrator, never the ranking math
// itself; the metadata only enriches responses.
package profile

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// Profile is the resolved view of user input.
type Profile struct {
	// RawText is the input exactly as received.
	RawText string
	// SearchText is the string handed to the ranker. For plain text it is
	// the input verbatim; for LinkedIn URLs it is a synthesized interest
	// description.
	SearchText string
	// DetectedSkills lists skill keywords found in the text.
	DetectedSkills []string
	// DetectedRoles lists role words found in the text.
	DetectedRoles []string
	// Interests aggregates the interests mapped from detected roles.
	Interests []string
	// LinkedIn reports whether the input looked like a LinkedIn URL.
	LinkedIn bool
}

// Resolver turns raw user input into a Profile. Implementations must be
// safe for concurrent use and must not perform network IO.
type Resolver interface {
	Resolve(ctx context.Context, text string) (Profile, error)
}

// linkedinRe matches linkedin.com profile URLs, with or without scheme
// and www prefix.
var linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/(?:in|pub)/([\w-]+)`)

// IsLinkedInURL reports whether text contains a LinkedIn profile URL.
func IsLinkedInURL(text string) bool {
	return linkedinRe.MatchString(text)
}

// usernameFromURL extracts the profile slug from a LinkedIn URL, or ""
// when none is present.
func usernameFromURL(text string) string {
	m := linkedinRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// KeywordResolver is the built-in Resolver: substring dictionaries for
// skills, role-to-interest mappings, and a deterministic synthesized
// profile for LinkedIn URLs (stand-in for an API integration that is
// deliberately out of scope).
type KeywordResolver struct {
	skills        []string
	roleInterests map[string][]string
}

// NewKeywordResolver creates a resolver with the built-in dictionaries.
func NewKeywordResolver(opts ...Option) *KeywordResolver {
	r := &KeywordResolver{
		skills:        skillKeywords,
		roleInterests: roleInterests,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve implements Resolver.
func (r *KeywordResolver) Resolve(_ context.Context, text string) (Profile, error) {
	if IsLinkedInURL(text) {
		return r.resolveURL(text), nil
	}
	return r.resolveText(text), nil
}

// resolveText scans pasted or free-form text for skill and role keywords.
// The search text stays verbatim so ranking never depends on the
// dictionaries.
func (r *KeywordResolver) resolveText(text string) Profile {
	lower := strings.ToLower(text)

	p := Profile{
		RawText:    text,
		SearchText: text,
	}

	for _, skill := range r.skills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			p.DetectedSkills = append(p.DetectedSkills, skill)
		}
	}

	interests := make(map[string]struct{})
	for role, mapped := range r.roleInterests {
		if !strings.Contains(lower, role) {
			continue
		}
		p.DetectedRoles = append(p.DetectedRoles, role)
		for _, interest := range mapped {
			interests[interest] = struct{}{}
		}
	}
	sort.Strings(p.DetectedRoles)
	for interest := range interests {
		p.Interests = append(p.Interests, interest)
	}
	sort.Strings(p.Interests)

	return p
}

// resolveURL synthesizes a deterministic interest profile from the URL
// slug. Hints in the slug (e.g. "climate", "fintech") broaden the
// generated description the same way every time.
func (r *KeywordResolver) resolveURL(text string) Profile {
	username := usernameFromURL(text)
	lower := strings.ToLower(username)

	about := []string{
		"Experienced leader focused on driving innovation and sustainable growth.",
		"Passionate about technology, climate action, and global cooperation.",
		"Expertise in AI, blockchain, and sustainable finance.",
	}
	skills := []string{"Strategy", "Innovation", "Leadership", "AI", "Sustainability"}
	interests := []string{"Technology", "Climate", "Finance", "Policy"}

	for _, hint := range urlHints {
		if !containsAny(lower, hint.slugWords) {
			continue
		}
		about = append(about, hint.about)
		skills = append(skills, hint.skills...)
		interests = append(interests, hint.interests...)
	}

	search := strings.Join(about, " ") +
		" Skills: " + strings.Join(skills, ", ") +
		" Interests: " + strings.Join(interests, ", ")

	return Profile{
		RawText:        text,
		SearchText:     search,
		DetectedSkills: skills,
		Interests:      interests,
		LinkedIn:       true,
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
