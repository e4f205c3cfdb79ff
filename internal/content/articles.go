// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"math/rand"
	"time"
)

// Article is a static blog/insights entry. The set is defined once at
// process start and never mutated; slugs are unique across the set.
type Article struct {
	ID          int
	Slug        string
	Title       string
	Category    string
	Author      string
	Intro       string
	Description string
	FullContent string
	ReadingTime int // minutes
	PublishDate time.Time
}

// Shuffler randomly permutes n elements via swap. Production code passes
// rand.Shuffle; tests inject a deterministic permutation.
type Shuffler func(n int, swap func(i, j int))

// Set is an immutable collection of articles with lookup helpers.
type Set struct {
	articles []Article
	bySlug   map[string]int
}

// NewSet builds a Set from the given articles. Duplicate slugs panic:
// the article list is compiled in, so a duplicate is a programming error
// caught at startup, not a runtime condition.
func NewSet(articles []Article) *Set {
	bySlug := make(map[string]int, len(articles))
	for i, a := range articles {
		if _, dup := bySlug[a.Slug]; dup {
			panic("content: duplicate article slug " + a.Slug)
		}
		bySlug[a.Slug] = i
	}
	return &Set{articles: articles, bySlug: bySlug}
}

// All returns every article in publish order (as compiled in).
func (s *Set) All() []Article {
	out := make([]Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// Len returns the number of articles in the set.
func (s *Set) Len() int { return len(s.articles) }

// FindBySlug returns the article with the given slug, or nil if absent.
func (s *Set) FindBySlug(slug string) *Article {
	i, ok := s.bySlug[slug]
	if !ok {
		return nil
	}
	a := s.articles[i]
	return &a
}

// Related returns up to limit articles excluding the one matching
// currentSlug, in shuffled order. If fewer than limit other articles
// exist they are all returned. A nil shuffle uses the package-level
// math/rand source.
func (s *Set) Related(currentSlug string, limit int, shuffle Shuffler) []Article {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}

	candidates := make([]Article, 0, len(s.articles))
	for _, a := range s.articles {
		if a.Slug != currentSlug {
			candidates = append(candidates, a)
		}
	}

	shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if limit < 0 {
		limit = 0
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// Articles returns the compiled-in article set for the public site.
func Articles() *Set {
	return NewSet(siteArticles)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// siteArticles is the static insights/blog content. Bodies use the
// line-delimited block format understood by ParseBlocks.
var siteArticles = []Article{
	{
		ID:          1,
		Slug:        "choosing-the-right-cctv-system-for-your-business",
		Title:       "Choosing the Right CCTV System for Your Business",
		Category:    "Security",
		Author:      "Digitallink Team",
		Intro:       "Not every camera fits every site. Here is how to match coverage, resolution, and storage to your premises.",
		Description: "A practical guide to selecting CCTV hardware for retail, warehouse, and office environments in Bahrain.",
		FullContent: "<h3>Start with the site survey</h3>\n" +
			"<p>Before comparing camera specifications, walk the premises and map the areas that actually need coverage: entrances, loading bays, cash handling points, and blind corners.</p>\n" +
			"<p>A short survey almost always reduces the camera count a vendor first proposes.</p>\n" +
			"<h3>Resolution versus retention</h3>\n" +
			"<p>Higher resolution means larger recordings. If regulation requires 90 days of retention, a 4K-everywhere design can triple your storage budget.</p>\n" +
			"<p>Mix resolutions: 4K at choke points, 1080p for general areas.</p>\n" +
			"<h3>Plan the network first</h3>\n" +
			"<p>PoE switches, cable runs, and NVR placement decide the install cost far more than the cameras themselves.</p>",
		ReadingTime: 5,
		PublishDate: date(2026, time.March, 12),
	},
	{
		ID:          2,
		Slug:        "access-control-beyond-the-keycard",
		Title:       "Access Control: Beyond the Keycard",
		Category:    "Security",
		Author:      "Digitallink Team",
		Intro:       "Mobile credentials and biometrics are replacing plastic cards across the Gulf.",
		Description: "Why modern access control platforms pair better with HR systems than standalone card readers ever did.",
		FullContent: "<h3>The problem with cards</h3>\n" +
			"<p>Cards are shared, lost, and cloned. Every lost card is a standing hole in the perimeter until someone notices.</p>\n" +
			"<h3>Mobile and biometric credentials</h3>\n" +
			"<p>Phone-based credentials are revoked centrally the moment an employee leaves, and biometric readers remove the credential hand-off entirely.</p>\n" +
			"<p>Most sites run both during a transition year.</p>\n" +
			"<h3>Integrate with HR</h3>\n" +
			"<p>Provisioning from the HR system means joiners get access on day one and leavers lose it the same hour.</p>",
		ReadingTime: 4,
		PublishDate: date(2026, time.April, 2),
	},
	{
		ID:          3,
		Slug:        "structured-cabling-mistakes-that-cost-you-later",
		Title:       "Structured Cabling Mistakes That Cost You Later",
		Category:    "Infrastructure",
		Author:      "Digitallink Team",
		Intro:       "The cheapest part of a network build is the one that is hardest to fix afterwards.",
		Description: "Five cabling shortcuts we keep finding in Bahrain office fit-outs, and what each one costs to undo.",
		FullContent: "Cabling is invisible until it fails, which is exactly why it gets value-engineered first.\n" +
			"<h3>Skipping certification</h3>\n" +
			"<p>Uncertified runs pass a laptop ping test and then drop packets under load. Certification reports cost little at install time and are unobtainable afterwards without re-pulling.</p>\n" +
			"<h3>No spare capacity</h3>\n" +
			"<p>Conduit filled to 100 percent means the next camera or access point needs civil work, not a cable.</p>\n" +
			"<h3>Unlabelled patch panels</h3>\n" +
			"<p>Every unlabelled port turns a five-minute change into an hour of tracing.</p>",
		ReadingTime: 6,
		PublishDate: date(2026, time.April, 20),
	},
	{
		ID:          4,
		Slug:        "why-smes-in-bahrain-are-moving-to-managed-it",
		Title:       "Why SMEs in Bahrain Are Moving to Managed IT",
		Category:    "IT Services",
		Author:      "Digitallink Team",
		Intro:       "The in-house IT generalist is disappearing from companies under a hundred seats.",
		Description: "What managed service contracts actually cover, and how to compare them beyond the monthly price.",
		FullContent: "<h3>The generalist gap</h3>\n" +
			"<p>One person cannot patch servers, answer tickets, negotiate with ISPs, and keep backups tested. Something always slips, and it is usually the backups.</p>\n" +
			"<h3>What a contract should name</h3>\n" +
			"<p>Response times by severity, patch windows, backup verification cadence, and who owns the licences. If these are not written down, they are not included.</p>\n" +
			"<p>Ask for the monthly report format before signing, not after.</p>",
		ReadingTime: 4,
		PublishDate: date(2026, time.May, 8),
	},
	{
		ID:          5,
		Slug:        "intrusion-detection-layers-that-actually-deter",
		Title:       "Intrusion Detection: Layers That Actually Deter",
		Category:    "Security",
		Author:      "Digitallink Team",
		Intro:       "Alarms that only sound after entry are evidence collection, not deterrence.",
		Description: "How perimeter beams, glass-break sensors, and monitored response fit together for warehouse sites.",
		FullContent: "<h3>Detect at the perimeter</h3>\n" +
			"<p>Beam sensors and fence-line detection raise the alarm while an intruder is still outside, which is the only point a response can prevent loss rather than document it.</p>\n" +
			"<h3>Verify before dispatch</h3>\n" +
			"<p>Video verification cuts false-alarm callouts dramatically and keeps the police response credible for the alarms that matter.</p>\n" +
			"<h3>Test the whole chain</h3>\n" +
			"<p>A quarterly walk test of every zone takes an hour and finds the dead sensor before the intruder does.</p>",
		ReadingTime: 5,
		PublishDate: date(2026, time.May, 28),
	},
	{
		ID:          6,
		Slug:        "time-attendance-systems-and-wps-compliance",
		Title:       "Time Attendance Systems and WPS Compliance",
		Category:    "IT Services",
		Author:      "Digitallink Team",
		Intro:       "Attendance data feeds payroll, and payroll feeds the Wage Protection System.",
		Description: "Picking an attendance platform that exports cleanly into Bahrain payroll workflows.",
		FullContent: "<h3>Why exports matter most</h3>\n" +
			"<p>The reader hardware is interchangeable; the export format is not. A platform that cannot produce your payroll provider's import file adds a manual step to every pay run.</p>\n" +
			"<h3>Handling shift patterns</h3>\n" +
			"<p>Split shifts, Ramadan hours, and site transfers break naive in/out pairing. Check the rule engine against your roster before buying.</p>",
		ReadingTime: 3,
		PublishDate: date(2026, time.June, 15),
	},
}
