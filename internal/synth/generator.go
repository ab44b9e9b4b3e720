// Package synth generates randomized hitlogs for testing and development.
package synth

import (
	"fmt"
	"math/rand"
	"time"

	"codeberg.org/hitlog/analyzer/internal/hitlog"
)

// all generated logs start from the same point in time
var baseTimestamp = time.Date(2024, 3, 21, 10, 0, 0, 0, time.UTC)

// Options controls the shape of a generated hitlog.
type Options struct {
	Users            int
	Articles         int
	MaxPerJourney    int
	RegistrationRate float64
}

// DefaultOptions mirrors a mid-sized production sample.
func DefaultOptions() Options {
	return Options{
		Users:            1000,
		Articles:         50,
		MaxPerJourney:    5,
		RegistrationRate: 0.3,
	}
}

// Validate rejects option values the generator cannot honor.
func (o Options) Validate() error {
	if o.Users < 0 {
		return fmt.Errorf("users must be non-negative, got %d", o.Users)
	}

	if o.Articles < 1 {
		return fmt.Errorf("articles must be at least 1, got %d", o.Articles)
	}

	if o.MaxPerJourney < 1 {
		return fmt.Errorf("max articles per journey must be at least 1, got %d", o.MaxPerJourney)
	}

	if o.RegistrationRate < 0 || o.RegistrationRate > 1 {
		return fmt.Errorf("registration rate must be within [0, 1], got %g", o.RegistrationRate)
	}

	return nil
}

// Generator produces hitlogs from an explicit seed so runs are reproducible.
type Generator struct {
	rng *rand.Rand
}

// returns a generator seeded for reproducible output
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate builds a randomized event log: each user views 1..MaxPerJourney
// distinct articles a few minutes apart, starting at a random hour offset,
// then registers with probability RegistrationRate. Output is valid reader
// input as-is.
func (g *Generator) Generate(opts Options) ([]hitlog.Event, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	articles := make([]string, opts.Articles)
	for i := range articles {
		articles[i] = fmt.Sprintf("%sarticle%d", hitlog.ArticlePrefix, i+1)
	}

	var events []hitlog.Event

	for u := 1; u <= opts.Users; u++ {
		userID := fmt.Sprintf("user%d", u)
		ts := baseTimestamp.Add(time.Duration(g.rng.Intn(25)) * time.Hour)

		for _, url := range g.sample(articles, g.rng.Intn(opts.MaxPerJourney)+1) {
			events = append(events, hitlog.Event{
				PageName:  url[len(hitlog.ArticlePrefix):],
				PageURL:   url,
				UserID:    userID,
				Timestamp: ts,
			})

			ts = ts.Add(time.Duration(g.rng.Intn(5)+1) * time.Minute)
		}

		if g.rng.Float64() < opts.RegistrationRate {
			events = append(events, hitlog.Event{
				PageName:  "Register",
				PageURL:   hitlog.RegistrationURL,
				UserID:    userID,
				Timestamp: ts,
			})
		}
	}

	return events, nil
}

// picks k distinct articles in random order
func (g *Generator) sample(articles []string, k int) []string {
	if k > len(articles) {
		k = len(articles)
	}

	picked := make([]string, 0, k)

	for _, idx := range g.rng.Perm(len(articles))[:k] {
		picked = append(picked, articles[idx])
	}

	return picked
}
