// Package responder maps free-text chat messages to replies through an
// ordered list of keyword rules. It is the only decision-making component;
// every collaborator behind it is an HTTP gateway hidden by an interface.
//
// A Responder never returns an error: every gateway failure collapses into
// a human-readable reply string. Calls are stateless and safe to run
// concurrently.
package responder

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"rulecraft-chat/internal/common/logger"
	"rulecraft-chat/internal/common/metrics"
	"rulecraft-chat/internal/gateways/movies"
	"rulecraft-chat/internal/gateways/quotes"
	"rulecraft-chat/internal/gateways/weather"
)

// Collaborator interfaces. Production wiring uses the gateway clients;
// tests substitute fakes.
type (
	WeatherService interface {
		Current(ctx context.Context, city string) (*weather.Conditions, error)
	}
	NewsService interface {
		TopHeadlines(ctx context.Context, category string) ([]string, error)
	}
	DictionaryService interface {
		Define(ctx context.Context, word string) (string, error)
	}
	CurrencyService interface {
		Convert(ctx context.Context, amount float64, from, to string) (float64, error)
	}
	JokeService interface {
		Random(ctx context.Context) (string, error)
	}
	QuoteService interface {
		Random(ctx context.Context) (*quotes.Quote, error)
	}
	MovieService interface {
		Lookup(ctx context.Context, title string) (*movies.Movie, error)
	}
	RecipeService interface {
		Search(ctx context.Context, query string) ([]string, error)
	}
	TranslationService interface {
		Translate(ctx context.Context, text, target string) (string, error)
	}
	TriviaService interface {
		CatFact(ctx context.Context) (string, error)
		DogImage(ctx context.Context) (string, error)
	}
	WikiService interface {
		Summary(ctx context.Context, topic string) (string, error)
	}
)

// Gateways bundles every external collaborator the rules can reach.
type Gateways struct {
	Weather    WeatherService
	News       NewsService
	Dictionary DictionaryService
	Currency   CurrencyService
	Jokes      JokeService
	Quotes     QuoteService
	Movies     MovieService
	Recipes    RecipeService
	Translate  TranslationService
	Trivia     TriviaService
	Wiki       WikiService
}

// Picker selects a random index in [0, n). Injectable so tests can pin the
// choice among greetings, jokes and facts.
type Picker func(n int) int

// Responder evaluates the rule table against normalized input.
type Responder struct {
	gw     Gateways
	pick   Picker
	now    func() time.Time
	logger logger.Logger
	rules  []rule
}

// Option customizes a Responder.
type Option func(*Responder)

// WithPicker replaces the randomness source.
func WithPicker(p Picker) Option {
	return func(r *Responder) { r.pick = p }
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(r *Responder) { r.now = now }
}

// WithLogger attaches a logger.
func WithLogger(log logger.Logger) Option {
	return func(r *Responder) { r.logger = log }
}

// New creates a Responder over the given collaborators.
func New(gw Gateways, opts ...Option) *Responder {
	r := &Responder{
		gw:     gw,
		pick:   rand.Intn,
		now:    time.Now,
		logger: logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.rules = r.buildRules()
	return r
}

// Respond maps one message to one reply. It always returns a non-empty
// string; gateway failures and unknown input degrade to fixed replies.
func (r *Responder) Respond(ctx context.Context, message string) string {
	if strings.TrimSpace(message) == "" {
		metrics.RepliesTotal.WithLabelValues("empty").Inc()
		return replyEmptyPrompt
	}

	text := strings.TrimSpace(strings.ToLower(message))

	for _, rl := range r.rules {
		if rl.match(text) {
			reply := rl.handle(ctx, text)
			metrics.RepliesTotal.WithLabelValues(rl.name).Inc()
			r.logger.Debug("rule matched", map[string]interface{}{"rule": rl.name})
			return reply
		}
	}

	if reply, ok := r.wikiFallback(ctx, text); ok {
		metrics.RepliesTotal.WithLabelValues("wiki").Inc()
		return reply
	}

	metrics.RepliesTotal.WithLabelValues("catch_all").Inc()
	return replyCatchAll
}

// wikiFallback tries the encyclopedia summary on the whole text after
// stripping question prefixes. ok is false when the lookup failed or found
// nothing, in which case the caller returns the catch-all.
func (r *Responder) wikiFallback(ctx context.Context, text string) (string, bool) {
	topic := stripTopicPrefixes(text)
	if topic == "" {
		return "", false
	}

	extract, err := r.gw.Wiki.Summary(ctx, topic)
	if err != nil || extract == "" {
		r.logger.Debug("wiki fallback missed", map[string]interface{}{"topic": topic})
		return "", false
	}

	return truncateExtract(extract), true
}
