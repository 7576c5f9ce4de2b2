// internal/responder/rules.go
package responder

import (
	"context"
	"fmt"
	"strings"
)

// rule pairs a predicate over normalized text with a handler. Rules are
// evaluated strictly in slice order and only the first match fires; the
// order below is load-bearing because predicates overlap ("funny joke"
// must reach the chuck rule, "tell me about X" must reach movies before
// weather, any text containing "fact" stops at the fact rule).
type rule struct {
	name   string
	match  func(text string) bool
	handle func(ctx context.Context, text string) string
}

func (r *Responder) buildRules() []rule {
	return []rule{
		{
			name: "exit",
			match: func(t string) bool {
				return t == "exit" || t == "quit" || t == "bye"
			},
			handle: func(_ context.Context, _ string) string {
				return replyFarewell
			},
		},
		{
			name: "greeting",
			match: func(t string) bool {
				return containsAny(t, "hi", "hello", "hey", "yo")
			},
			handle: func(_ context.Context, _ string) string {
				return greetings[r.pick(len(greetings))]
			},
		},
		{
			name: "status",
			match: func(t string) bool {
				return strings.Contains(t, "how are you")
			},
			handle: func(_ context.Context, _ string) string {
				return replyStatus
			},
		},
		{
			name: "time",
			match: func(t string) bool {
				return strings.Contains(t, "time") && !strings.Contains(t, "date")
			},
			handle: func(_ context.Context, _ string) string {
				return fmt.Sprintf("The current time is %s.", r.now().Format("15:04:05"))
			},
		},
		{
			name: "date",
			match: func(t string) bool {
				return strings.Contains(t, "date")
			},
			handle: func(_ context.Context, _ string) string {
				return fmt.Sprintf("Today's date is %s.", r.now().Format("January 02, 2006"))
			},
		},
		{
			name: "joke",
			match: func(t string) bool {
				return strings.Contains(t, "joke") && !strings.Contains(t, "funny")
			},
			handle: func(_ context.Context, _ string) string {
				return jokes[r.pick(len(jokes))]
			},
		},
		{
			name: "fact",
			match: func(t string) bool {
				return strings.Contains(t, "fact")
			},
			handle: func(_ context.Context, _ string) string {
				return facts[r.pick(len(facts))]
			},
		},
		{
			name: "news",
			match: func(t string) bool {
				return strings.Contains(t, "news")
			},
			handle: r.replyNews,
		},
		{
			name: "define",
			match: func(t string) bool {
				return strings.HasPrefix(t, "define ") || strings.HasPrefix(t, "meaning of ")
			},
			handle: r.replyDefinition,
		},
		{
			name: "convert",
			match: func(t string) bool {
				return strings.HasPrefix(t, "convert ")
			},
			handle: r.replyConversion,
		},
		{
			name: "chuck",
			match: func(t string) bool {
				return containsAny(t, "funny joke", "chuck norris")
			},
			handle: r.replyChuckJoke,
		},
		{
			name: "quote",
			match: func(t string) bool {
				return containsAny(t, "motivate", "quote")
			},
			handle: r.replyQuote,
		},
		{
			name: "movie",
			match: func(t string) bool {
				return strings.Contains(t, "movie") || strings.HasPrefix(t, "tell me about ")
			},
			handle: r.replyMovie,
		},
		{
			name: "recipe",
			match: func(t string) bool {
				return containsAny(t, "recipe", "cook", "dish")
			},
			handle: r.replyRecipes,
		},
		{
			name: "translate",
			match: func(t string) bool {
				return strings.HasPrefix(t, "translate ")
			},
			handle: r.replyTranslation,
		},
		{
			name: "cat_fact",
			match: func(t string) bool {
				return strings.Contains(t, "cat fact")
			},
			handle: r.replyCatFact,
		},
		{
			name: "dog_picture",
			match: func(t string) bool {
				return strings.Contains(t, "dog picture")
			},
			handle: r.replyDogImage,
		},
		{
			name: "weather",
			match: func(t string) bool {
				return strings.Contains(t, "weather")
			},
			handle: r.replyWeather,
		},
		{
			name: "python",
			match: func(t string) bool {
				return strings.Contains(t, "python")
			},
			handle: func(_ context.Context, _ string) string {
				return replyPython
			},
		},
		{
			name: "javascript",
			match: func(t string) bool {
				return containsAny(t, "javascript", "js")
			},
			handle: func(_ context.Context, _ string) string {
				return replyJavaScript
			},
		},
		{
			name: "internet",
			match: func(t string) bool {
				return strings.Contains(t, "internet")
			},
			handle: func(_ context.Context, _ string) string {
				return replyInternet
			},
		},
		{
			name: "identity",
			match: func(t string) bool {
				return containsAny(t, "your name", "who are you")
			},
			handle: func(_ context.Context, _ string) string {
				return replyIdentity
			},
		},
		{
			name: "creator",
			match: func(t string) bool {
				return containsAny(t, "who made you", "who created you")
			},
			handle: func(_ context.Context, _ string) string {
				return replyCreator
			},
		},
	}
}
