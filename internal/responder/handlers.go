// internal/responder/handlers.go
//
// Handlers for the gateway-backed rules. Each one extracts its parameters,
// issues the call, and reduces success, missing-credential, empty-result
// and transport failure to the rule's reply strings.
package responder

import (
	"context"
	"fmt"
	"strings"

	apierrors "rulecraft-chat/internal/common/errors"
)

func (r *Responder) replyNews(ctx context.Context, text string) string {
	category := extractNewsCategory(text)

	titles, err := r.gw.News.TopHeadlines(ctx, category)
	switch {
	case apierrors.IsMissingCredential(err):
		return fmt.Sprintf("News API key not set. Cannot fetch %s news.", category)
	case err != nil:
		return replyNewsError
	case len(titles) == 0:
		return fmt.Sprintf("No %s news found today.", category)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Top %s news headlines:", category)
	for i, title := range titles {
		fmt.Fprintf(&b, "\n%d. %s", i+1, title)
	}
	return b.String()
}

func (r *Responder) replyDefinition(ctx context.Context, text string) string {
	word := extractDefineWord(text)
	if word == "" {
		return replyDefineUsage
	}

	definition, err := r.gw.Dictionary.Define(ctx, word)
	switch {
	case apierrors.IsNotFound(err):
		return fmt.Sprintf("Couldn't find definition for '%s'.", word)
	case err != nil:
		return replyDefineError
	}

	return fmt.Sprintf("Definition of '%s': %s", word, definition)
}

func (r *Responder) replyConversion(ctx context.Context, text string) string {
	conv, ok := extractConversion(text)
	if !ok {
		return replyConvertUsage
	}

	result, err := r.gw.Currency.Convert(ctx, conv.Amount, conv.From, conv.To)
	switch {
	case apierrors.IsNotFound(err):
		return replyConvertUsage
	case err != nil:
		return replyConvertError
	}

	return fmt.Sprintf("%s %s = %.2f %s", floatString(conv.Amount), conv.From, result, conv.To)
}

func (r *Responder) replyChuckJoke(ctx context.Context, _ string) string {
	joke, err := r.gw.Jokes.Random(ctx)
	switch {
	case apierrors.IsNotFound(err):
		return replyJokeEmpty
	case err != nil:
		return replyJokeError
	}
	return joke
}

func (r *Responder) replyQuote(ctx context.Context, _ string) string {
	q, err := r.gw.Quotes.Random(ctx)
	switch {
	case apierrors.IsNotFound(err):
		return replyQuoteEmpty
	case err != nil:
		return replyQuoteError
	}
	return fmt.Sprintf("\"%s\" — %s", q.Content, q.Author)
}

func (r *Responder) replyMovie(ctx context.Context, text string) string {
	title := extractMovieTitle(text)
	if title == "" {
		return replyMovieUsage
	}

	m, err := r.gw.Movies.Lookup(ctx, title)
	switch {
	case apierrors.IsMissingCredential(err):
		return replyMovieNoKey
	case apierrors.IsNotFound(err):
		return fmt.Sprintf("Movie '%s' not found.", title)
	case err != nil:
		return replyMovieError
	}

	return fmt.Sprintf("%s (%s)\nActors: %s\nGenre: %s\nPlot: %s",
		m.Title, m.Year, m.Actors, m.Genre, m.Plot)
}

func (r *Responder) replyRecipes(ctx context.Context, text string) string {
	ingredient := extractRecipeQuery(text)

	titles, err := r.gw.Recipes.Search(ctx, ingredient)
	switch {
	case apierrors.IsMissingCredential(err):
		return replyRecipeNoKey
	case err != nil:
		return replyRecipeError
	case len(titles) == 0:
		return fmt.Sprintf("No recipes found with '%s'.", ingredient)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are some recipes with %s:", ingredient)
	for i, title := range titles {
		fmt.Fprintf(&b, "\n%d. %s", i+1, title)
	}
	return b.String()
}

func (r *Responder) replyTranslation(ctx context.Context, text string) string {
	phrase, target, ok := extractTranslation(text)
	if !ok {
		return replyTranslateUsage
	}

	translated, err := r.gw.Translate.Translate(ctx, phrase, target)
	switch {
	case apierrors.IsNotFound(err):
		return replyTranslateEmpty
	case err != nil:
		return replyTranslateError
	}
	return translated
}

func (r *Responder) replyCatFact(ctx context.Context, _ string) string {
	fact, err := r.gw.Trivia.CatFact(ctx)
	switch {
	case apierrors.IsNotFound(err):
		return replyCatFactEmpty
	case err != nil:
		return replyCatFactError
	}
	return fact
}

func (r *Responder) replyDogImage(ctx context.Context, _ string) string {
	imageURL, err := r.gw.Trivia.DogImage(ctx)
	switch {
	case apierrors.IsNotFound(err):
		return replyDogImageEmpty
	case err != nil:
		return replyDogImageError
	}
	return imageURL
}

func (r *Responder) replyWeather(ctx context.Context, text string) string {
	city := extractCity(text)
	if city == "" {
		city = defaultCity
	}

	cond, err := r.gw.Weather.Current(ctx, city)
	switch {
	case apierrors.IsMissingCredential(err):
		return replyWeatherNoKey
	case apierrors.IsNotFound(err):
		return fmt.Sprintf("Couldn't find weather for '%s'. Please check the city name.", city)
	case err != nil:
		return replyWeatherError
	}

	return fmt.Sprintf("The weather in %s is %s°C with %s.",
		titleCase(city), floatString(cond.Temp), cond.Description)
}
