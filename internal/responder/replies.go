// internal/responder/replies.go
package responder

// Canned reply text. These strings are the user-facing contract of the
// rule engine; change them together with the tests.
const (
	replyEmptyPrompt = "Please type something so I can help."
	replyFarewell    = "Goodbye! 👋 Have a wonderful day!"
	replyStatus      = "I'm doing well — ready to help! How can I assist you?"

	replyPython     = "Python is a versatile programming language used for web development, data science, automation and more. Try: 'explain python lists'."
	replyJavaScript = "JavaScript runs in browsers and servers (Node.js). Great for interactive websites."
	replyInternet   = "The Internet is a global network of networks that uses TCP/IP to connect devices."

	replyIdentity = "I'm RuleCraft — an all-purpose rule-based assistant (web edition)."
	replyCreator  = "I was created by a developer using Go, Gin and a set of rules + APIs."

	replyCatchAll = "I don't understand that yet. Try asking about weather, time, jokes, facts, news, or technology."

	replyDefineUsage    = "Please provide a word to define."
	replyConvertUsage   = "Usage: Convert 100 USD to INR"
	replyMovieUsage     = "Please provide a movie name."
	replyTranslateUsage = "Usage: Translate hello to French"

	replyNewsError      = "Error fetching news."
	replyDefineError    = "Error fetching definition."
	replyConvertError   = "Error fetching currency conversion."
	replyJokeError      = "Error fetching joke."
	replyQuoteError     = "Error fetching quote."
	replyMovieError     = "Error fetching movie info."
	replyRecipeError    = "Error fetching recipes."
	replyTranslateError = "Error translating text."
	replyCatFactError   = "Error fetching cat fact."
	replyDogImageError  = "Error fetching dog image."
	replyWeatherError   = "Error contacting weather service. Try again later."

	replyJokeEmpty      = "Couldn't fetch joke right now."
	replyQuoteEmpty     = "Couldn't fetch a quote."
	replyTranslateEmpty = "Could not translate."
	replyCatFactEmpty   = "No fact found."
	replyDogImageEmpty  = "Couldn't fetch dog image."

	replyWeatherNoKey = "I can't fetch live weather here (OPENWEATHER_API_KEY not set). Try: 'weather in Delhi'."
	replyMovieNoKey   = "OMDb API key not set. Cannot fetch movie info."
	replyRecipeNoKey  = "Spoonacular API key not set. Cannot fetch recipes."
)

var greetings = []string{
	"Hello! 👋 How can I help you today?",
	"Hi there! 😊 What would you like to know?",
	"Hey! I’m here to assist you.",
}

var jokes = []string{
	"Why don't scientists trust atoms? Because they make up everything!",
	"Why was the math book sad? Because it had too many problems?",
	"Parallel lines have so much in common… it’s a shame they’ll never meet.",
}

var facts = []string{
	"The Eiffel Tower can be 15 cm taller during hot days.",
	"Bananas are berries, but strawberries are not.",
	"Sharks existed before trees.",
}

// newsCategories are scanned in this order; the first one present in the
// text wins.
var newsCategories = []string{
	"technology", "sports", "politics", "business", "health", "science",
}

const (
	defaultCity       = "London"
	defaultIngredient = "chicken"
	defaultCategory   = "general"
)
