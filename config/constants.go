package config

// Search Constants
const (
	// MaxSnippets caps how many search results feed the answer prompt
	MaxSnippets = 5

	// PreferredSourceMarker promotes results from this domain to the front
	// of the snippet list
	PreferredSourceMarker = "nhs.uk"
)

// TrustedSites lists the domain restriction terms ORed into every search
// expression. Results outside these hostnames are never requested.
var TrustedSites = []string{
	"site:nhs.uk",
	"site:nih.gov",
	"site:mayoclinic.org",
	"site:who.int",
	"site:cdc.gov",
	"site:clevelandclinic.org",
	"site:health.harvard.edu",
	"site:pubmed.ncbi.nlm.nih.gov",
	"site:webmd.com",
	"site:medlineplus.gov",
}

// Answer Constants
const (
	// NoSourcesMessage is returned when retrieval produced nothing usable
	NoSourcesMessage = "Sorry, no reliable sources available now."

	// DisclaimerSuffix is appended to every successful answer
	DisclaimerSuffix = "\n\n**Disclaimer:** Always consult your healthcare provider."

	// SafetyReminder must appear at the end of the generated answer body
	SafetyReminder = "Talk to a doctor to be sure."
)

// Completion Model Constants
const (
	// DefaultCohereModel is used when COHERE_API_KEY selects the Cohere provider
	DefaultCohereModel = "command-r-08-2024"

	// DefaultOpenAIModel is used when OPENAI_API_KEY selects the OpenAI provider
	DefaultOpenAIModel = "gpt-4o"
)

// Demographic Constants
const (
	// GenderUnspecified is the default gender selection; when chosen together
	// with an empty age the query is left untouched
	GenderUnspecified = "Prefer not to say"
)

// GenderOptions enumerates the accepted gender selections.
var GenderOptions = []string{GenderUnspecified, "Male", "Female", "Other"}

// Feedback Constants
const (
	// DefaultSheetRange targets the first sheet when appending feedback rows
	DefaultSheetRange = "A1"
)
