package api

import (
	"context"

	"medassist/feedback"
	"medassist/history"
	"medassist/search"
	"medassist/triage"
	"medassist/types"

	"github.com/gin-gonic/gin"
)

// SnippetRetriever abstracts the source retrieval step so handlers can be
// tested against a stub backend.
type SnippetRetriever interface {
	Retrieve(ctx context.Context, query string) search.Retrieval
}

// AnswerSynthesizer abstracts the answer synthesis step.
type AnswerSynthesizer interface {
	Answer(ctx context.Context, question string, snippets []types.SourceSnippet) types.Answer
}

// Server handles HTTP API requests for the medical assistant.
type Server struct {
	retriever   SnippetRetriever
	synthesizer AnswerSynthesizer
	matcher     *triage.Matcher
	classifier  *triage.Classifier
	sessions    *history.Store
	feedback    feedback.RowAppender // nil when the spreadsheet backend is not configured
}

// NewServer creates a new API server instance.
func NewServer(
	retriever SnippetRetriever,
	synthesizer AnswerSynthesizer,
	matcher *triage.Matcher,
	classifier *triage.Classifier,
	sessions *history.Store,
	feedback feedback.RowAppender,
) *Server {
	return &Server{
		retriever:   retriever,
		synthesizer: synthesizer,
		matcher:     matcher,
		classifier:  classifier,
		sessions:    sessions,
		feedback:    feedback,
	}
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterAskRoutes(r, s)
	RegisterHistoryRoutes(r, s)
	RegisterFeedbackRoutes(r, s)
	RegisterHealthRoutes(r)
	return r
}
