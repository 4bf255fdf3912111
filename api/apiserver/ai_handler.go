package apiserver

import (
	"context"
	"errors"
	"net/http"

	"code.cloudfoundry.org/lager/v3"

	"github.com/ritikbusiness/career-academy-backend-sub003/aiclient"
	"github.com/ritikbusiness/career-academy-backend-sub003/helpers/handlers"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
	"github.com/ritikbusiness/career-academy-backend-sub003/validation"
)

type AIHandler struct {
	logger   lager.Logger
	aiClient aiclient.AIClient
}

// NewAIHandler accepts a nil client, in which case every AI route answers 503.
func NewAIHandler(logger lager.Logger, aiClient aiclient.AIClient) *AIHandler {
	return &AIHandler{
		logger:   logger.Session("ai-handler"),
		aiClient: aiClient,
	}
}

func (h *AIHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummarizeRequest
	h.handle(w, r, "summarize", &req, func(ctx context.Context) (*models.AIResponse, error) {
		return h.aiClient.Summarize(ctx, req)
	})
}

func (h *AIHandler) SuggestQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.QuizSuggestionRequest
	h.handle(w, r, "quiz-suggestions", &req, func(ctx context.Context) (*models.AIResponse, error) {
		return h.aiClient.SuggestQuiz(ctx, req)
	})
}

func (h *AIHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var req models.ExplainRequest
	h.handle(w, r, "explain", &req, func(ctx context.Context) (*models.AIResponse, error) {
		return h.aiClient.Explain(ctx, req)
	})
}

// handle binds the validated body into req before calling the provider.
func (h *AIHandler) handle(w http.ResponseWriter, r *http.Request, feature string, req any, call func(context.Context) (*models.AIResponse, error)) {
	logger := h.logger.Session(feature, lager.Data{"request_id": RequestIDFromContext(r.Context())})

	if h.aiClient == nil {
		handlers.WriteErrorResponse(w, http.StatusServiceUnavailable, "AI features are not configured")
		return
	}

	if err := validation.Bind(r, validation.SourceBody, req); err != nil {
		writeInternalError(w, logger, "failed-to-bind-body", err)
		return
	}

	response, err := call(r.Context())
	if errors.Is(err, aiclient.ErrProvider) {
		logger.Error("ai-provider-failed", err)
		handlers.WriteErrorResponse(w, http.StatusBadGateway, "AI service is unavailable, please try again later")
		return
	}
	if err != nil {
		writeInternalError(w, logger, "failed-to-call-ai-provider", err)
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, response)
}
