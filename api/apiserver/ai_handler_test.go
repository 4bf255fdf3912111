package apiserver_test

import (
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ritikbusiness/career-academy-backend-sub003/aiclient"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

var _ = Describe("AIHandler", func() {
	It("summarizes with the schema defaults applied", func() {
		aiClient.SummarizeReturns(&models.AIResponse{Feature: "summarize", Result: "Short.", Model: "test-model"}, nil)

		rsp := serve(http.MethodPost, "/api/ai/summarize", map[string]any{"content": "  A long lesson.  "}, authorized()...)
		Expect(rsp.Code).To(Equal(http.StatusOK))
		Expect(rsp.Body.String()).To(MatchJSON(`{"feature":"summarize","result":"Short.","model":"test-model"}`))

		_, req := aiClient.SummarizeArgsForCall(0)
		Expect(req).To(Equal(models.SummarizeRequest{Content: "A long lesson.", MaxWords: 150}))
	})

	It("passes quiz suggestion requests on", func() {
		aiClient.SuggestQuizReturns(&models.AIResponse{Feature: "quiz-suggestions", Result: "1. ..."}, nil)

		rsp := serve(http.MethodPost, "/api/ai/quiz-suggestions", map[string]any{"topic": "channels", "questionCount": 3}, authorized()...)
		Expect(rsp.Code).To(Equal(http.StatusOK))
		_, req := aiClient.SuggestQuizArgsForCall(0)
		Expect(req).To(Equal(models.QuizSuggestionRequest{Topic: "channels", QuestionCount: 3, Difficulty: "intermediate"}))
	})

	It("answers 502 when the provider fails", func() {
		aiClient.ExplainReturns(nil, fmt.Errorf("%w: status 503", aiclient.ErrProvider))

		rsp := serve(http.MethodPost, "/api/ai/explain", map[string]any{"concept": "closures"}, authorized()...)
		Expect(rsp.Code).To(Equal(http.StatusBadGateway))
		Expect(rsp.Body.String()).NotTo(ContainSubstring("503"))
	})

	It("rejects an unknown level", func() {
		rsp := serve(http.MethodPost, "/api/ai/explain", map[string]any{"concept": "closures", "level": "guru"}, authorized()...)
		Expect(rsp.Code).To(Equal(http.StatusBadRequest))
		Expect(aiClient.ExplainCallCount()).To(Equal(0))
	})

	It("requires a session", func() {
		rsp := serve(http.MethodPost, "/api/ai/explain", map[string]any{"concept": "closures"})
		Expect(rsp.Code).To(Equal(http.StatusUnauthorized))
	})

	It("uses the ai limiter", func() {
		aiClient.ExplainReturns(&models.AIResponse{Feature: "explain"}, nil)
		rsp := serve(http.MethodPost, "/api/ai/explain", map[string]any{"concept": "closures"}, authorized()...)
		Expect(rsp.Header().Get("X-RateLimit-Limit")).To(Equal("10"))
	})
})
