package usecase

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"

	"insights-api/internal/core/classify"
	"insights-api/internal/core/domain"
	"insights-api/internal/core/port"
)

// MaxHistory is the number of most recent chat turns forwarded to the model.
const MaxHistory = 10

// AssistantService implements port.AssistantUseCase: it renders prompt
// templates, calls the text generator and classifies the answers.
type AssistantService struct {
	gen        port.TextGenerator
	classifier *classify.Classifier
	now        func() time.Time
	newID      func() string
}

// NewAssistantService wires the assistant to a generator and classifier.
func NewAssistantService(gen port.TextGenerator, classifier *classify.Classifier) *AssistantService {
	return &AssistantService{
		gen:        gen,
		classifier: classifier,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// Analyze renders the template for req.Type (metrics when unknown) and
// returns the model's answer.
func (s *AssistantService) Analyze(ctx context.Context, req port.AnalysisReq) (*port.AnalysisResp, error) {
	typ := ResolveType(req.Type)
	p := templates[typ](req.Metrics)

	text, err := s.gen.Generate(ctx, p.text, p.context)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", typ, err)
	}
	return &port.AnalysisResp{Analysis: text, Type: typ, Timestamp: s.now()}, nil
}

// Chat answers req.Message with at most MaxHistory previous turns as
// context. An empty message is rejected with domain.ErrInvalidRequest.
func (s *AssistantService) Chat(ctx context.Context, req port.ChatReq) (*port.ChatResp, error) {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidRequest)
	}

	history := req.History
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}

	full := maps.Clone(req.Context)
	if full == nil {
		full = make(map[string]any, 2)
	}
	full["conversationHistory"] = history
	full["currentMessage"] = msg

	text, err := s.gen.Generate(ctx, chatTemplate(msg, history, req.Context), full)
	if err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	return &port.ChatResp{
		Response:       text,
		ConversationID: s.newID(),
		Timestamp:      s.now(),
	}, nil
}

// Insights runs Analyze and extracts structured insights from the answer.
func (s *AssistantService) Insights(ctx context.Context, req port.AnalysisReq) (*port.InsightsResp, error) {
	a, err := s.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}
	return &port.InsightsResp{
		Insights:  s.classifier.Insights(a.Analysis),
		Analysis:  a.Analysis,
		Type:      a.Type,
		Timestamp: a.Timestamp,
	}, nil
}

// Predictions renders the prediction template for req.Timeframe and
// extracts structured predictions from the answer.
func (s *AssistantService) Predictions(ctx context.Context, req port.PredictionReq) (*port.PredictionsResp, error) {
	tf := ResolveTimeframe(req.Timeframe)
	p := predictionsTemplate(req.Metrics, tf)

	text, err := s.gen.Generate(ctx, p.text, p.context)
	if err != nil {
		return nil, fmt.Errorf("predictions: %w", err)
	}
	return &port.PredictionsResp{
		Predictions: s.classifier.Predictions(text),
		Analysis:    text,
		Timeframe:   tf,
		Timestamp:   s.now(),
	}, nil
}
