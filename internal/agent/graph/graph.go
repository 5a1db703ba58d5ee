package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/proraahi-core/server/internal/agent/composer"
	"github.com/proraahi-core/server/internal/agent/graph/conversations"
	"github.com/proraahi-core/server/internal/agent/graph/nodes"
	"github.com/proraahi-core/server/internal/agent/graph/observers"
	"github.com/proraahi-core/server/internal/agent/model"
	"github.com/proraahi-core/server/internal/agent/nlu"
	"github.com/proraahi-core/server/internal/agent/workflow"
	"github.com/proraahi-core/server/internal/catalog"
	"github.com/proraahi-core/server/internal/metrics"
	logx "github.com/proraahi-core/server/pkg/logger"
)

const maxRunSteps = 10

// Config holds everything needed to compose the dialogue engine end-to-end.
// This is a convenience layer over GraphConfig that also constructs the Gemini
// providers, the classifier, the composer and the dispatcher.
type Config struct {
	// Gemini credentials. An empty APIKey runs the engine on the local fallbacks only.
	APIKey  string
	BaseURL string

	NLUModel      model.NLUModelConfig
	ResponseModel model.ResponseModelConfig
	Conversation  model.ConversationConfig
	Workflow      model.WorkflowConfig
	Knowledge     *model.Knowledge

	ConversationRepo model.ConversationRepository
	SessionStore     model.SessionStore
	Catalog          workflow.Searcher

	NLUBreaker      *gobreaker.CircuitBreaker
	ResponseBreaker *gobreaker.CircuitBreaker
}

// GraphConfig holds all components wired into the graph.
type GraphConfig struct {
	Classifier      *nlu.Classifier
	Slots           *nlu.SlotExtractor
	Dispatcher      *workflow.Dispatcher
	MessagesManager *conversations.MessagesManager
	SessionStore    model.SessionStore
	Knowledge       model.Knowledge
}

// Engine runs one dialogue turn per Process call.
type Engine struct {
	runnable compose.Runnable[model.Utterance, *model.WorkflowResult]
}

// Process runs the turn through the graph. It never fails: graph errors and panics
// become the apology result.
func (e *Engine) Process(ctx context.Context, u model.Utterance) (res *model.WorkflowResult) {
	if u.SessionID == "" {
		u.SessionID = uuid.NewString()
	}
	if u.ReceivedAt.IsZero() {
		u.ReceivedAt = time.Now().UTC()
	}
	u.Language = nlu.ResolveLanguage(u.Language, u.Text)

	defer func() {
		if r := recover(); r != nil {
			logx.Error().
				Str("session_id", u.SessionID).
				Interface("panic", r).
				Msg("Dialogue turn panicked")
			metrics.RecordApology()
			res = composer.Apology(u.Language)
		}
	}()

	out, err := e.runnable.Invoke(ctx, u, compose.WithCallbacks(observers.NewAllCallbacks()))
	if err != nil || out == nil {
		logx.Error().Err(err).Str("session_id", u.SessionID).Msg("Dialogue turn failed")
		metrics.RecordApology()
		return composer.Apology(u.Language)
	}
	return out
}

// BuildEngine constructs providers, workflow components and the graph.
func BuildEngine(ctx context.Context, cfg Config) (*Engine, error) {
	knowledge := model.DefaultKnowledge()
	if cfg.Knowledge != nil {
		knowledge = *cfg.Knowledge
	}

	var (
		provider  nlu.Provider
		generator composer.Generator
	)
	if cfg.APIKey != "" {
		p, err := nodes.NewProviders(ctx, nodes.ChatModelConfig{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			NLUConfig:  &cfg.NLUModel,
			RespConfig: &cfg.ResponseModel,
		})
		if err != nil {
			return nil, err
		}
		provider = p.NLU
		generator = p.Generator
		if cfg.ResponseBreaker != nil {
			generator = composer.NewBreakerGenerator(p.Generator, cfg.ResponseBreaker)
		}
	} else {
		logx.Warn().Msg("No Gemini API key configured; using local fallbacks only")
	}

	slots := nlu.NewSlotExtractor()
	opts := []nlu.ClassifierOption{nlu.WithConfidenceThreshold(cfg.NLUModel.ConfidenceThreshold)}
	if cfg.NLUBreaker != nil {
		opts = append(opts, nlu.WithBreaker(cfg.NLUBreaker))
	}
	classifier := nlu.NewClassifier(provider, nlu.NewFallbackClassifier(slots), opts...)

	comp := composer.New(generator, nlu.NewAssistant(),
		composer.WithKnowledge(knowledge),
		composer.WithTemperature(cfg.ResponseModel.Temperature),
	)

	var searcher workflow.Searcher = catalog.NewLookup(nil, 0)
	if cfg.Catalog != nil {
		searcher = cfg.Catalog
	}

	var mm *conversations.MessagesManager
	if cfg.ConversationRepo != nil {
		mm = conversations.NewMessagesManager(cfg.ConversationRepo, cfg.Conversation)
	}

	return BuildGraph(ctx, &GraphConfig{
		Classifier:      classifier,
		Slots:           slots,
		Dispatcher:      workflow.NewDispatcher(searcher, comp, cfg.Workflow),
		MessagesManager: mm,
		SessionStore:    cfg.SessionStore,
		Knowledge:       knowledge,
	})
}

// BuildGraph compiles the per-turn graph:
// InputConverter -> IntentClassifier -> SlotFiller -> WorkflowDispatcher.
func BuildGraph(ctx context.Context, config *GraphConfig) (*Engine, error) {
	if config == nil {
		return nil, fmt.Errorf("graph config is nil")
	}
	if config.Classifier == nil || config.Dispatcher == nil {
		return nil, fmt.Errorf("classifier and dispatcher are required")
	}

	g := compose.NewGraph[model.Utterance, *model.WorkflowResult](
		compose.WithGenLocalState(func(ctx context.Context) *model.TurnState {
			return &model.TurnState{}
		}),
	)

	if err := g.AddLambdaNode(nodes.NodeInputConverter,
		nodes.NewInputConverterNode(config.MessagesManager, config.SessionStore),
		compose.WithStatePreHandler(nodes.NewInputConverterPreHandler()),
	); err != nil {
		return nil, fmt.Errorf("add %s: %w", nodes.NodeInputConverter, err)
	}
	if err := g.AddLambdaNode(nodes.NodeIntentClassifier,
		nodes.NewIntentClassifierNode(config.Classifier, config.Knowledge),
	); err != nil {
		return nil, fmt.Errorf("add %s: %w", nodes.NodeIntentClassifier, err)
	}
	if err := g.AddLambdaNode(nodes.NodeSlotFiller,
		nodes.NewSlotFillerNode(config.Slots),
		compose.WithStatePostHandler(nodes.NewSlotFillerPostHandler()),
	); err != nil {
		return nil, fmt.Errorf("add %s: %w", nodes.NodeSlotFiller, err)
	}
	if err := g.AddLambdaNode(nodes.NodeWorkflowDispatcher,
		nodes.NewWorkflowDispatcherNode(config.Dispatcher),
		compose.WithStatePostHandler(nodes.NewWorkflowDispatcherPostHandler(config.MessagesManager, config.SessionStore)),
	); err != nil {
		return nil, fmt.Errorf("add %s: %w", nodes.NodeWorkflowDispatcher, err)
	}

	edges := [][2]string{
		{compose.START, nodes.NodeInputConverter},
		{nodes.NodeInputConverter, nodes.NodeIntentClassifier},
		{nodes.NodeIntentClassifier, nodes.NodeSlotFiller},
		{nodes.NodeSlotFiller, nodes.NodeWorkflowDispatcher},
		{nodes.NodeWorkflowDispatcher, compose.END},
	}
	for _, edge := range edges {
		if err := g.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s -> %s: %w", edge[0], edge[1], err)
		}
	}

	runnable, err := g.Compile(ctx, compose.WithMaxRunSteps(maxRunSteps))
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling graph")
		return nil, fmt.Errorf("error compiling graph: %w", err)
	}

	logx.Debug().Msg("Graph compiled successfully")
	return &Engine{runnable: runnable}, nil
}
