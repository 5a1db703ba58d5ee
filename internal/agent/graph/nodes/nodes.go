package nodes

import (
	"context"
	"time"

	"github.com/cloudwego/eino/compose"

	"github.com/proraahi-core/server/internal/agent/graph/conversations"
	"github.com/proraahi-core/server/internal/agent/model"
	"github.com/proraahi-core/server/internal/agent/nlu"
	"github.com/proraahi-core/server/internal/agent/workflow"
	logx "github.com/proraahi-core/server/pkg/logger"
)

// NewInputConverterPreHandler seeds the turn state from the inbound utterance.
func NewInputConverterPreHandler() func(context.Context, model.Utterance, *model.TurnState) (model.Utterance, error) {
	return func(ctx context.Context, in model.Utterance, s *model.TurnState) (model.Utterance, error) {
		s.SessionID = in.SessionID
		s.Utterance = in
		// Reset accumulated total cost for each new turn
		s.TotalCostUSD = 0
		return in, nil
	}
}

// NewInputConverterNode loads the session context, appends the user message to the
// transcript and renders the NLU context. Store failures degrade to an empty history.
func NewInputConverterNode(mm *conversations.MessagesManager, sessions model.SessionStore) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.Utterance) (model.Turn, error) {
		if sessions != nil {
			prior, err := sessions.Get(ctx, in.SessionID)
			if err != nil {
				logx.Warn().Err(err).Str("session_id", in.SessionID).Msg("Session context unavailable")
			}
			if prior != nil {
				_ = compose.ProcessState(ctx, func(_ context.Context, s *model.TurnState) error {
					s.Prior = prior
					return nil
				})
			}
		}

		turn := model.Turn{Utterance: in}
		if mm != nil {
			history, err := mm.ProcessNLUMessage(ctx, in.SessionID, in.Text)
			if err != nil {
				logx.Warn().Err(err).Str("session_id", in.SessionID).Msg("Conversation context unavailable")
			} else {
				turn.History = history
			}
		}
		return turn, nil
	})
}

// NewIntentClassifierNode wraps the classifier; it never fails.
func NewIntentClassifierNode(c *nlu.Classifier, k model.Knowledge) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, turn model.Turn) (model.IntentResult, error) {
		return c.Classify(ctx, turn, k), nil
	})
}

// NewSlotFillerNode completes the classified entities with locally extracted slots and
// continues a pending slot-gathering intent from the previous turn.
func NewSlotFillerNode(slots *nlu.SlotExtractor) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.IntentResult) (model.DispatchRequest, error) {
		var (
			prior *model.SessionContext
			u     model.Utterance
		)
		if err := compose.ProcessState(ctx, func(_ context.Context, s *model.TurnState) error {
			prior = s.Prior
			u = s.Utterance
			return nil
		}); err != nil {
			return model.DispatchRequest{}, err
		}

		return model.DispatchRequest{
			Utterance: u,
			Intent:    FillSlots(slots, prior, u.Text, in),
		}, nil
	})
}

// FillSlots applies local day extraction and the session carry-over rule to one result.
func FillSlots(slots *nlu.SlotExtractor, prior *model.SessionContext, text string, in model.IntentResult) model.IntentResult {
	entities := in.Entities.Clone()
	if slots != nil && !entities.Filled(model.SlotDuration) && !entities.Filled(model.SlotDays) {
		local := slots.Extract(text, in.PrimaryIntent)
		for _, key := range []string{model.SlotDuration, model.SlotDays} {
			if local.Filled(key) {
				entities[key] = local[key]
			}
		}
	}

	out := in.WithEntities(entities)
	if prior.AwaitingSlots() && (in.PrimaryIntent == prior.Intent || in.PrimaryIntent == model.IntentGeneralInquiry) {
		logx.Debug().
			Str("session_id", prior.SessionID).
			Str("pending_intent", string(prior.Intent)).
			Str("classified_intent", string(in.PrimaryIntent)).
			Msg("Continuing pending intent")
		out.PrimaryIntent = prior.Intent
		out.Entities = prior.Entities.Merge(entities)
	}
	return out
}

// NewSlotFillerPostHandler records the final intent on the turn state.
func NewSlotFillerPostHandler() func(context.Context, model.DispatchRequest, *model.TurnState) (model.DispatchRequest, error) {
	return func(ctx context.Context, out model.DispatchRequest, s *model.TurnState) (model.DispatchRequest, error) {
		intent := out.Intent
		s.Intent = &intent
		return out, nil
	}
}

func NewWorkflowDispatcherNode(d *workflow.Dispatcher) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, req model.DispatchRequest) (*model.WorkflowResult, error) {
		return d.Dispatch(ctx, req), nil
	})
}

// NewWorkflowDispatcherPostHandler persists the assistant response and the session
// context for the next turn. Persistence failures are logged, never surfaced.
func NewWorkflowDispatcherPostHandler(
	mm *conversations.MessagesManager,
	sessions model.SessionStore,
) func(context.Context, *model.WorkflowResult, *model.TurnState) (*model.WorkflowResult, error) {
	return func(ctx context.Context, out *model.WorkflowResult, s *model.TurnState) (*model.WorkflowResult, error) {
		if out == nil {
			return out, nil
		}
		if mm != nil {
			if err := mm.SaveResponse(ctx, s.SessionID, out.Response); err != nil {
				logx.Warn().Err(err).Str("session_id", s.SessionID).Msg("Failed to save response")
			}
		}

		if sessions != nil {
			sc := &model.SessionContext{
				SessionID: s.SessionID,
				Intent:    out.Intent,
				Stage:     out.Stage,
				Language:  out.Language,
				Turns:     1,
				UpdatedAt: time.Now().UTC(),
			}
			if s.Intent != nil {
				sc.Entities = s.Intent.Entities.Clone()
			}
			if s.Prior != nil {
				sc.Turns = s.Prior.Turns + 1
			}
			if err := sessions.Put(ctx, s.SessionID, sc); err != nil {
				logx.Warn().Err(err).Str("session_id", s.SessionID).Msg("Failed to save session context")
			}
		}

		logx.Debug().
			Str("session_id", s.SessionID).
			Str("intent", string(out.Intent)).
			Str("stage", string(out.Stage)).
			Float64("total_cost_usd", s.TotalCostUSD).
			Msg("Turn completed")
		return out, nil
	}
}
