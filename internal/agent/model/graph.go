package model

// TurnState stores per-invocation state for the dialogue graph.
// Concurrency model:
//   - Registered as graph local state via compose.WithGenLocalState, one per Invoke.
//   - Read and written only inside state handlers or compose.ProcessState, which
//     Eino serializes, so no mutex is needed.
//   - Anything that must outlive the turn goes through SessionStore or the
//     conversation repository.
type TurnState struct {
	SessionID string
	Utterance Utterance
	Prior     *SessionContext // nil on the first turn of a session
	Intent    *IntentResult   // set by the slot filler post-handler

	// Accumulated generation cost (USD) for this turn.
	TotalCostUSD float64
}

// Turn is the classifier input: the utterance plus rendered conversation context.
type Turn struct {
	Utterance Utterance
	History   string
}

// DispatchRequest is the dispatcher input for one turn.
type DispatchRequest struct {
	Utterance Utterance
	Intent    IntentResult
}
