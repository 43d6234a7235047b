package store

// Well-known KV keys. The session machine is the sole writer of the
// timer and candidate keys; UI surfaces own the rest.
const (
	KeySessionState      = "sessionState"
	KeyUserProfile       = "userProfile"
	KeyPendingBreak      = "pendingBreak"
	KeyPendingCandidates = "pendingBreakCandidates"
	KeyLastWorkEnd       = "lastWorkEndTs"
	KeyTodos             = "todos"
	KeyQuickEdits        = "quickEdits"
	KeyDailyQuote        = "dailyQuote"
	KeyTimerDescription  = "timerDescription"

	// Selection-session keys. The current pointer names the live session;
	// everything else is namespaced under PrefixSelection + session id.
	KeyCurrentSelection = "selection:current"
	PrefixSelection     = "selection:"
)
