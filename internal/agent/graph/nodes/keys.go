package nodes

// Graph node keys.
const (
	NodeInputConverter     = "InputConverter"
	NodeIntentClassifier   = "IntentClassifier"
	NodeSlotFiller         = "SlotFiller"
	NodeWorkflowDispatcher = "WorkflowDispatcher"
)
