package domain

var (
	WORD_LIST_SUCCESS   = "Successfully fetched words"
	WORD_LIST_FAILED    = "Failed to fetch words"
	WORD_CREATE_SUCCESS = "Word added"
	WORD_CREATE_FAILED  = "Failed to add word"
	WORD_UPDATE_SUCCESS = "Word updated"
	WORD_UPDATE_FAILED  = "Failed to update word"
	WORD_DELETE_SUCCESS = "Word deleted"
	WORD_DELETE_FAILED  = "Failed to delete word"
	WORD_IMPORT_SUCCESS = "Words imported"
	WORD_IMPORT_FAILED  = "Failed to import words"

	REVISION_CREATE_SUCCESS = "Revision started"
	REVISION_CREATE_FAILED  = "Failed to start revision"
	REVISION_ANSWER_SUCCESS = "Answer submitted"
	REVISION_ANSWER_FAILED  = "Failed to submit answer"
	REVISION_FINISH_SUCCESS = "Revision finished"
	REVISION_FINISH_FAILED  = "Failed to finish revision"
	REVISION_GET_SUCCESS    = "Successfully fetched revision"
	REVISION_GET_FAILED     = "Failed to fetch revision"
	REVISION_LIST_SUCCESS   = "Successfully fetched revisions"
	REVISION_LIST_FAILED    = "Failed to fetch revisions"

	CHATBOT_SEND_SUCCESS          = "Message sent to chatbot"
	CHATBOT_SEND_FAILED           = "Failed to send message to chatbot"
	CHATBOT_HISTORY_SUCCESS       = "Successfully fetched chat history"
	CHATBOT_HISTORY_FAILED        = "Failed to fetch chat history"
	CHATBOT_HISTORY_CLEAR_SUCCESS = "Chat history cleared"
	CHATBOT_HISTORY_CLEAR_FAILED  = "Failed to clear chat history"
	CHATBOT_RATE_LIMITED          = "Too many messages, slow down a little"

	STATISTICS_GET_SUCCESS     = "Successfully fetched statistics"
	STATISTICS_GET_FAILED      = "Failed to fetch statistics"
	STATISTICS_PREVIEW_SUCCESS = "Statistics computed"
	STATISTICS_PREVIEW_FAILED  = "Failed to compute statistics"

	GOAL_GET_SUCCESS    = "Successfully fetched learning goals"
	GOAL_GET_FAILED     = "Failed to fetch learning goals"
	GOAL_UPDATE_SUCCESS = "Learning goals updated"
	GOAL_UPDATE_FAILED  = "Failed to update learning goals"

	PREFERENCE_GET_SUCCESS    = "Successfully fetched preferences"
	PREFERENCE_GET_FAILED     = "Failed to fetch preferences"
	PREFERENCE_UPDATE_SUCCESS = "Preferences updated"
	PREFERENCE_UPDATE_FAILED  = "Failed to update preferences"

	UNAUTHORIZED = "Unauthorized"
)
