package models

type AnalysisResponse struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	Result       *string `json:"result,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
}

func NewAnalysisResponse(id string, state RequestState) AnalysisResponse {
	response := AnalysisResponse{
		ID:     id,
		Status: string(state.Status),
	}

	switch state.Status {
	case StatusReady:
		response.Result = &state.Payload
	case StatusFailed:
		response.ErrorMessage = &state.Reason
	}

	return response
}

type CreateChatSessionResponse struct {
	ID       string `json:"id"`
	Greeting string `json:"greeting"`
}

type SendMessageRequest struct {
	Text    string `json:"text"`
	Context string `json:"context,omitempty"`
}

type ChatLogResponse struct {
	ID            string     `json:"id"`
	AwaitingReply bool       `json:"awaiting_reply"`
	Messages      []ChatTurn `json:"messages"`
}

type SearchSuggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}
