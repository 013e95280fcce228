package models

// UploadStatusAccepted is the status the upload stub reports for every
// well-formed request it receives.
const UploadStatusAccepted = "accepted"

// ChatMessageRequest is the body of POST /api/chat/messages.
type ChatMessageRequest struct {
	// Text is the user's message. Must be non-empty.
	Text string `json:"text"`
}

// ChatMessageResponse is the mock backend's reply to a chat message.
type ChatMessageResponse struct {
	// ID identifies the reply message.
	ID string `json:"id"`

	// Reply is the canned response text.
	Reply string `json:"reply"`
}

// UploadReceipt acknowledges an accepted upload. The mock backend stores
// nothing; the receipt only confirms the request was well-formed.
type UploadReceipt struct {
	// ID is the server-assigned identifier of the accepted upload.
	ID string `json:"id"`

	// Status is always "accepted" on success.
	Status string `json:"status"`
}
