package models

type Notification struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

type SendResponse struct {
	Token     string `json:"token"`
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SendResult is what a push sender reports for one multi-target send.
type SendResult struct {
	SuccessCount int            `json:"successCount"`
	FailureCount int            `json:"failureCount"`
	Responses    []SendResponse `json:"responses"`
	Mock         bool           `json:"mock"`
}

type SenderStatus struct {
	Initialized bool   `json:"initialized"`
	Mode        string `json:"mode"`
	Mock        bool   `json:"mock"`
}

// PushMessage is the wire format delivered to a device.
type PushMessage struct {
	MessageID    string               `json:"message_id,omitempty"`
	Notification *NotificationContent `json:"notification,omitempty"`
	Data         map[string]any       `json:"data,omitempty"`
}

type NotificationContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
