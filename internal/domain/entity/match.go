package entity

// DeliveryOutcome records the result of one notification attempt. Exactly
// one outcome exists per matched buyer request within a single pipeline run.
type DeliveryOutcome struct {
	Contact   string `json:"contact"`
	Delivered bool   `json:"delivered"`
	Reason    string `json:"reason,omitempty"`
}

// NotificationSummary is what the submitter sees after a matching pass.
// Individual delivery failures are folded into FailedEmails and never
// surfaced one by one.
type NotificationSummary struct {
	Matches          int `json:"matches"`
	SuccessfulEmails int `json:"successfulEmails"`
	FailedEmails     int `json:"failedEmails"`
}
