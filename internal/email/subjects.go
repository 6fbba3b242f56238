package email

const (
	SubjectComplaintRegistered = "Complaint registered"
	SubjectComplaintResolved   = "Complaint resolved"
	SubjectDisputeRegistered   = "Transaction dispute registered"
	SubjectDisputeResolved     = "Transaction dispute update"
	SubjectCardBlocked         = "Card blocked"
	SubjectEscalationAssigned  = "Support request assigned"
)
