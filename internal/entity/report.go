package entity

type VisitStatus string

const (
	VisitWillCome VisitStatus = "will_come"
	VisitWontCome VisitStatus = "wont_come"
	VisitThinking VisitStatus = "thinking"
	VisitNoAnswer VisitStatus = "no_answer"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusReviewed ReportStatus = "reviewed"
)

// Report is one call outcome. The ledger is append-only: reports are never
// updated or deleted once submitted.
type Report struct {
	ID             string       `json:"id"`
	OperatorID     string       `json:"operatorId"`
	OperatorName   string       `json:"operatorName"`
	BranchID       string       `json:"branchId"`
	Timestamp      string       `json:"timestamp"` // ISO-8601
	LeadID         string       `json:"leadId,omitempty"`
	ClientName     string       `json:"clientName,omitempty"`
	ClientPhone    string       `json:"clientPhone,omitempty"`
	VisitStatus    VisitStatus  `json:"visitStatus"`
	TasksCompleted string       `json:"tasksCompleted"`
	CallDuration   string       `json:"callDuration,omitempty"`
	Status         ReportStatus `json:"status"`
}
