package entity

type LeadStatus string

const (
	LeadStatusNew    LeadStatus = "new"
	LeadStatusCalled LeadStatus = "called"
)

type ExtraField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Lead is a prospective client contact. AssignedTo empty means the lead sits
// in the general pool. Once Status is "called" the lead is out of every
// distribution query for good.
type Lead struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Surname    string       `json:"surname"`
	School     string       `json:"school"`
	Phone      string       `json:"phone"`
	Status     LeadStatus   `json:"status"`
	AssignedTo string       `json:"assignedTo,omitempty"`
	ExtraData  []ExtraField `json:"extraData,omitempty"`
}

// InPool reports whether the lead is still distributable.
func (l Lead) InPool() bool {
	return l.AssignedTo == "" && l.Status == LeadStatusNew
}
