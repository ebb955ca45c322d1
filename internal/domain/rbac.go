package domain

// EnforceRequest is the authorization question asked of the RBAC service.
type EnforceRequest struct {
	EmployeeID string
	OrgID      string
	Resource   string
	Action     string
}
