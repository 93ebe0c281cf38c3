package models

// SystemStats is the master dashboard summary.
type SystemStats struct {
	TotalUsers    int `json:"totalUsers"`
	Masters       int `json:"masters"`
	RegularUsers  int `json:"regularUsers"`
	Unclaimed     int `json:"unclaimed"`
	PendingClaim  int `json:"pendingClaim"`
	Claimed       int `json:"claimed"`
	Returned      int `json:"returned"`
	PendingClaims int `json:"pendingClaims"`
	LostReports   int `json:"lostReports"`
	DeadLetters   int `json:"deadLetters"`
}
