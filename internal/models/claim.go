package models

import "time"

type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimRejected ClaimStatus = "rejected"
)

type ClaimAction string

const (
	ActionApprove ClaimAction = "approve"
	ActionReject  ClaimAction = "reject"
)

func (a ClaimAction) Valid() bool {
	return a == ActionApprove || a == ActionReject
}

// Outcome returns the terminal claim status and the item status an action leads to.
func (a ClaimAction) Outcome() (ClaimStatus, ItemStatus) {
	if a == ActionApprove {
		return ClaimApproved, ItemClaimed
	}
	return ClaimRejected, ItemUnclaimed
}

type Claim struct {
	ID            int64       `json:"id"`
	ItemID        int64       `json:"itemId"`
	UserID        int64       `json:"userId"`
	Justification string      `json:"justification"`
	Status        ClaimStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	ResolvedAt    *time.Time  `json:"resolvedAt,omitempty"`
	ResolvedBy    *int64      `json:"resolvedBy,omitempty"`
}

// PendingClaim is a row of the master review queue.
type PendingClaim struct {
	Claim
	ItemName             string    `json:"itemName"`
	ItemDescription      string    `json:"itemDescription"`
	ItemCategory         Category  `json:"itemCategory"`
	ItemLocation         Location  `json:"itemLocation"`
	ItemFoundDate        time.Time `json:"itemFoundDate"`
	ItemPhotoPath        *string   `json:"itemPhotoPath,omitempty"`
	ClaimantName         string    `json:"claimantName"`
	ClaimantEmail        string    `json:"claimantEmail"`
	ClaimantRegistration string    `json:"claimantRegistrationNumber"`
}
