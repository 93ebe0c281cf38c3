package models

import "time"

type Category string

const (
	CategoryClothing    Category = "clothing"
	CategoryElectronics Category = "electronics"
	CategoryDocuments   Category = "documents"
	CategoryOther       Category = "other"
)

var Categories = []Category{CategoryClothing, CategoryElectronics, CategoryDocuments, CategoryOther}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Location string

var Locations = []Location{
	"library",
	"cafeteria",
	"classroom",
	"laboratory",
	"auditorium",
	"gym",
	"parking_lot",
	"courtyard",
	"restroom",
	"other",
}

func (l Location) Valid() bool {
	for _, v := range Locations {
		if l == v {
			return true
		}
	}
	return false
}

type ItemStatus string

const (
	ItemUnclaimed    ItemStatus = "unclaimed"
	ItemPendingClaim ItemStatus = "pending_claim"
	ItemClaimed      ItemStatus = "claimed"
	ItemReturned     ItemStatus = "returned"
)

// DateLayout is the wire format of found/lost dates.
const DateLayout = "2006-01-02"

type Item struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Location    Location   `json:"location"`
	FoundDate   time.Time  `json:"foundDate"`
	PhotoPath   *string    `json:"photoPath,omitempty"`
	Status      ItemStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ReturnedAt  *time.Time `json:"returnedAt,omitempty"`
}

type ItemInput struct {
	Name        string
	Description string
	Category    string
	Location    string
	Date        string
}

// ItemFilter narrows a search over eligible items. Zero fields are ignored.
type ItemFilter struct {
	Term     string
	Category Category
	Location Location
	Date     *time.Time
}

type ReturnedItem struct {
	Item
	ClaimedBy string `json:"claimedBy"`
}
