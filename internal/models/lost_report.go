package models

import "time"

type LostReport struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      Category  `json:"category"`
	Location      Location  `json:"location"`
	LostDate      time.Time `json:"lostDate"`
	Color         string    `json:"color,omitempty"`
	Brand         string    `json:"brand,omitempty"`
	UniqueFeature string    `json:"uniqueFeature,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	ReporterName  string    `json:"reporterName,omitempty"`
}

type LostReportInput struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Location      string `json:"location"`
	Date          string `json:"date"`
	Color         string `json:"color"`
	Brand         string `json:"brand"`
	UniqueFeature string `json:"uniqueFeature"`
}
