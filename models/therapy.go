package models

import "time"

const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

const (
	StatusPending   = "Pending"
	StatusScheduled = "Scheduled"
	StatusRejected  = "Rejected"
	StatusCompleted = "Completed"
)

// TherapyRequest is a booking request for a therapy session. DoctorName is
// empty until an admin assigns an active doctor.
type TherapyRequest struct {
	ID            string    `json:"id" bson:"id"`
	RequesterName string    `json:"requesterName" bson:"requesterName"`
	DoctorName    string    `json:"doctorName,omitempty" bson:"doctorName,omitempty"`
	Contact       string    `json:"contact" bson:"contact"`
	Attendees     int       `json:"attendees" bson:"attendees"`
	Issue         string    `json:"issue" bson:"issue"`
	Severity      string    `json:"severity" bson:"severity"`
	Slot          time.Time `json:"slot" bson:"slot"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
