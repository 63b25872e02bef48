package models

import "time"

// Account is a student credential record kept in the accounts collection.
// Passwords are stored and compared verbatim to stay compatible with the
// persisted data shape; see the note in DESIGN.md before changing this.
type Account struct {
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"password,omitempty" bson:"password,omitempty"`
	StudentID string    `json:"studentId" bson:"studentId"`
	Phone     string    `json:"phoneNo" bson:"phoneNo"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
