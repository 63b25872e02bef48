package models

import "time"

// Session is the currently authenticated identity. At most one exists per
// running client; it never carries a password.
type Session struct {
	Name           string    `json:"name" bson:"name"`
	Email          string    `json:"email" bson:"email"`
	Role           string    `json:"role" bson:"role"`
	StudentID      string    `json:"studentId,omitempty" bson:"studentId,omitempty"`
	Phone          string    `json:"phoneNo,omitempty" bson:"phoneNo,omitempty"`
	DoctorID       string    `json:"doctorId,omitempty" bson:"doctorId,omitempty"`
	Specialization string    `json:"specialization,omitempty" bson:"specialization,omitempty"`
	LoginAt        time.Time `json:"loginAt" bson:"loginAt"`
}
