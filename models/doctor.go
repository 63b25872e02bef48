package models

import "time"

// Doctor is a therapist account and roster entry. Deactivated doctors
// (Active=false) cannot authenticate and are excluded from referral and
// assignment lists.
type Doctor struct {
	ID             string    `json:"id" bson:"id"`
	Name           string    `json:"name" bson:"name"`
	Email          string    `json:"email" bson:"email"`
	Password       string    `json:"password,omitempty" bson:"password,omitempty"`
	Specialization string    `json:"specialization" bson:"specialization"`
	Active         bool      `json:"active" bson:"active"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// Public returns a copy safe to hand to callers outside the auth layer.
func (d Doctor) Public() Doctor {
	d.Password = ""
	return d
}
