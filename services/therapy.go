package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"MindHub360/models"
	"MindHub360/store"
)

var (
	ErrMissingRequestFields = errors.New("requester name, contact and issue are required")
	ErrInvalidSeverity      = errors.New("severity must be Low, Medium or High")
	ErrInvalidStatus        = errors.New("unknown therapy request status")
	ErrRequestNotFound      = errors.New("therapy request not found")
	ErrDoctorNotAssignable  = errors.New("doctor is unknown or deactivated")
)

// TherapyService owns the booking flow: students submit requests, admins
// assign active doctors and set the outcome, doctors complete sessions.
// Writes land locally first, then mirror to the remote service
// best-effort and broadcast a change event.
type TherapyService struct {
	Store     store.ContentStore
	Auth      *AuthService
	Remote    *store.Remote
	Broadcast func(collection string)
}

type TherapyRequestInput struct {
	RequesterName string    `json:"requesterName"`
	Contact       string    `json:"contact"`
	Attendees     int       `json:"attendees"`
	Issue         string    `json:"issue"`
	Severity      string    `json:"severity"`
	Slot          time.Time `json:"slot"`
}

func validSeverity(s string) bool {
	return s == models.SeverityLow || s == models.SeverityMedium || s == models.SeverityHigh
}

func validStatus(s string) bool {
	switch s {
	case models.StatusPending, models.StatusScheduled, models.StatusRejected, models.StatusCompleted:
		return true
	}
	return false
}

func (s *TherapyService) persist(requests []models.TherapyRequest) error {
	if err := s.Store.SaveTherapyRequests(requests); err != nil {
		return err
	}
	s.Remote.MirrorTherapyRequests(context.Background(), requests)
	if s.Broadcast != nil {
		s.Broadcast(store.KeyTherapyRequests)
	}
	return nil
}

func (s *TherapyService) Submit(input TherapyRequestInput) (models.TherapyRequest, error) {
	if input.RequesterName == "" || input.Contact == "" || input.Issue == "" {
		return models.TherapyRequest{}, ErrMissingRequestFields
	}
	if !validSeverity(input.Severity) {
		return models.TherapyRequest{}, ErrInvalidSeverity
	}
	attendees := input.Attendees
	if attendees < 1 {
		attendees = 1
	}
	request := models.TherapyRequest{
		ID:            uuid.NewString(),
		RequesterName: input.RequesterName,
		Contact:       input.Contact,
		Attendees:     attendees,
		Issue:         input.Issue,
		Severity:      input.Severity,
		Slot:          input.Slot,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
	}
	requests := append(s.Store.GetTherapyRequests(), request)
	if err := s.persist(requests); err != nil {
		return models.TherapyRequest{}, err
	}
	return request, nil
}

/*
* Assign an active doctor and move the request to Scheduled. Unknown or
* deactivated doctors are rejected so nothing gets booked with someone
* who cannot see patients.
 */
func (s *TherapyService) Assign(requestID, doctorName string) error {
	assignable := false
	for _, doc := range s.Auth.ListDoctors(true) {
		if doc.Name == doctorName {
			assignable = true
			break
		}
	}
	if !assignable {
		return ErrDoctorNotAssignable
	}

	requests := s.Store.GetTherapyRequests()
	for i := range requests {
		if requests[i].ID == requestID {
			requests[i].DoctorName = doctorName
			requests[i].Status = models.StatusScheduled
			return s.persist(requests)
		}
	}
	return ErrRequestNotFound
}

func (s *TherapyService) UpdateStatus(requestID, status string) error {
	if !validStatus(status) {
		return ErrInvalidStatus
	}
	requests := s.Store.GetTherapyRequests()
	for i := range requests {
		if requests[i].ID == requestID {
			requests[i].Status = status
			return s.persist(requests)
		}
	}
	return ErrRequestNotFound
}

func (s *TherapyService) ListAll() []models.TherapyRequest {
	return s.Store.GetTherapyRequests()
}

func (s *TherapyService) ListForDoctor(doctorName string) []models.TherapyRequest {
	var out []models.TherapyRequest
	for _, req := range s.Store.GetTherapyRequests() {
		if req.DoctorName == doctorName {
			out = append(out, req)
		}
	}
	return out
}

func (s *TherapyService) ListForRequester(requesterName string) []models.TherapyRequest {
	var out []models.TherapyRequest
	for _, req := range s.Store.GetTherapyRequests() {
		if req.RequesterName == requesterName {
			out = append(out, req)
		}
	}
	return out
}
