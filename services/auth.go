package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"MindHub360/models"
	"MindHub360/role"
	"MindHub360/store"
)

// Typed auth failures. Messages are shown verbatim as form feedback, so
// they must stay specific enough to guide the next action.
var (
	ErrDuplicateEmail           = errors.New("an account with this email already exists")
	ErrInvalidDoctorEmailFormat = errors.New("doctor email must look like dr.<name>@gmail.com")
	ErrInvalidAdminCredentials  = errors.New("invalid admin credentials")
	ErrInvalidDoctorCredentials = errors.New("invalid doctor credentials")
	ErrInvalidCredentials       = errors.New("invalid credentials, use demo credentials or sign up")
)

const defaultSpecialization = "Not specified"

// Built-in demo student credentials checked before the persisted account
// list, so the app is usable on a fresh install.
var demoStudents = map[string]string{
	"student@gmail.com": "student123",
	"demo@gmail.com":    "demo123",
}

// AuthService owns the single active identity: it establishes, persists
// and restores sessions and gates doctor-roster maintenance.
type AuthService struct {
	Store store.ContentStore
	Cache *store.RosterCache
}

type SignupInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Phone          string `json:"phoneNo"`
	Role           string `json:"role"`
	StudentID      string `json:"studentId"`
	Specialization string `json:"specialization"`
}

func isDoctorSignupEmail(email string) bool {
	return strings.HasPrefix(email, "dr.") && strings.HasSuffix(email, "@gmail.com")
}

// looksLikeDoctorEmail is the looser login-time heuristic; signup enforces
// the strict prefix form above.
func looksLikeDoctorEmail(email string) bool {
	return strings.Contains(email, "dr.") && strings.HasSuffix(email, "@gmail.com")
}

func (s *AuthService) emailTaken(email string) bool {
	for _, acc := range s.Store.GetAccounts() {
		if acc.Email == email {
			return true
		}
	}
	for _, doc := range s.Store.GetDoctors() {
		if doc.Email == email {
			return true
		}
	}
	return false
}

/*
* Read the persisted session, discarding it when the identity field is
* missing. The stored role is never trusted: it is re-derived from the
* email before the session is handed back.
 */
func (s *AuthService) RestoreSession() (models.Session, bool) {
	sess, ok := s.Store.GetSession()
	if !ok {
		return models.Session{}, false
	}
	if sess.Email == "" {
		if err := s.Store.ClearSession(); err != nil {
			log.Println("failed to discard malformed session:", err)
		}
		return models.Session{}, false
	}
	reconciled := role.Derive(sess.Role, sess.Email)
	if reconciled != sess.Role {
		sess.Role = reconciled
		if err := s.Store.SaveSession(sess); err != nil {
			log.Println("failed to persist reconciled session:", err)
		}
	}
	return sess, true
}

/*
* Create a student or doctor account.
* Validation order is significant: duplicate email first, then the doctor
* email convention. The new session never includes the password.
 */
func (s *AuthService) Signup(input SignupInput) (models.Session, error) {
	if s.emailTaken(input.Email) {
		return models.Session{}, ErrDuplicateEmail
	}

	// Signup only ever creates students or doctors; an admin claim here
	// degrades to student before derivation.
	roleHint := input.Role
	if !strings.EqualFold(roleHint, role.Doctor) {
		roleHint = role.Student
	}

	now := time.Now()
	sess := models.Session{
		Name:    input.Name,
		Email:   input.Email,
		Role:    role.Derive(roleHint, input.Email),
		LoginAt: now,
	}

	switch sess.Role {
	case role.Doctor:
		if !isDoctorSignupEmail(input.Email) {
			return models.Session{}, ErrInvalidDoctorEmailFormat
		}
		specialization := input.Specialization
		if specialization == "" {
			specialization = defaultSpecialization
		}
		doctor := models.Doctor{
			ID:             uuid.NewString(),
			Name:           input.Name,
			Email:          input.Email,
			Password:       input.Password,
			Specialization: specialization,
			Active:         true,
			CreatedAt:      now,
		}
		doctors := append(s.Store.GetDoctors(), doctor)
		if err := s.Store.SaveDoctors(doctors); err != nil {
			return models.Session{}, err
		}
		s.Cache.Invalidate(context.Background())
		sess.DoctorID = doctor.ID
		sess.Specialization = doctor.Specialization
	default:
		account := models.Account{
			Name:      input.Name,
			Email:     input.Email,
			Password:  input.Password,
			StudentID: input.StudentID,
			Phone:     input.Phone,
			CreatedAt: now,
		}
		accounts := append(s.Store.GetAccounts(), account)
		if err := s.Store.SaveAccounts(accounts); err != nil {
			return models.Session{}, err
		}
		sess.StudentID = input.StudentID
		sess.Phone = input.Phone
	}

	if err := s.Store.SaveSession(sess); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

/*
* Authenticate against the role path derived from (roleHint, email).
* Admin matches the allow-listed credential pair only. Doctor-looking
* emails are checked against active doctor records; a deactivated doctor
* fails with the same error as a wrong password on purpose. Everyone else
* goes down the student path: demo credentials first, then the persisted
* account list.
 */
func (s *AuthService) Login(email, password, roleHint string) (models.Session, error) {
	derived := role.Derive(roleHint, email)
	now := time.Now()

	if derived == role.Admin {
		if email != role.AdminEmail || password != role.AdminPassword {
			return models.Session{}, ErrInvalidAdminCredentials
		}
		sess := models.Session{Name: role.AdminName, Email: email, Role: role.Admin, LoginAt: now}
		if err := s.Store.SaveSession(sess); err != nil {
			return models.Session{}, err
		}
		return sess, nil
	}

	if looksLikeDoctorEmail(email) {
		for _, doc := range s.Store.GetDoctors() {
			if doc.Email == email && doc.Password == password && doc.Active {
				sess := models.Session{
					Name:           doc.Name,
					Email:          doc.Email,
					Role:           role.Doctor,
					DoctorID:       doc.ID,
					Specialization: doc.Specialization,
					LoginAt:        now,
				}
				if err := s.Store.SaveSession(sess); err != nil {
					return models.Session{}, err
				}
				return sess, nil
			}
		}
		return models.Session{}, ErrInvalidDoctorCredentials
	}

	if demoPassword, ok := demoStudents[email]; ok && demoPassword == password {
		sess := models.Session{Name: "Demo Student", Email: email, Role: role.Student, LoginAt: now}
		if err := s.Store.SaveSession(sess); err != nil {
			return models.Session{}, err
		}
		return sess, nil
	}

	for _, acc := range s.Store.GetAccounts() {
		if acc.Email == email && acc.Password == password {
			sess := models.Session{
				Name:      acc.Name,
				Email:     acc.Email,
				Role:      role.Student,
				StudentID: acc.StudentID,
				Phone:     acc.Phone,
				LoginAt:   now,
			}
			if err := s.Store.SaveSession(sess); err != nil {
				return models.Session{}, err
			}
			return sess, nil
		}
	}
	return models.Session{}, ErrInvalidCredentials
}

func (s *AuthService) Logout() {
	if err := s.Store.ClearSession(); err != nil {
		log.Println("failed to clear session:", err)
	}
}

type DoctorInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Specialization string `json:"specialization"`
}

/*
* Admin-only roster append. Same email-format and uniqueness rules as the
* doctor branch of signup, but no session is established.
 */
func (s *AuthService) CreateDoctorAccount(input DoctorInput) (models.Doctor, error) {
	if s.emailTaken(input.Email) {
		return models.Doctor{}, ErrDuplicateEmail
	}
	if !isDoctorSignupEmail(input.Email) {
		return models.Doctor{}, ErrInvalidDoctorEmailFormat
	}
	specialization := input.Specialization
	if specialization == "" {
		specialization = defaultSpecialization
	}
	doctor := models.Doctor{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Email:          input.Email,
		Password:       input.Password,
		Specialization: specialization,
		Active:         true,
		CreatedAt:      time.Now(),
	}
	doctors := append(s.Store.GetDoctors(), doctor)
	if err := s.Store.SaveDoctors(doctors); err != nil {
		return models.Doctor{}, err
	}
	s.Cache.Invalidate(context.Background())
	return doctor.Public(), nil
}

// ToggleDoctorStatus flips the active flag for the matching doctor.
// Unknown ids are a no-op, which makes the operation idempotent.
func (s *AuthService) ToggleDoctorStatus(doctorID string, active bool) error {
	doctors := s.Store.GetDoctors()
	changed := false
	for i := range doctors {
		if doctors[i].ID == doctorID {
			doctors[i].Active = active
			changed = true
		}
	}
	if !changed {
		return nil
	}
	if err := s.Store.SaveDoctors(doctors); err != nil {
		return err
	}
	s.Cache.Invalidate(context.Background())
	return nil
}

/*
* Roster read used by admin screens, assignment and triage referral.
* Consults the redis cache for the active-only view and falls back to the
* store on a miss.
 */
func (s *AuthService) ListDoctors(activeOnly bool) []models.Doctor {
	if activeOnly {
		if cached, ok := s.Cache.GetActiveDoctors(context.Background()); ok {
			return cached
		}
	}
	var out []models.Doctor
	for _, doc := range s.Store.GetDoctors() {
		if activeOnly && !doc.Active {
			continue
		}
		out = append(out, doc.Public())
	}
	if activeOnly {
		s.Cache.SetActiveDoctors(context.Background(), out)
	}
	return out
}
