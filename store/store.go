// Package store holds the Local Content Store: a flat name to document-list
// mapping the rest of the application reads and writes wholesale per key.
package store

import "MindHub360/models"

// Collection keys. The SSE layer broadcasts these names when a
// collection changes so clients know what to re-fetch.
const (
	KeyAccounts        = "accounts"
	KeyDoctors         = "doctors"
	KeySession         = "session"
	KeyStressBusters   = "stress_busters"
	KeyYogaTechniques  = "yoga_techniques"
	KeyTherapyRequests = "therapy_requests"
	KeyPosts           = "posts"
	KeyReplies         = "replies"
	KeyPostLikes       = "post_likes"
	KeyDoctorTips      = "doctor_tips"
)

// ContentStore is the injected repository the core components depend on.
// Reads never fail: a missing or corrupt collection is an empty one.
// Writes replace the whole collection so a read issued right after a save
// observes that save.
type ContentStore interface {
	GetAccounts() []models.Account
	SaveAccounts([]models.Account) error

	GetDoctors() []models.Doctor
	SaveDoctors([]models.Doctor) error

	GetSession() (models.Session, bool)
	SaveSession(models.Session) error
	ClearSession() error

	GetStressBusters() []models.Exercise
	SaveStressBusters([]models.Exercise) error

	GetYogaTechniques() []models.Exercise
	SaveYogaTechniques([]models.Exercise) error

	GetTherapyRequests() []models.TherapyRequest
	SaveTherapyRequests([]models.TherapyRequest) error

	GetPosts() []models.Post
	SavePosts([]models.Post) error

	GetReplies() []models.Reply
	SaveReplies([]models.Reply) error

	GetPostLikes() []models.PostLike
	SavePostLikes([]models.PostLike) error

	GetDoctorTips() []string
	SaveDoctorTips([]string) error
}
