package store

import (
	"sync"

	"MindHub360/models"
)

// MemStore is the in-memory ContentStore used by tests and by deployments
// that opt out of persistence entirely.
type MemStore struct {
	mu         sync.Mutex
	accounts   []models.Account
	doctors    []models.Doctor
	session    *models.Session
	stress     []models.Exercise
	yoga       []models.Exercise
	requests   []models.TherapyRequest
	posts      []models.Post
	replies    []models.Reply
	likes      []models.PostLike
	doctorTips []string
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) GetAccounts() []models.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Account(nil), m.accounts...)
}

func (m *MemStore) SaveAccounts(accounts []models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = append([]models.Account(nil), accounts...)
	return nil
}

func (m *MemStore) GetDoctors() []models.Doctor {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Doctor(nil), m.doctors...)
}

func (m *MemStore) SaveDoctors(doctors []models.Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doctors = append([]models.Doctor(nil), doctors...)
	return nil
}

func (m *MemStore) GetSession() (models.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return models.Session{}, false
	}
	return *m.session, true
}

func (m *MemStore) SaveSession(s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &s
	return nil
}

func (m *MemStore) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

func (m *MemStore) GetStressBusters() []models.Exercise {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Exercise(nil), m.stress...)
}

func (m *MemStore) SaveStressBusters(list []models.Exercise) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stress = append([]models.Exercise(nil), list...)
	return nil
}

func (m *MemStore) GetYogaTechniques() []models.Exercise {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Exercise(nil), m.yoga...)
}

func (m *MemStore) SaveYogaTechniques(list []models.Exercise) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.yoga = append([]models.Exercise(nil), list...)
	return nil
}

func (m *MemStore) GetTherapyRequests() []models.TherapyRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.TherapyRequest(nil), m.requests...)
}

func (m *MemStore) SaveTherapyRequests(list []models.TherapyRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append([]models.TherapyRequest(nil), list...)
	return nil
}

func (m *MemStore) GetPosts() []models.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Post(nil), m.posts...)
}

func (m *MemStore) SavePosts(posts []models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append([]models.Post(nil), posts...)
	return nil
}

func (m *MemStore) GetReplies() []models.Reply {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Reply(nil), m.replies...)
}

func (m *MemStore) SaveReplies(replies []models.Reply) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append([]models.Reply(nil), replies...)
	return nil
}

func (m *MemStore) GetPostLikes() []models.PostLike {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.PostLike(nil), m.likes...)
}

func (m *MemStore) SavePostLikes(likes []models.PostLike) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.likes = append([]models.PostLike(nil), likes...)
	return nil
}

func (m *MemStore) GetDoctorTips() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.doctorTips...)
}

func (m *MemStore) SaveDoctorTips(tips []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doctorTips = append([]string(nil), tips...)
	return nil
}
