package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"MindHub360/models"
)

// FileStore persists each collection as <dir>/<key>.json. It mirrors
// browser localStorage semantics: parse failures are treated as an empty
// collection, never surfaced as errors.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

/*
* Read one collection file into out.
* Missing file or malformed JSON leaves out untouched so the caller
* keeps its zero value (the empty collection).
 */
func (f *FileStore) load(key string, out interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Println("discarding corrupt collection", key, ":", err)
	}
}

func (f *FileStore) save(key string, v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path(key), raw, 0o644)
}

func (f *FileStore) GetAccounts() []models.Account {
	var out []models.Account
	f.load(KeyAccounts, &out)
	return out
}

func (f *FileStore) SaveAccounts(accounts []models.Account) error {
	return f.save(KeyAccounts, accounts)
}

func (f *FileStore) GetDoctors() []models.Doctor {
	var out []models.Doctor
	f.load(KeyDoctors, &out)
	return out
}

func (f *FileStore) SaveDoctors(doctors []models.Doctor) error {
	return f.save(KeyDoctors, doctors)
}

func (f *FileStore) GetSession() (models.Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path(KeySession))
	if err != nil {
		return models.Session{}, false
	}
	var out models.Session
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Println("discarding corrupt session:", err)
		_ = os.Remove(f.path(KeySession))
		return models.Session{}, false
	}
	// Structurally broken records (no identity) are handed back as-is;
	// the auth layer decides to discard them.
	return out, true
}

func (f *FileStore) SaveSession(s models.Session) error {
	return f.save(KeySession, s)
}

func (f *FileStore) ClearSession() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := os.Remove(f.path(KeySession))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *FileStore) GetStressBusters() []models.Exercise {
	var out []models.Exercise
	f.load(KeyStressBusters, &out)
	return out
}

func (f *FileStore) SaveStressBusters(list []models.Exercise) error {
	return f.save(KeyStressBusters, list)
}

func (f *FileStore) GetYogaTechniques() []models.Exercise {
	var out []models.Exercise
	f.load(KeyYogaTechniques, &out)
	return out
}

func (f *FileStore) SaveYogaTechniques(list []models.Exercise) error {
	return f.save(KeyYogaTechniques, list)
}

func (f *FileStore) GetTherapyRequests() []models.TherapyRequest {
	var out []models.TherapyRequest
	f.load(KeyTherapyRequests, &out)
	return out
}

func (f *FileStore) SaveTherapyRequests(list []models.TherapyRequest) error {
	return f.save(KeyTherapyRequests, list)
}

func (f *FileStore) GetPosts() []models.Post {
	var out []models.Post
	f.load(KeyPosts, &out)
	return out
}

func (f *FileStore) SavePosts(posts []models.Post) error {
	return f.save(KeyPosts, posts)
}

func (f *FileStore) GetReplies() []models.Reply {
	var out []models.Reply
	f.load(KeyReplies, &out)
	return out
}

func (f *FileStore) SaveReplies(replies []models.Reply) error {
	return f.save(KeyReplies, replies)
}

func (f *FileStore) GetPostLikes() []models.PostLike {
	var out []models.PostLike
	f.load(KeyPostLikes, &out)
	return out
}

func (f *FileStore) SavePostLikes(likes []models.PostLike) error {
	return f.save(KeyPostLikes, likes)
}

func (f *FileStore) GetDoctorTips() []string {
	var out []string
	f.load(KeyDoctorTips, &out)
	return out
}

func (f *FileStore) SaveDoctorTips(tips []string) error {
	return f.save(KeyDoctorTips, tips)
}
