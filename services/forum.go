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
	ErrEmptyPostContent = errors.New("post content must not be empty")
	ErrPostNotFound     = errors.New("post not found")
)

// ForumService is the peer-support board: posts, replies, and one like
// per user per post. Same write discipline as therapy requests: local
// first, remote mirror best-effort, change event after.
type ForumService struct {
	Store     store.ContentStore
	Remote    *store.Remote
	Broadcast func(collection string)
}

func (s *ForumService) notify(key string) {
	if s.Broadcast != nil {
		s.Broadcast(key)
	}
}

func (s *ForumService) CreatePost(author, content string) (models.Post, error) {
	if content == "" {
		return models.Post{}, ErrEmptyPostContent
	}
	post := models.Post{
		ID:        uuid.NewString(),
		Author:    author,
		Content:   content,
		CreatedAt: time.Now(),
	}
	posts := append(s.Store.GetPosts(), post)
	if err := s.Store.SavePosts(posts); err != nil {
		return models.Post{}, err
	}
	s.Remote.MirrorPosts(context.Background(), posts)
	s.notify(store.KeyPosts)
	return post, nil
}

func (s *ForumService) postExists(postID string) bool {
	for _, p := range s.Store.GetPosts() {
		if p.ID == postID {
			return true
		}
	}
	return false
}

func (s *ForumService) AddReply(postID, author, content string) (models.Reply, error) {
	if content == "" {
		return models.Reply{}, ErrEmptyPostContent
	}
	if !s.postExists(postID) {
		return models.Reply{}, ErrPostNotFound
	}
	reply := models.Reply{
		ID:        uuid.NewString(),
		PostID:    postID,
		Author:    author,
		Content:   content,
		CreatedAt: time.Now(),
	}
	replies := append(s.Store.GetReplies(), reply)
	if err := s.Store.SaveReplies(replies); err != nil {
		return models.Reply{}, err
	}
	s.Remote.MirrorReplies(context.Background(), replies)
	s.notify(store.KeyReplies)
	return reply, nil
}

/*
* Toggle the (post, user) like. Returns whether the post ends up liked.
* Toggling twice restores the starting state, so the operation is
* idempotent per pair.
 */
func (s *ForumService) ToggleLike(postID, userEmail string) (bool, error) {
	if !s.postExists(postID) {
		return false, ErrPostNotFound
	}
	likes := s.Store.GetPostLikes()
	kept := likes[:0:0]
	removed := false
	for _, l := range likes {
		if l.PostID == postID && l.UserEmail == userEmail {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	liked := false
	if !removed {
		kept = append(kept, models.PostLike{PostID: postID, UserEmail: userEmail})
		liked = true
	}
	if err := s.Store.SavePostLikes(kept); err != nil {
		return false, err
	}
	s.Remote.MirrorPostLikes(context.Background(), kept)
	s.notify(store.KeyPostLikes)
	return liked, nil
}

// AddDoctorTip appends a free-text insight post to the doctors' tips
// feed.
func (s *ForumService) AddDoctorTip(tip string) error {
	if tip == "" {
		return ErrEmptyPostContent
	}
	tips := append(s.Store.GetDoctorTips(), tip)
	if err := s.Store.SaveDoctorTips(tips); err != nil {
		return err
	}
	s.notify(store.KeyDoctorTips)
	return nil
}

func (s *ForumService) DoctorTips() []string {
	return s.Store.GetDoctorTips()
}

// ListPosts assembles every post with its replies and like count, most
// recent post first. viewerEmail marks LikedByMe and may be empty.
func (s *ForumService) ListPosts(viewerEmail string) []models.PostView {
	replies := s.Store.GetReplies()
	likes := s.Store.GetPostLikes()

	var out []models.PostView
	posts := s.Store.GetPosts()
	for i := len(posts) - 1; i >= 0; i-- {
		post := posts[i]
		view := models.PostView{Post: post, Replies: []models.Reply{}}
		for _, r := range replies {
			if r.PostID == post.ID {
				view.Replies = append(view.Replies, r)
			}
		}
		for _, l := range likes {
			if l.PostID != post.ID {
				continue
			}
			view.LikeCount++
			if viewerEmail != "" && l.UserEmail == viewerEmail {
				view.LikedByMe = true
			}
		}
		out = append(out, view)
	}
	return out
}
