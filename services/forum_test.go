package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MindHub360/store"
)

func newForum(t *testing.T) *ForumService {
	t.Helper()
	return &ForumService{Store: store.NewMemStore()}
}

func TestForum_PostAndReply(t *testing.T) {
	s := newForum(t)

	_, err := s.CreatePost("Alice", "")
	assert.ErrorIs(t, err, ErrEmptyPostContent)

	post, err := s.CreatePost("Alice", "feeling better this week")
	require.NoError(t, err)

	_, err = s.AddReply("missing", "Bob", "glad to hear")
	assert.ErrorIs(t, err, ErrPostNotFound)

	reply, err := s.AddReply(post.ID, "Bob", "glad to hear")
	require.NoError(t, err)
	assert.Equal(t, post.ID, reply.PostID)

	views := s.ListPosts("")
	require.Len(t, views, 1)
	require.Len(t, views[0].Replies, 1)
	assert.Equal(t, "Bob", views[0].Replies[0].Author)
}

func TestForum_ToggleLikeIsIdempotentPerPair(t *testing.T) {
	s := newForum(t)
	post, err := s.CreatePost("Alice", "hello")
	require.NoError(t, err)

	liked, err := s.ToggleLike(post.ID, "bob@x.com")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = s.ToggleLike(post.ID, "bob@x.com")
	require.NoError(t, err)
	assert.False(t, liked)

	// Back where we started: zero likes.
	views := s.ListPosts("bob@x.com")
	require.Len(t, views, 1)
	assert.Zero(t, views[0].LikeCount)
	assert.False(t, views[0].LikedByMe)
}

func TestForum_LikeCountAndViewerFlag(t *testing.T) {
	s := newForum(t)
	post, err := s.CreatePost("Alice", "hello")
	require.NoError(t, err)

	_, err = s.ToggleLike(post.ID, "bob@x.com")
	require.NoError(t, err)
	_, err = s.ToggleLike(post.ID, "carol@x.com")
	require.NoError(t, err)

	views := s.ListPosts("bob@x.com")
	require.Len(t, views, 1)
	assert.Equal(t, 2, views[0].LikeCount)
	assert.True(t, views[0].LikedByMe)

	views = s.ListPosts("dave@x.com")
	assert.False(t, views[0].LikedByMe)
}

func TestForum_DoctorTips(t *testing.T) {
	s := newForum(t)

	assert.ErrorIs(t, s.AddDoctorTip(""), ErrEmptyPostContent)
	require.NoError(t, s.AddDoctorTip("short walks between study blocks help"))
	require.NoError(t, s.AddDoctorTip("keep a consistent sleep schedule"))

	tips := s.DoctorTips()
	require.Len(t, tips, 2)
	assert.Equal(t, "short walks between study blocks help", tips[0])
}

func TestForum_ListNewestFirst(t *testing.T) {
	s := newForum(t)
	_, err := s.CreatePost("Alice", "first")
	require.NoError(t, err)
	_, err = s.CreatePost("Bob", "second")
	require.NoError(t, err)

	views := s.ListPosts("")
	require.Len(t, views, 2)
	assert.Equal(t, "second", views[0].Post.Content)
	assert.Equal(t, "first", views[1].Post.Content)
}
