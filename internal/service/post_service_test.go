package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/obaro89/afridev-backend/internal/domain"
	"github.com/obaro89/afridev-backend/internal/repository/memory"
)

func newPostFixture(t *testing.T) (*PostService, string, string) {
	t.Helper()
	ctx := context.Background()
	s := memory.New()
	alice, bob := uuid.NewString(), uuid.NewString()
	require.NoError(t, s.Users().Create(ctx, &domain.User{ID: alice, Name: "Alice", Email: "a@x.com", Avatar: "//a"}))
	require.NoError(t, s.Users().Create(ctx, &domain.User{ID: bob, Name: "Bob", Email: "b@x.com", Avatar: "//b"}))
	return NewPostService(s.Posts(), s.Users()), alice, bob
}

func TestPostService_CreateDenormalizesAuthor(t *testing.T) {
	ctx := context.Background()
	svc, alice, _ := newPostFixture(t)

	_, err := svc.Create(ctx, alice, "   ")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	p, err := svc.Create(ctx, alice, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, "//a", p.Avatar)
	assert.Empty(t, p.Likes)
	assert.Empty(t, p.Comments)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Text)

	_, err = svc.Get(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
	_, err = svc.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostService_DeleteRequiresOwner(t *testing.T) {
	ctx := context.Background()
	svc, alice, bob := newPostFixture(t)
	p, err := svc.Create(ctx, alice, "hello")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, bob, p.ID), domain.ErrUnauthorized)
	require.NoError(t, svc.Delete(ctx, alice, p.ID))
	assert.ErrorIs(t, svc.Delete(ctx, alice, p.ID), domain.ErrPostNotFound)
}

func TestPostService_LikeUnlike(t *testing.T) {
	ctx := context.Background()
	svc, alice, bob := newPostFixture(t)
	p, err := svc.Create(ctx, alice, "hello")
	require.NoError(t, err)

	likes, applied, err := svc.Like(ctx, bob, p.ID)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, []domain.Like{{User: bob}}, likes)

	likes, applied, err = svc.Like(ctx, bob, p.ID)
	require.NoError(t, err)
	assert.False(t, applied, "second like is a no-op")
	assert.Len(t, likes, 1)

	removed, err := svc.Unlike(ctx, bob, p.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.Unlike(ctx, bob, p.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, _, err = svc.Like(ctx, bob, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostService_Comments(t *testing.T) {
	ctx := context.Background()
	svc, alice, bob := newPostFixture(t)
	p, err := svc.Create(ctx, alice, "hello")
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, bob, p.ID, "")
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, []domain.FieldError{{Msg: "Comment is required", Param: "text"}}, de.Fields)

	comments, err := svc.AddComment(ctx, bob, p.ID, "first")
	require.NoError(t, err)
	comments, err = svc.AddComment(ctx, alice, p.ID, "second")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text, "newest first")
	assert.Equal(t, "Bob", comments[1].Name)

	bobsComment := comments[1].ID
	_, err = svc.RemoveComment(ctx, alice, p.ID, bobsComment)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.RemoveComment(ctx, bob, p.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)

	comments, err = svc.RemoveComment(ctx, bob, p.ID, bobsComment)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "second", comments[0].Text)
}

func TestPostService_ConcurrentLikesBothLand(t *testing.T) {
	ctx := context.Background()
	posts := new(MockPostStore)
	svc := NewPostService(posts, new(MockUserStore))

	id := uuid.NewString()
	before := &domain.Post{ID: id, User: "owner", Likes: []domain.Like{}, Comments: []domain.Comment{}, Version: 1}
	after := &domain.Post{ID: id, User: "owner", Likes: []domain.Like{{User: "u1"}}, Comments: []domain.Comment{}, Version: 2}

	posts.On("Get", ctx, id).Return(before, nil).Once()
	posts.On("Update", ctx, mock.Anything).Return(domain.ErrVersionConflict).Once()
	posts.On("Get", ctx, id).Return(after, nil).Once()
	posts.On("Update", ctx, mock.MatchedBy(func(p *domain.Post) bool { return p.Version == 2 })).Return(nil).Once()

	likes, applied, err := svc.Like(ctx, "u2", id)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, []domain.Like{{User: "u1"}, {User: "u2"}}, likes)
	posts.AssertExpectations(t)
}

func TestPostService_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, alice, _ := newPostFixture(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	svc.now = func() time.Time { return base }
	_, err := svc.Create(ctx, alice, "old")
	require.NoError(t, err)
	svc.now = func() time.Time { return base.Add(time.Minute) }
	_, err = svc.Create(ctx, alice, "new")
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].Text)
}
