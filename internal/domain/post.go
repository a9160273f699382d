package domain

import "time"

type Like struct {
	User string `json:"user"`
}

type Comment struct {
	ID        string    `json:"_id"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// Post Invariants:
// 1. Likes: at most one Like per user, kept in like order.
// 2. Comments: ids unique within the post, newest first.
// 3. Name/Avatar are copied from the author at creation and never re-synced.
// 4. Only the owner may delete the post; only a comment's author may delete it.
type Post struct {
	ID        string    `json:"_id"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"date"`
	Version   int64     `json:"-"`
}

// ValidateText rejects blank post or comment bodies.
func ValidateText(text, msg string) error {
	var c Checker
	c.Required("text", text, msg)
	return c.Err()
}

// NewPost denormalizes the author's current name and avatar into the post.
func NewPost(id string, author *User, text string, now time.Time) *Post {
	return &Post{
		ID:        id,
		User:      author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		Likes:     []Like{},
		Comments:  []Comment{},
		CreatedAt: now,
	}
}

// CanDelete reports whether userID owns the post.
func (p *Post) CanDelete(userID string) error {
	if p.User != userID {
		return ErrUnauthorized
	}
	return nil
}

func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.User == userID {
			return true
		}
	}
	return false
}

// Like appends userID unless it already liked the post. It returns false on
// the no-op path.
func (p *Post) Like(userID string) bool {
	if p.LikedBy(userID) {
		return false
	}
	p.Likes = append(p.Likes, Like{User: userID})
	return true
}

// Unlike removes the first like by userID. It returns false when absent.
func (p *Post) Unlike(userID string) bool {
	for i, l := range p.Likes {
		if l.User == userID {
			p.Likes = append(p.Likes[:i:i], p.Likes[i+1:]...)
			return true
		}
	}
	return false
}

// AddComment inserts c at the front. c.ID must already be set.
func (p *Post) AddComment(c Comment) {
	p.Comments = append([]Comment{c}, p.Comments...)
}

// RemoveComment deletes comment id when userID wrote it.
func (p *Post) RemoveComment(id, userID string) error {
	idx := -1
	for i, c := range p.Comments {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrCommentNotFound
	}
	if p.Comments[idx].User != userID {
		return ErrUnauthorized
	}
	p.Comments = append(p.Comments[:idx:idx], p.Comments[idx+1:]...)
	return nil
}

// NewComment copies the commenter's current name and avatar.
func NewComment(id string, author *User, text string, now time.Time) Comment {
	return Comment{
		ID:        id,
		User:      author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: now,
	}
}
