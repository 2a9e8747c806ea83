package models

import (
	"slices"
	"time"
)

// Post represents a photo post in the feed.
type Post struct {
	ID       string `json:"id"`
	OwnerID  string `json:"owner_id"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption,omitempty"`
	// LikedBy holds the ids of users who liked the post, in like order, each
	// at most once. The displayed like count is always len(LikedBy); there is
	// no separate counter to drift out of sync.
	LikedBy []string `json:"liked_by"`
	// Comments is flat, in insertion (chronological) order. Threading is
	// reconstructed at read time from ParentID links, see BuildForest.
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the post, including its comments.
func (p Post) Clone() Post {
	p.LikedBy = slices.Clone(p.LikedBy)
	comments := make([]Comment, len(p.Comments))
	for i, c := range p.Comments {
		comments[i] = c.Clone()
	}
	p.Comments = comments
	return p
}

// LikedByUser reports whether userID has liked the post.
func (p *Post) LikedByUser(userID string) bool {
	return slices.Contains(p.LikedBy, userID)
}
