package models

import (
	"slices"
	"time"
)

// Comment is a single comment on a post. A nil ParentID marks a root comment;
// otherwise ParentID names another comment on the same post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	LikedBy   []string  `json:"liked_by"`
	ParentID  *string   `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the comment.
func (c Comment) Clone() Comment {
	c.LikedBy = slices.Clone(c.LikedBy)
	if c.ParentID != nil {
		id := *c.ParentID
		c.ParentID = &id
	}
	return c
}

// LikedByUser reports whether userID has liked the comment.
func (c *Comment) LikedByUser(userID string) bool {
	return slices.Contains(c.LikedBy, userID)
}

// CommentNode is one node of the reconstructed comment tree.
type CommentNode struct {
	Comment Comment        `json:"comment"`
	Replies []*CommentNode `json:"replies"`
}

// BuildForest reconstructs the reply tree from a post's flat comment slice.
// Each node's replies are the comments whose ParentID equals its id; comments
// without a ParentID are roots. Insertion order is preserved at every level,
// so a depth-first walk yields the display order.
//
// A ParentID that names no comment in the slice (never created, or belonging
// to a different post) is tolerated by treating the orphan as a root. That is
// policy: bad references degrade to flat display instead of losing content.
func BuildForest(comments []Comment) []*CommentNode {
	nodes := make(map[string]*CommentNode, len(comments))
	for i := range comments {
		c := comments[i]
		nodes[c.ID] = &CommentNode{Comment: c, Replies: []*CommentNode{}}
	}

	var roots []*CommentNode
	for i := range comments {
		node := nodes[comments[i].ID]
		parentID := comments[i].ParentID
		if parentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*parentID]
		if !ok || *parentID == comments[i].ID {
			roots = append(roots, node)
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}
	return roots
}

// FlattenForest returns the depth-first traversal of a forest, parents before
// their replies, preserving insertion order among siblings.
func FlattenForest(roots []*CommentNode) []Comment {
	var out []Comment
	var walk func(n *CommentNode)
	walk = func(n *CommentNode) {
		out = append(out, n.Comment)
		for _, r := range n.Replies {
			walk(r)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return out
}
