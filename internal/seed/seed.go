// Package seed creates the demo dataset. Seeding is always explicit: it runs
// from cmd or test setup, never as a side effect of constructing a server.
package seed

import (
	"context"

	"photofeed/internal/models"
	"photofeed/internal/store"
)

// Result reports what a seeding run created.
type Result struct {
	Users    []models.User
	Posts    []models.Post
	Comments int
}

// Demo populates the stores with two befriended users, a couple of posts and
// a short threaded comment exchange, so a fresh process has something to show.
func Demo(ctx context.Context, users store.UserStore, posts store.PostStore) (*Result, error) {
	alice := users.Create(ctx, store.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "sunflower",
		Avatar:   "https://via.placeholder.com/150",
		Bio:      "Chasing light.",
	})
	bob := users.Create(ctx, store.CreateUserInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "hunter2",
		Avatar:   "https://via.placeholder.com/150/ff6b6b",
		Bio:      "Weekend photographer.",
	})

	// Mirrored on both sides; the store keeps each side one-directional.
	users.AddFriend(ctx, alice.ID, bob.ID)
	users.AddFriend(ctx, bob.ID, alice.ID)

	first := posts.Create(ctx, store.CreatePostInput{
		OwnerID:  alice.ID,
		ImageURL: "https://via.placeholder.com/400x400",
		Caption:  "First photo! 📸",
	})
	second := posts.Create(ctx, store.CreatePostInput{
		OwnerID:  bob.ID,
		ImageURL: "https://via.placeholder.com/400x400/ff6b6b",
		Caption:  "Another great day!",
	})

	root := posts.AddComment(ctx, store.AddCommentInput{
		PostID:   first.ID,
		AuthorID: bob.ID,
		Content:  "Very cool!",
	})
	comments := 0
	if root != nil {
		comments++
		if reply := posts.AddComment(ctx, store.AddCommentInput{
			PostID:   first.ID,
			AuthorID: alice.ID,
			Content:  "Thanks!",
			ParentID: &root.ID,
		}); reply != nil {
			comments++
		}
	}

	posts.ToggleLike(ctx, first.ID, bob.ID)
	posts.ToggleLike(ctx, second.ID, alice.ID)

	return &Result{
		Users:    []models.User{alice, bob},
		Posts:    []models.Post{first, second},
		Comments: comments,
	}, nil
}
