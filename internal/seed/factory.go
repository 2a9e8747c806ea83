package seed

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"photofeed/internal/models"
	"photofeed/internal/store"
)

// Factory builds filler records with generated content, padding the demo
// dataset beyond the fixed starter pair so lists and feeds have some volume.
type Factory struct {
	faker *gofakeit.Faker
	users store.UserStore
	posts store.PostStore
}

// NewFactory returns a Factory over the given stores. The same seed yields the
// same generated content, so a demo process looks identical across restarts.
func NewFactory(users store.UserStore, posts store.PostStore, seed int64) *Factory {
	return &Factory{
		faker: gofakeit.New(seed),
		users: users,
		posts: posts,
	}
}

// CreateUser persists one generated user.
func (f *Factory) CreateUser(ctx context.Context) models.User {
	return f.users.Create(ctx, store.CreateUserInput{
		Username: fmt.Sprintf("%s%d", f.faker.Username(), f.faker.Number(100, 999)),
		Email:    f.faker.Email(),
		Password: "password123",
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", f.faker.UUID()),
		Bio:      f.faker.Sentence(10),
	})
}

// CreatePost persists one generated post for the owner.
func (f *Factory) CreatePost(ctx context.Context, ownerID string) models.Post {
	return f.posts.Create(ctx, store.CreatePostInput{
		OwnerID:  ownerID,
		ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/800/800", f.faker.UUID()),
		Caption:  f.faker.Sentence(5),
	})
}

// Fill creates n filler users, one generated post each. Consecutive users are
// befriended (mirrored on both sides) and each post after the first gets a
// like and a comment from the previous user, so the filler data exercises the
// same relations the starter pair does.
func (f *Factory) Fill(ctx context.Context, n int) (*Result, error) {
	result := &Result{}
	var prev *models.User
	for i := 0; i < n; i++ {
		user := f.CreateUser(ctx)
		result.Users = append(result.Users, user)

		post := f.CreatePost(ctx, user.ID)
		result.Posts = append(result.Posts, post)

		if prev != nil {
			f.users.AddFriend(ctx, prev.ID, user.ID)
			f.users.AddFriend(ctx, user.ID, prev.ID)

			f.posts.ToggleLike(ctx, post.ID, prev.ID)
			if c := f.posts.AddComment(ctx, store.AddCommentInput{
				PostID:   post.ID,
				AuthorID: prev.ID,
				Content:  f.faker.Sentence(8),
			}); c != nil {
				result.Comments++
			}
		}
		prev = &user
	}
	return result, nil
}
