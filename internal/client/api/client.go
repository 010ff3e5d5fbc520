package api

import (
	"context"

	"github.com/Gilles-knd/galerebuddy/internal/client/models"
)

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means the request goes out anonymous. The credentials
// repository implements this, so the token is read from persisted storage
// at call time rather than cached in the client.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client defines one method per remote operation of the GalèreBuddy API.
//
// Every method returns the decoded response body or an error; non-success
// HTTP statuses surface as *Error, transport failures wrap ErrUnavailable.
// No method retries.
type Client interface {
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	TrendingPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error

	ListComments(ctx context.Context, postID string) ([]models.Comment, error)
	AddComment(ctx context.Context, postID string, req models.CreateCommentRequest) (*models.Comment, error)
	AddReaction(ctx context.Context, postID string, req models.CreateReactionRequest) (*models.Reaction, error)

	ListInitiatives(ctx context.Context) ([]models.Initiative, error)
	GetInitiative(ctx context.Context, id string) (*models.Initiative, error)
	CreateInitiative(ctx context.Context, req models.CreateInitiativeRequest) (*models.Initiative, error)
	UpdateInitiative(ctx context.Context, id string, req models.UpdateInitiativeRequest) (*models.Initiative, error)
	JoinInitiative(ctx context.Context, id string) (*models.Participant, error)

	ListTags(ctx context.Context) ([]models.Tag, error)
}
