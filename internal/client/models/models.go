// Package models defines the domain records exchanged with the GalèreBuddy
// API and the request payloads the client sends. Field layout follows the
// server's JSON; the client performs no validation beyond decoding.
package models

import "time"

// Role classifies a user account.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// User is the identity record returned by /auth/me and /users/me.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Firstname    string    `json:"firstname"`
	Name         string    `json:"name"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	Role         Role      `json:"role"`
	ImpactPoints int       `json:"impactPoints"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Tag labels a post.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PostCounts carries the aggregate counters the server pre-joins on a post.
type PostCounts struct {
	Comments  int `json:"comments"`
	Reactions int `json:"reactions"`
}

// Post is a shared war-story. Author, tags and counters arrive pre-joined;
// any of them may be absent depending on the endpoint.
type Post struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	ImageURL  string      `json:"imageUrl,omitempty"`
	Problem   string      `json:"problem"`
	Solution  string      `json:"solution,omitempty"`
	Advice    string      `json:"advice"`
	Lesson    string      `json:"lesson,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	AuthorID  string      `json:"authorId"`
	Author    *User       `json:"author,omitempty"`
	Tags      []Tag       `json:"tags,omitempty"`
	Counts    *PostCounts `json:"_count,omitempty"`
}

// Comment is a reply attached to a post.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	PostID    string    `json:"postId"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	Author    *User     `json:"author,omitempty"`
}

// ReactionKind enumerates the supported reactions.
type ReactionKind string

const (
	ReactionLike  ReactionKind = "LIKE"
	ReactionLaugh ReactionKind = "LAUGH"
	ReactionCry   ReactionKind = "CRY"
)

// Reaction is a single user reaction on a post.
type Reaction struct {
	ID        string       `json:"id"`
	PostID    string       `json:"postId"`
	UserID    string       `json:"userId"`
	React     ReactionKind `json:"react"`
	CreatedAt time.Time    `json:"createdAt"`
	User      *User        `json:"user,omitempty"`
}

// InitiativeType classifies a collaborative follow-up.
type InitiativeType string

const (
	InitiativeArticle  InitiativeType = "ARTICLE"
	InitiativeTraining InitiativeType = "TRAINING"
	InitiativeProject  InitiativeType = "PROJECT"
	InitiativeMeeting  InitiativeType = "MEETING"
	InitiativeOther    InitiativeType = "OTHER"
)

// InitiativeStatus tracks an initiative's progress.
type InitiativeStatus string

const (
	StatusProposed   InitiativeStatus = "PROPOSED"
	StatusInProgress InitiativeStatus = "IN_PROGRESS"
	StatusCompleted  InitiativeStatus = "COMPLETED"
)

// Initiative is a collaborative follow-up proposed on a post.
type Initiative struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Type         InitiativeType   `json:"type"`
	Status       InitiativeStatus `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	Deadline     *time.Time       `json:"deadline,omitempty"`
	Outcome      string           `json:"outcome,omitempty"`
	PostID       string           `json:"postId"`
	CreatorID    string           `json:"creatorId"`
	Creator      *User            `json:"creator,omitempty"`
	Participants []Participant    `json:"participants,omitempty"`
}

// Participant records a user's membership in an initiative.
type Participant struct {
	ID           string    `json:"id"`
	InitiativeID string    `json:"initiativeId"`
	UserID       string    `json:"userId"`
	JoinedAt     time.Time `json:"joinedAt"`
	User         *User     `json:"user,omitempty"`
}

// LoginRequest is the payload for POST /auth/log-in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /auth/sign-up.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// AuthResponse is what the server returns from log-in and sign-up.
// The token is an opaque bearer string; the user record is fetched
// separately from /users/me.
type AuthResponse struct {
	JWT     string `json:"jwt"`
	Message string `json:"message"`
}

// CreatePostRequest is the payload for POST /post.
type CreatePostRequest struct {
	Title    string   `json:"title"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Problem  string   `json:"problem"`
	Solution string   `json:"solution,omitempty"`
	Advice   string   `json:"advice"`
	Lesson   string   `json:"lesson,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// UpdatePostRequest is the payload for PATCH /post/{id}. Zero-valued
// fields are omitted so the server only touches what was provided.
type UpdatePostRequest struct {
	Title    string   `json:"title,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Problem  string   `json:"problem,omitempty"`
	Solution string   `json:"solution,omitempty"`
	Advice   string   `json:"advice,omitempty"`
	Lesson   string   `json:"lesson,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// CreateCommentRequest is the payload for POST /post/{id}/comments.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// CreateReactionRequest is the payload for POST /post/{id}/reactions.
type CreateReactionRequest struct {
	React  ReactionKind `json:"react"`
	UserID string       `json:"userId,omitempty"`
}

// CreateInitiativeRequest is the payload for POST /initiative.
type CreateInitiativeRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        InitiativeType `json:"type"`
	Deadline    *time.Time     `json:"deadline,omitempty"`
	PostID      string         `json:"postId"`
}

// UpdateInitiativeRequest is the payload for PATCH /initiative/{id}.
type UpdateInitiativeRequest struct {
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	Type        InitiativeType   `json:"type,omitempty"`
	Status      InitiativeStatus `json:"status,omitempty"`
	Deadline    *time.Time       `json:"deadline,omitempty"`
	Outcome     string           `json:"outcome,omitempty"`
}
