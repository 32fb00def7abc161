package models

// Post is the persistent post record. Title is unique across all posts and
// is the public lookup key; AuthorID references the owning account by ID and
// must resolve to an existing account whenever it is read back.
type Post struct {
	// ID is the stable unique identifier of the post (UUID string).
	ID string `json:"_id"`

	// Title is the unique, human-facing title of the post.
	Title string `json:"title"`

	// Content is the post body.
	Content string `json:"content"`

	// AuthorID is the ID of the account that owns this post.
	AuthorID string `json:"author"`
}

// PostWrite is the inbound payload for creating or replacing a post.
// The author is never taken from the payload; it comes from the verified
// caller identity.
type PostWrite struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostBrief is the listing representation of a post with the author resolved
// to a display name.
type PostBrief struct {
	ID     string `json:"_id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// PostRead is the full outbound representation of a post with the author
// embedded as a brief account reference.
type PostRead struct {
	ID      string       `json:"_id"`
	Title   string       `json:"title"`
	Content string       `json:"content"`
	Author  AccountBrief `json:"author"`
}

// Brief converts the post into its listing model using the resolved author.
func (p Post) Brief(author Account) PostBrief {
	return PostBrief{
		ID:     p.ID,
		Title:  p.Title,
		Author: author.Name,
	}
}

// Read converts the post into its full read model using the resolved author.
func (p Post) Read(author Account) PostRead {
	return PostRead{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Author:  author.Brief(),
	}
}

// TableName returns the name of the database table associated with Post.
func (p Post) TableName() string {
	return "posts"
}
