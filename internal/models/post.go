package models

// Post is a blog or news article.
type Post struct {
	Title     *string `bson:"title" json:"title" validate:"required"`
	Slug      *string `bson:"slug" json:"slug" validate:"required"`
	Excerpt   *string `bson:"excerpt" json:"excerpt"`
	Content   *string `bson:"content" json:"content" validate:"required"`
	Image     *string `bson:"image" json:"image"`
	Published *bool   `bson:"published" json:"published" validate:"required"`
}

// NewPost returns a Post that is published unless the input says otherwise.
func NewPost() *Post {
	published := true
	return &Post{Published: &published}
}
