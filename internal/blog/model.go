// Package blog holds the Category, Post and Tag resources and the services
// that create, update and delete them.
package blog

// Category groups posts. Posts is only populated by detail lookups and holds
// the ID and Title of each available post in the category.
type Category struct {
	ID          int64
	Name        string
	Description string
	Posts       []Post
}

// Post belongs to at most one Category and carries any number of Tags.
// Category and Tags are references: only ID and Name are populated.
type Post struct {
	ID       int64
	Title    string
	Body     string
	Category *Category
	Tags     []Tag
}

// Tag is the inverse side of the Post-Tag relation. Posts holds references
// with only ID and Title populated.
type Tag struct {
	ID    int64
	Name  string
	Posts []Post
}

// TagIDs returns the IDs of the post's tags in order.
func (p *Post) TagIDs() []int64 {
	ids := make([]int64, 0, len(p.Tags))
	for _, t := range p.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// PostIDs returns the IDs of the tag's posts in order.
func (t *Tag) PostIDs() []int64 {
	ids := make([]int64, 0, len(t.Posts))
	for _, p := range t.Posts {
		ids = append(ids, p.ID)
	}
	return ids
}
