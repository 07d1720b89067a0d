package blog

// SerializeCategory renders a category. The detail view adds the category's
// posts as {id, title} records.
func SerializeCategory(c *Category, includeRelations bool) *Record {
	r := NewRecord(4).
		Set("id", c.ID).
		Set("name", c.Name).
		Set("description", c.Description)
	if includeRelations {
		r.Set("posts", postRefs(c.Posts))
	}
	return r
}

// SerializePost renders a post. The list view carries the category ID (or
// null) and the tag IDs; the detail view expands both into records.
func SerializePost(p *Post, includeRelations bool) *Record {
	r := NewRecord(5).
		Set("id", p.ID).
		Set("title", p.Title).
		Set("body", p.Body)

	if !includeRelations {
		var category any
		if p.Category != nil {
			category = p.Category.ID
		}
		return r.Set("category", category).Set("tags", p.TagIDs())
	}

	var category any
	if p.Category != nil {
		category = NewRecord(2).Set("id", p.Category.ID).Set("name", p.Category.Name)
	}
	tags := make([]*Record, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, NewRecord(2).Set("id", t.ID).Set("name", t.Name))
	}
	return r.Set("category", category).Set("tags", tags)
}

// SerializeTag renders a tag with its post IDs, or post records in the
// detail view.
func SerializeTag(t *Tag, includeRelations bool) *Record {
	r := NewRecord(3).
		Set("id", t.ID).
		Set("name", t.Name)
	if includeRelations {
		return r.Set("posts", postRefs(t.Posts))
	}
	return r.Set("posts", t.PostIDs())
}

func postRefs(posts []Post) []*Record {
	refs := make([]*Record, 0, len(posts))
	for _, p := range posts {
		refs = append(refs, NewRecord(2).Set("id", p.ID).Set("title", p.Title))
	}
	return refs
}
