package blog

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestRecord_MarshalJSONKeepsOrder(t *testing.T) {
	r := NewRecord(3).Set("z", 1).Set("a", "x").Set("m", nil)
	r.Set("z", 2)

	got, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"z":2,"a":"x","m":null}`; string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if v, ok := r.Get("z"); !ok || v != 2 {
		t.Errorf("Get(z) = %v, %v", v, ok)
	}
	if r.Len() != 3 {
		t.Errorf("Len = %d", r.Len())
	}
}

func TestSerializeCategory(t *testing.T) {
	c := &Category{ID: 1, Name: "Go", Description: "gophers", Posts: []Post{{ID: 4, Title: "Hi"}}}

	if got := SerializeCategory(c, false).Keys(); !slices.Equal(got, []string{"id", "name", "description"}) {
		t.Errorf("list keys = %v", got)
	}
	detail, err := json.Marshal(SerializeCategory(c, true))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"id":1,"name":"Go","description":"gophers","posts":[{"id":4,"title":"Hi"}]}`; string(detail) != want {
		t.Errorf("detail = %s", detail)
	}
}

func TestSerializePost(t *testing.T) {
	p := &Post{
		ID:       3,
		Title:    "T",
		Body:     "B",
		Category: &Category{ID: 2, Name: "News"},
		Tags:     []Tag{{ID: 5, Name: "a"}, {ID: 6, Name: "b"}},
	}

	list, err := json.Marshal(SerializePost(p, false))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"id":3,"title":"T","body":"B","category":2,"tags":[5,6]}`; string(list) != want {
		t.Errorf("list = %s", list)
	}

	detail, err := json.Marshal(SerializePost(p, true))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":3,"title":"T","body":"B","category":{"id":2,"name":"News"},"tags":[{"id":5,"name":"a"},{"id":6,"name":"b"}]}`
	if string(detail) != want {
		t.Errorf("detail = %s", detail)
	}
}

func TestSerializePost_NoRelations(t *testing.T) {
	p := &Post{ID: 1, Title: "T", Body: "B"}
	for _, includeRelations := range []bool{false, true} {
		got, err := json.Marshal(SerializePost(p, includeRelations))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if want := `{"id":1,"title":"T","body":"B","category":null,"tags":[]}`; string(got) != want {
			t.Errorf("includeRelations=%v: got %s", includeRelations, got)
		}
	}
}

func TestSerializeTag(t *testing.T) {
	tag := &Tag{ID: 9, Name: "go", Posts: []Post{{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}}}

	list, err := json.Marshal(SerializeTag(tag, false))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"id":9,"name":"go","posts":[1,2]}`; string(list) != want {
		t.Errorf("list = %s", list)
	}
	if got := SerializeTag(tag, true).Keys(); !slices.Equal(got, []string{"id", "name", "posts"}) {
		t.Errorf("detail keys = %v", got)
	}
}
