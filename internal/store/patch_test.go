package store

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func TestPersonPatch_AppliesOnlyNonNilFields(t *testing.T) {
	p := Person{ID: 7, Username: "alice", Password: "hash-a"}

	patch := PersonPatch{ID: 7, Username: strPtr("bob")}
	patch.Apply(&p)

	if p.Username != "bob" {
		t.Errorf("expected username 'bob', got %q", p.Username)
	}
	if p.Password != "hash-a" {
		t.Errorf("password must be untouched, got %q", p.Password)
	}
	if p.ID != 7 {
		t.Errorf("id must be untouched, got %d", p.ID)
	}
}

func TestRolePatch_NilNameKeepsValue(t *testing.T) {
	r := Role{ID: 1, Name: "admin"}

	RolePatch{ID: 1}.Apply(&r)
	if r.Name != "admin" {
		t.Errorf("expected name 'admin', got %q", r.Name)
	}

	RolePatch{ID: 1, Name: strPtr("moderator")}.Apply(&r)
	if r.Name != "moderator" {
		t.Errorf("expected name 'moderator', got %q", r.Name)
	}
}

func TestMessagePatch_AppliesSubset(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := Message{ID: 3, Content: "hi", Created: created, PersonID: 1, RoomID: 2}

	patch := MessagePatch{ID: 3, Content: strPtr("hello"), RoomID: int64Ptr(9)}
	patch.Apply(&m)

	if m.Content != "hello" {
		t.Errorf("expected content 'hello', got %q", m.Content)
	}
	if m.RoomID != 9 {
		t.Errorf("expected room id 9, got %d", m.RoomID)
	}
	if !m.Created.Equal(created) {
		t.Errorf("created must be untouched, got %v", m.Created)
	}
	if m.PersonID != 1 {
		t.Errorf("person id must be untouched, got %d", m.PersonID)
	}
}

func TestMessagePatch_ExplicitZeroOverwrites(t *testing.T) {
	m := Message{ID: 3, Content: "hi", PersonID: 5, RoomID: 2}

	// A boxed zero is an explicit value, not an omitted field.
	MessagePatch{ID: 3, PersonID: int64Ptr(0)}.Apply(&m)

	if m.PersonID != 0 {
		t.Errorf("expected person id overwritten to 0, got %d", m.PersonID)
	}
}
