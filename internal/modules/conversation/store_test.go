package conversation

import (
	"errors"
	"testing"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()

	sess := store.Create()
	if sess.ID == "" {
		t.Fatal("session created without id")
	}
	msgs := sess.Messages()
	if len(msgs) != 1 || msgs[0].Content != Greeting {
		t.Fatalf("new session log = %+v, want only the greeting", msgs)
	}

	got, err := store.Get(sess.ID)
	if err != nil || got != sess {
		t.Fatalf("Get returned (%v, %v)", got, err)
	}

	store.Delete(sess.ID)
	if _, err := store.Get(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err after delete = %v, want ErrSessionNotFound", err)
	}
}

func TestStoreCreateUniqueIDs(t *testing.T) {
	store := NewStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := store.Create().ID
		if seen[id] {
			t.Fatalf("duplicate session id %q", id)
		}
		seen[id] = true
	}
}
