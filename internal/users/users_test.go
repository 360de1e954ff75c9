package users

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordle/apps/go-solver/internal/database"
)

func newRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := database.OpenAndMigrate(context.Background(), filepath.Join(t.TempDir(), "users.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewRepo(db)
}

func TestValidateSignup(t *testing.T) {
	cases := []struct {
		user, pw string
		ok       bool
	}{
		{"alice", "password1", true},
		{"al", "password1", false},
		{"bad name", "password1", false},
		{"alice", "short", false},
	}
	for _, c := range cases {
		if err := ValidateSignup(c.user, c.pw); (err == nil) != c.ok {
			t.Errorf("ValidateSignup(%q, %q) = %v", c.user, c.pw, err)
		}
	}
}

func TestCreateAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	u, err := r.Create(ctx, "  Alice ", "password1")
	if err != nil {
		t.Fatal(err)
	}
	if u.Username != "Alice" || u.PasswordHash == "password1" || len(u.ID) != 22 {
		t.Fatalf("user = %+v", u)
	}
	if _, err := r.Create(ctx, "alice", "password2"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate err = %v", err)
	}

	got, err := r.Authenticate(ctx, "ALICE", "password1")
	if err != nil || got.ID != u.ID {
		t.Fatalf("Authenticate = %+v, %v", got, err)
	}
	if _, err := r.Authenticate(ctx, "alice", "wrongpass"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("wrong password err = %v", err)
	}
	if _, err := r.FindByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("FindByID err = %v", err)
	}
}

func TestCounters(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	u, err := r.Create(ctx, "bob_1", "password1")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := r.BumpStarted(ctx, u.ID); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.BumpSolved(ctx, u.ID); err != nil {
		t.Fatal(err)
	}
	got, err := r.FindByID(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.SessionsStarted != 2 || got.Solved != 1 {
		t.Fatalf("counters = %+v", got)
	}
	if err := r.ClaimAnonSessions(ctx, "", u.ID); err != nil {
		t.Fatal(err)
	}
}
