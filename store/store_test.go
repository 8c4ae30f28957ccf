package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/andrewpaige1/flashlearn-api/config"
	"github.com/andrewpaige1/flashlearn-api/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDatabase(config.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("OpenDatabase() error: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, subject string) models.User {
	t.Helper()
	user := models.User{Subject: subject}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, ok, err := s.Get(ctx, KeyNotes); ok || err != nil {
		t.Fatalf("Get() on empty store = ok %v, err %v", ok, err)
	}
	if err := s.Set(ctx, KeyNotes, "[]"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	v, ok, err := s.Get(ctx, KeyNotes)
	if err != nil || !ok || v != "[]" {
		t.Fatalf("Get() = %q, %v, %v", v, ok, err)
	}
}

func TestGormStoreUpsertAndScope(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	alice := createUser(t, db, "auth|alice")
	bob := createUser(t, db, "auth|bob")

	as := NewGormStore(db, alice.ID)
	bs := NewGormStore(db, bob.ID)

	if err := as.Set(ctx, KeyNotes, `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := as.Set(ctx, KeyNotes, `[{"id":"2"}]`); err != nil {
		t.Fatalf("second Set() error: %v", err)
	}

	v, ok, err := as.Get(ctx, KeyNotes)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	if v != `[{"id":"2"}]` {
		t.Errorf("Get() = %q, want overwritten value", v)
	}

	var count int64
	db.Model(&models.KVEntry{}).Where("user_id = ?", alice.ID).Count(&count)
	if count != 1 {
		t.Errorf("rows for alice = %d, want 1", count)
	}

	if _, ok, _ := bs.Get(ctx, KeyNotes); ok {
		t.Error("bob can see alice's notes")
	}
}

func TestGormStoreWithoutUser(t *testing.T) {
	s := NewGormStore(openTestDB(t), 0)
	if _, _, err := s.Get(context.Background(), KeyNotes); !errors.Is(err, ErrNoUser) {
		t.Errorf("Get() error = %v, want ErrNoUser", err)
	}
	if err := s.Set(context.Background(), KeyNotes, "[]"); !errors.Is(err, ErrNoUser) {
		t.Errorf("Set() error = %v, want ErrNoUser", err)
	}
}

type failingStore struct{ key string }

func (f failingStore) Get(_ context.Context, key string) (string, bool, error) {
	if key == f.key {
		return "", false, errors.New("disk on fire")
	}
	return "", false, nil
}

func (f failingStore) Set(context.Context, string, string) error { return nil }

func TestLoadIsolatesMalformedCollection(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.Set(ctx, KeyNotes, "not json at all")
	s.Set(ctx, KeyFlashcards, `[{"id":"f1","front":"cat","back":"meow"}]`)
	s.Set(ctx, KeyQuizzes, `[{"id":"q1","title":"Animals","questions":[]}]`)

	snap := Load(ctx, s)

	if snap.Notes == nil || len(snap.Notes) != 0 {
		t.Errorf("Notes = %v, want empty non-nil slice", snap.Notes)
	}
	if len(snap.Flashcards) != 1 || snap.Flashcards[0].Front != "cat" {
		t.Errorf("Flashcards = %+v", snap.Flashcards)
	}
	if len(snap.Quizzes) != 1 || snap.Quizzes[0].Title != "Animals" {
		t.Errorf("Quizzes = %+v", snap.Quizzes)
	}
	if len(snap.Activity) != 0 {
		t.Errorf("Activity = %+v, want empty", snap.Activity)
	}
}

func TestLoadIsolatesReadError(t *testing.T) {
	snap := Load(context.Background(), failingStore{key: KeyQuizzes})
	if len(snap.Quizzes) != 0 {
		t.Errorf("Quizzes = %+v, want empty", snap.Quizzes)
	}
}

func TestLoadCollectionNullValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.Set(ctx, KeyNotes, "null")

	notes := LoadCollection[models.Note](ctx, s, KeyNotes)
	if notes == nil || len(notes) != 0 {
		t.Errorf("LoadCollection() = %v, want empty non-nil slice", notes)
	}
}

func TestSaveCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	notes := []models.Note{{ID: "n1", Title: "Cells", Content: "Mitochondria", Pinned: true}}

	if err := SaveCollection(ctx, s, KeyNotes, notes); err != nil {
		t.Fatalf("SaveCollection() error: %v", err)
	}
	got := LoadCollection[models.Note](ctx, s, KeyNotes)
	if len(got) != 1 || got[0] != notes[0] {
		t.Errorf("LoadCollection() = %+v", got)
	}

	if err := SaveCollection[models.Note](ctx, s, KeyNotes, nil); err != nil {
		t.Fatalf("SaveCollection(nil) error: %v", err)
	}
	if v, _, _ := s.Get(ctx, KeyNotes); v != "[]" {
		t.Errorf("nil collection stored as %q, want []", v)
	}
}

func TestAppendActivityPrependsAndTruncates(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < MaxActivity+3; i++ {
		entry := models.ActivityEntry{Type: models.ActivityQuiz, Title: fmt.Sprintf("entry %d", i), Date: "2026-10-17"}
		if err := AppendActivity(ctx, s, entry); err != nil {
			t.Fatalf("AppendActivity() error: %v", err)
		}
	}

	activity := LoadCollection[models.ActivityEntry](ctx, s, KeyRecentActivity)
	if len(activity) != MaxActivity {
		t.Fatalf("len(activity) = %d, want %d", len(activity), MaxActivity)
	}
	if activity[0].Title != "entry 12" {
		t.Errorf("newest entry = %q, want entry 12", activity[0].Title)
	}
	if activity[MaxActivity-1].Title != "entry 3" {
		t.Errorf("oldest kept entry = %q, want entry 3", activity[MaxActivity-1].Title)
	}
}

// flakyStore fails the next failGets reads, then behaves like its MemoryStore.
type flakyStore struct {
	*MemoryStore
	failGets int
}

func (f *flakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failGets > 0 {
		f.failGets--
		return "", false, errors.New("connection reset")
	}
	return f.MemoryStore.Get(ctx, key)
}

func TestReadCollectionReportsReadError(t *testing.T) {
	ctx := context.Background()
	s := &flakyStore{MemoryStore: NewMemoryStore(), failGets: 1}

	if _, err := ReadCollection[models.Note](ctx, s, KeyNotes); err == nil {
		t.Fatal("ReadCollection() error = nil on failed read")
	}

	s.Set(ctx, KeyNotes, "not json at all")
	notes, err := ReadCollection[models.Note](ctx, s, KeyNotes)
	if err != nil {
		t.Fatalf("ReadCollection() on malformed value error: %v", err)
	}
	if notes == nil || len(notes) != 0 {
		t.Errorf("ReadCollection() = %v, want empty non-nil slice", notes)
	}
}

func TestAppendActivityKeepsLogOnReadError(t *testing.T) {
	ctx := context.Background()
	s := &flakyStore{MemoryStore: NewMemoryStore()}

	for i := 0; i < 5; i++ {
		entry := models.ActivityEntry{Type: models.ActivityNote, Title: fmt.Sprintf("entry %d", i), Date: "2026-10-17"}
		if err := AppendActivity(ctx, s, entry); err != nil {
			t.Fatalf("AppendActivity() error: %v", err)
		}
	}

	s.failGets = 1
	if err := AppendActivity(ctx, s, models.ActivityEntry{Type: models.ActivityNote, Title: "lost"}); err == nil {
		t.Error("AppendActivity() error = nil on failed read")
	}
	if err := AppendActivity(ctx, s, models.ActivityEntry{Type: models.ActivityNote, Title: "entry 5"}); err != nil {
		t.Fatalf("AppendActivity() error: %v", err)
	}

	activity := LoadCollection[models.ActivityEntry](ctx, s, KeyRecentActivity)
	if len(activity) != 6 {
		t.Fatalf("len(activity) = %d, want 6", len(activity))
	}
	if activity[0].Title != "entry 5" || activity[5].Title != "entry 0" {
		t.Errorf("activity = %+v", activity)
	}
}
