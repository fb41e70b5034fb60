package enrollment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// memRepo is an in-memory RecordRepo for tests.
type memRepo struct {
	data    map[string][]byte
	saveErr error
	saves   int
}

func newMemRepo() *memRepo {
	return &memRepo{data: make(map[string][]byte)}
}

func (m *memRepo) Load(_ context.Context, name string) ([]byte, bool, error) {
	d, ok := m.data[name]
	return d, ok, nil
}

func (m *memRepo) Save(_ context.Context, name string, data []byte) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[name] = data
	return nil
}

func TestOpenEmptyWhenAbsent(t *testing.T) {
	s := Open(context.Background(), newMemRepo())
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d enrollments", s.Len())
	}
}

func TestEnrollCreatesOnce(t *testing.T) {
	repo := newMemRepo()
	s := Open(context.Background(), repo)
	ctx := context.Background()

	s.Enroll(ctx, "1")
	first, ok := s.Get("1")
	if !ok {
		t.Fatal("expected enrollment after Enroll")
	}
	if first.Progress != 0 || len(first.CompletedLessonIDs) != 0 {
		t.Errorf("fresh enrollment not zeroed: %+v", first)
	}

	// Enrolling again must not touch the record or the store.
	savesBefore := repo.saves
	s.Enroll(ctx, "1")
	second, _ := s.Get("1")
	if !second.EnrolledAt.Equal(first.EnrolledAt) {
		t.Errorf("EnrolledAt changed on re-enroll: %v != %v", second.EnrolledAt, first.EnrolledAt)
	}
	if repo.saves != savesBefore {
		t.Error("re-enroll performed a store mutation")
	}
	if s.Len() != 1 {
		t.Errorf("expected exactly one enrollment, got %d", s.Len())
	}
}

func TestCompleteLesson(t *testing.T) {
	s := Open(context.Background(), newMemRepo())
	ctx := context.Background()

	// Not enrolled: no-op.
	s.CompleteLesson(ctx, "1", "l1")
	if s.IsLessonCompleted("1", "l1") {
		t.Error("lesson completed without enrollment")
	}

	s.Enroll(ctx, "1")
	s.CompleteLesson(ctx, "1", "l1")
	if !s.IsLessonCompleted("1", "l1") {
		t.Error("expected lesson to be completed")
	}

	// Idempotent.
	s.CompleteLesson(ctx, "1", "l1")
	e, _ := s.Get("1")
	if len(e.CompletedLessonIDs) != 1 {
		t.Errorf("expected one completed lesson, got %v", e.CompletedLessonIDs)
	}
}

func TestPersistAndReload(t *testing.T) {
	repo := newMemRepo()
	ctx := context.Background()

	s := Open(ctx, repo)
	s.Enroll(ctx, "1")
	s.CompleteLesson(ctx, "1", "l2")

	reloaded := Open(ctx, repo)
	if !reloaded.IsEnrolled("1") {
		t.Fatal("enrollment lost across reload")
	}
	if !reloaded.IsLessonCompleted("1", "l2") {
		t.Error("completed lesson lost across reload")
	}
}

func TestCorruptRecordDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"wrong shape", `[1,2,3]`},
		{"bad progress", `{"1":{"courseId":"1","progress":"zero","completedLessonIds":[],"enrolledAt":"x"}}`},
		{"missing fields", `{"1":{"courseId":"1"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo()
			repo.data[RecordName] = []byte(tt.data)
			s := Open(context.Background(), repo)
			if s.Len() != 0 {
				t.Errorf("expected empty store for %s record", tt.name)
			}
		})
	}
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	repo := newMemRepo()
	repo.saveErr = errors.New("disk full")
	s := Open(context.Background(), repo)

	s.Enroll(context.Background(), "1")
	if !s.IsEnrolled("1") {
		t.Error("in-memory state must survive a failed durable write")
	}
}

func TestRecordIsFullOverwrite(t *testing.T) {
	repo := newMemRepo()
	ctx := context.Background()
	s := Open(ctx, repo)

	s.Enroll(ctx, "1")
	s.Enroll(ctx, "2")

	var decoded map[string]Enrollment
	if err := json.Unmarshal(repo.data[RecordName], &decoded); err != nil {
		t.Fatalf("persisted record not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Errorf("expected full mapping in record, got %d entries", len(decoded))
	}
}

func TestEnrolledAtIsSet(t *testing.T) {
	s := Open(context.Background(), newMemRepo())
	before := time.Now().Add(-time.Second)
	s.Enroll(context.Background(), "1")
	e, _ := s.Get("1")
	if e.EnrolledAt.Before(before) {
		t.Errorf("EnrolledAt not set to now: %v", e.EnrolledAt)
	}
}
