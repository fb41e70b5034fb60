// Package enrollment tracks which courses the user has enrolled in and
// which lessons they have completed. The full mapping is persisted as one
// named record in the local store and reloaded at startup.
package enrollment

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/edustream/edustream/internal/store"
)

// RecordName is the durable record holding the enrollment mapping.
const RecordName = "enrollments"

// Enrollment is the per-course registration record.
type Enrollment struct {
	CourseID           string    `json:"courseId"`
	Progress           int       `json:"progress"`
	CompletedLessonIDs []string  `json:"completedLessonIds"`
	EnrolledAt         time.Time `json:"enrolledAt"`
}

// Store is the in-memory enrollment mapping with write-through
// persistence. Mutations happen on the UI event loop; the durable write
// is best-effort (a failed write keeps the in-memory state authoritative
// and logs a warning).
type Store struct {
	records map[string]Enrollment
	repo    store.RecordRepo
	now     func() time.Time
}

// Open loads the enrollment mapping from repo. An absent, corrupt or
// schema-invalid record degrades to an empty mapping; it is never fatal.
func Open(ctx context.Context, repo store.RecordRepo) *Store {
	s := &Store{
		records: make(map[string]Enrollment),
		repo:    repo,
		now:     time.Now,
	}

	data, ok, err := repo.Load(ctx, RecordName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: load enrollments: %v\n", err)
		return s
	}
	if !ok {
		return s
	}

	records, err := decodeRecord(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: discarding invalid enrollment record: %v\n", err)
		return s
	}
	s.records = records
	return s
}

// Enroll creates an Enrollment for courseID if none exists. Enrolling an
// already-enrolled course is a no-op; the original record, including its
// EnrolledAt timestamp, is left untouched.
func (s *Store) Enroll(ctx context.Context, courseID string) {
	if _, ok := s.records[courseID]; ok {
		return
	}
	s.records[courseID] = Enrollment{
		CourseID:           courseID,
		Progress:           0,
		CompletedLessonIDs: []string{},
		EnrolledAt:         s.now().UTC(),
	}
	s.persist(ctx)
}

// IsEnrolled reports whether an Enrollment exists for courseID.
func (s *Store) IsEnrolled(courseID string) bool {
	_, ok := s.records[courseID]
	return ok
}

// Get returns the Enrollment for courseID, or ok=false.
func (s *Store) Get(courseID string) (Enrollment, bool) {
	e, ok := s.records[courseID]
	return e, ok
}

// CompleteLesson marks lessonID completed within courseID's enrollment.
// A no-op if the course is not enrolled or the lesson is already
// completed.
func (s *Store) CompleteLesson(ctx context.Context, courseID, lessonID string) {
	e, ok := s.records[courseID]
	if !ok {
		return
	}
	if slices.Contains(e.CompletedLessonIDs, lessonID) {
		return
	}
	e.CompletedLessonIDs = append(e.CompletedLessonIDs, lessonID)
	s.records[courseID] = e
	s.persist(ctx)
}

// IsLessonCompleted reports whether lessonID is completed within
// courseID's enrollment. Completion is derived from the enrollment
// record, never from catalog data.
func (s *Store) IsLessonCompleted(courseID, lessonID string) bool {
	e, ok := s.records[courseID]
	if !ok {
		return false
	}
	return slices.Contains(e.CompletedLessonIDs, lessonID)
}

// Len returns the number of enrollments.
func (s *Store) Len() int {
	return len(s.records)
}

// persist overwrites the durable record in full with the current mapping.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: encode enrollments: %v\n", err)
		return
	}
	if err := s.repo.Save(ctx, RecordName, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist enrollments: %v\n", err)
	}
}
