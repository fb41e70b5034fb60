package dashboard

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edustream/edustream/internal/auth"
	"github.com/edustream/edustream/internal/catalog"
	"github.com/edustream/edustream/internal/enrollment"
	"github.com/edustream/edustream/internal/nav"
)

type memRepo struct {
	data map[string][]byte
}

func (r *memRepo) Load(_ context.Context, name string) ([]byte, bool, error) {
	b, ok := r.data[name]
	return b, ok, nil
}

func (r *memRepo) Save(_ context.Context, name string, b []byte) error {
	r.data[name] = b
	return nil
}

func newTestDashboard() *DashboardScreen {
	enrollments := enrollment.Open(context.Background(), &memRepo{data: map[string][]byte{}})
	user := &auth.User{ID: "u1", Name: "John Doe", Points: 1250, Level: 5}
	return New(user, enrollments, catalog.Courses())
}

func TestFilterByTitleAndTag(t *testing.T) {
	d := newTestDashboard()

	if got := len(d.filtered()); got != 3 {
		t.Fatalf("expected all 3 courses with empty query, got %d", got)
	}

	d.search.SetValue("cloud")
	list := d.filtered()
	if len(list) != 1 || list[0].ID != "3" {
		t.Fatalf("expected only the cloud course, got %d results", len(list))
	}

	// Tag match, case-insensitive.
	d.search.SetValue("GO")
	list = d.filtered()
	if len(list) != 1 || list[0].ID != "3" {
		t.Fatalf("expected tag match for 'GO', got %d results", len(list))
	}

	d.search.SetValue("zzz")
	if got := len(d.filtered()); got != 0 {
		t.Fatalf("expected no matches, got %d", got)
	}
}

func TestEnterSelectsCourse(t *testing.T) {
	d := newTestDashboard()
	d.selected = 1

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	msg, ok := cmd().(nav.SelectCourseMsg)
	if !ok {
		t.Fatalf("expected nav.SelectCourseMsg, got %T", cmd())
	}
	if msg.Course.ID != "2" {
		t.Errorf("expected course 2, got %q", msg.Course.ID)
	}
}

func TestSlashEntersSearchMode(t *testing.T) {
	d := newTestDashboard()

	d.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	if !d.searching {
		t.Fatal("expected search mode")
	}

	d.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if d.searching {
		t.Fatal("escape should leave search mode")
	}
}

func TestSelectionClampedToFilteredList(t *testing.T) {
	d := newTestDashboard()
	d.selected = 2

	d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if d.selected != 2 {
		t.Errorf("selection should not move past the last course, got %d", d.selected)
	}

	d.search.SetValue("cloud")
	d.selected = 0
	d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if d.selected != 0 {
		t.Errorf("selection should clamp to the single filtered result, got %d", d.selected)
	}
}
