package tui

import (
	"context"
	"testing"

	"workbench/internal/database"
	"workbench/internal/models"
	"workbench/internal/testutil"
)

type MockDB struct {
	*database.Database
	notes    []models.Note
	notesErr error
}

func (m *MockDB) GetNotes(ctx context.Context) ([]models.Note, error) {
	return m.notes, m.notesErr
}

func TestTimelineUsesMockDatabase(t *testing.T) {
	ctx := context.Background()
	db := openTestRepo(t, ctx)

	mock := &MockDB{
		Database: db,
		notes: []models.Note{
			testutil.NewNote().WithID("m1").WithTitle("Mocked").OnDay(testToday).Build(),
		},
	}
	m := NewTimelineModel(ctx, mock, testToday, 100)
	m = drainTimeline(t, m, m.Init())

	if len(m.notes) != 1 || m.notes[0].Title != "Mocked" {
		t.Fatalf("expected mocked notes, got %+v", m.notes)
	}
}
