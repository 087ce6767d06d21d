package services

import (
	"reflect"
	"testing"
)

func TestVisibleColumnsDefaultsToEmpty(t *testing.T) {
	s := NewSettingsService(testDB(t))

	columns, err := s.VisibleColumns("nobody")
	if err != nil {
		t.Fatalf("VisibleColumns: %v", err)
	}
	if columns == nil || len(columns) != 0 {
		t.Errorf("columns = %v, want empty non-nil slice", columns)
	}
}

func TestSaveVisibleColumnsUpserts(t *testing.T) {
	s := NewSettingsService(testDB(t))

	if err := s.SaveVisibleColumns("u1", []string{"Name", "City"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	columns, err := s.VisibleColumns("u1")
	if err != nil {
		t.Fatalf("VisibleColumns: %v", err)
	}
	if !reflect.DeepEqual(columns, []string{"Name", "City"}) {
		t.Errorf("columns = %v", columns)
	}

	// Second write replaces the record; last write wins.
	if err := s.SaveVisibleColumns("u1", []string{"Phone"}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	columns, err = s.VisibleColumns("u1")
	if err != nil {
		t.Fatalf("VisibleColumns: %v", err)
	}
	if !reflect.DeepEqual(columns, []string{"Phone"}) {
		t.Errorf("columns after upsert = %v", columns)
	}
}

func TestSaveVisibleColumnsNilMeansEmpty(t *testing.T) {
	s := NewSettingsService(testDB(t))

	if err := s.SaveVisibleColumns("u1", nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	columns, err := s.VisibleColumns("u1")
	if err != nil {
		t.Fatalf("VisibleColumns: %v", err)
	}
	if columns == nil || len(columns) != 0 {
		t.Errorf("columns = %v, want empty non-nil slice", columns)
	}
}

func TestSettingsAreKeyedPerUser(t *testing.T) {
	s := NewSettingsService(testDB(t))

	if err := s.SaveVisibleColumns("u1", []string{"Name"}); err != nil {
		t.Fatalf("save u1: %v", err)
	}
	if err := s.SaveVisibleColumns("u2", []string{"City"}); err != nil {
		t.Fatalf("save u2: %v", err)
	}

	u1, _ := s.VisibleColumns("u1")
	u2, _ := s.VisibleColumns("u2")
	if !reflect.DeepEqual(u1, []string{"Name"}) || !reflect.DeepEqual(u2, []string{"City"}) {
		t.Errorf("u1 = %v, u2 = %v", u1, u2)
	}
}
