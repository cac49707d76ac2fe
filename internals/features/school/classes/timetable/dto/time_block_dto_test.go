// file: internals/features/school/classes/timetable/dto/time_block_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
)

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"08:00", "08:00", false},
		{"8:00", "08:00", false},
		{"08:00:00", "08:00", false},
		{" 09:30 ", "09:30", false},
		{"23:59", "23:59", false},
		{"24:00", "", true},
		{"08:60", "", true},
		{"0800", "", true},
		{"", "", true},
		{"noon", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeClock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToModelNormalizesAndValidates(t *testing.T) {
	classroom := uuid.New()

	p := TimeBlockCreateDTO{
		TimeBlockCourseID:  uuid.New(),
		TimeBlockTeacherID: uuid.New(),
		TimeBlockWeekday:   1,
		TimeBlockStartTime: "8:00",
		TimeBlockEndTime:   "09:30:00",
	}
	ent, err := p.ToModel(classroom)
	if err != nil {
		t.Fatalf("ToModel() error = %v", err)
	}
	if ent.TimeBlockStartTime != "08:00" || ent.TimeBlockEndTime != "09:30" {
		t.Errorf("times not normalized: %s-%s", ent.TimeBlockStartTime, ent.TimeBlockEndTime)
	}
	if ent.TimeBlockClassroomID != classroom {
		t.Error("classroom id not assigned")
	}
	if !ent.TimeBlockIsActive {
		t.Error("new blocks must start active")
	}

	p.TimeBlockStartTime = "10:00"
	p.TimeBlockEndTime = "09:00"
	if _, err := p.ToModel(classroom); err == nil {
		t.Error("inverted range must be rejected")
	}

	p.TimeBlockStartTime = "10:00"
	p.TimeBlockEndTime = "10:00"
	if _, err := p.ToModel(classroom); err == nil {
		t.Error("zero-length block must be rejected")
	}
}

func TestApplyUpdatesKeepsRangeValid(t *testing.T) {
	classroom := uuid.New()
	base := TimeBlockCreateDTO{
		TimeBlockCourseID:  uuid.New(),
		TimeBlockTeacherID: uuid.New(),
		TimeBlockWeekday:   2,
		TimeBlockStartTime: "08:00",
		TimeBlockEndTime:   "09:00",
	}
	ent, err := base.ToModel(classroom)
	if err != nil {
		t.Fatalf("ToModel() error = %v", err)
	}

	late := "9:30"
	u := TimeBlockUpdateDTO{TimeBlockStartTime: &late}
	if err := u.ApplyUpdates(&ent); err == nil {
		t.Error("moving start past end must be rejected")
	}

	start, end := "10:00", "11:00"
	u = TimeBlockUpdateDTO{TimeBlockStartTime: &start, TimeBlockEndTime: &end}
	ent, _ = base.ToModel(classroom)
	if err := u.ApplyUpdates(&ent); err != nil {
		t.Fatalf("ApplyUpdates() error = %v", err)
	}
	if ent.TimeBlockStartTime != "10:00" || ent.TimeBlockEndTime != "11:00" {
		t.Errorf("updates not applied: %s-%s", ent.TimeBlockStartTime, ent.TimeBlockEndTime)
	}
}
