// file: internals/features/school/classes/timetable/dto/generate_result_test.go
package dto

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateResultMerge(t *testing.T) {
	r := GenerateResult{
		BlocksInstalled: 5,
		GroupsCreated:   2,
		GroupsExisting:  1,
		Errors:          []ResultError{{Scope: "groups", Detail: "first"}},
	}
	other := GenerateResult{
		GroupsCreated:    1,
		SessionsCreated:  10,
		SessionsExisting: 4,
		Errors:           []ResultError{{Scope: "sessions", Detail: "second"}},
	}

	r.Merge(&other)

	if r.BlocksInstalled != 5 {
		t.Errorf("BlocksInstalled = %d, want 5", r.BlocksInstalled)
	}
	if r.GroupsCreated != 3 {
		t.Errorf("GroupsCreated = %d, want 3", r.GroupsCreated)
	}
	if r.GroupsExisting != 1 {
		t.Errorf("GroupsExisting = %d, want 1", r.GroupsExisting)
	}
	if r.SessionsCreated != 10 || r.SessionsExisting != 4 {
		t.Errorf("sessions = %d/%d, want 10/4", r.SessionsCreated, r.SessionsExisting)
	}
	if len(r.Errors) != 2 {
		t.Fatalf("got %d errors, want 2", len(r.Errors))
	}
	if r.Errors[0].Detail != "first" || r.Errors[1].Detail != "second" {
		t.Error("errors must concatenate in order")
	}
}

func TestGenerateResultMergeNilIsNoOp(t *testing.T) {
	r := GenerateResult{GroupsCreated: 2, Errors: []ResultError{{Scope: "a", Detail: "b"}}}
	r.Merge(nil)
	if r.GroupsCreated != 2 || len(r.Errors) != 1 {
		t.Error("Merge(nil) must leave the result untouched")
	}
}

func TestGenerateResultAddError(t *testing.T) {
	var r GenerateResult
	r.AddError("groups", "course has two teachers")
	r.AddError("sessions", "group missing")

	if len(r.Errors) != 2 {
		t.Fatalf("got %d errors, want 2", len(r.Errors))
	}
	if r.Errors[0].Scope != "groups" || r.Errors[1].Scope != "sessions" {
		t.Error("scopes not preserved in order")
	}
	if r.GroupsCreated != 0 || r.SessionsCreated != 0 {
		t.Error("AddError must not touch the counters")
	}
}

func TestInvalidInputYieldsValidationError(t *testing.T) {
	var ve *ValidationError

	_, err := NormalizeClock("nonsense")
	if !errors.As(err, &ve) {
		t.Errorf("NormalizeClock error type = %T, want *ValidationError", err)
	}

	p := TimeBlockCreateDTO{
		TimeBlockCourseID:  uuid.New(),
		TimeBlockTeacherID: uuid.New(),
		TimeBlockWeekday:   1,
		TimeBlockStartTime: "10:00",
		TimeBlockEndTime:   "09:00",
	}
	_, err = p.ToModel(uuid.New())
	if !errors.As(err, &ve) {
		t.Errorf("ToModel error type = %T, want *ValidationError", err)
	}
}
