package services

import (
	"strings"
	"testing"
	"time"
)

func sptr(s string) *string       { return &s }
func tptr(t time.Time) *time.Time { return &t }

func TestIsAffiliationValid(t *testing.T) {
	tests := []struct {
		affiliation *string
		want        bool
	}{
		{sptr("University of Ljubljana"), true},
		{sptr("Comenius University in Bratislava"), true},
		{sptr("MIT"), false},
		// exact match only, no substring credit
		{sptr("University of Ljubljana, Faculty of Arts"), false},
		{sptr(""), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsAffiliationValid(tt.affiliation); got != tt.want {
			t.Errorf("IsAffiliationValid(%v) = %v, want %v", tt.affiliation, got, tt.want)
		}
	}
}

func TestIsUniversityEmail(t *testing.T) {
	tests := []struct {
		email *string
		want  bool
	}{
		{sptr("a@uni-lj.si"), true},
		{sptr("A@UNI-LJ.SI"), true},
		{sptr("x@student.uniba.sk"), true},
		{sptr("a@gmail.com"), false},
		{sptr(""), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsUniversityEmail(tt.email); got != tt.want {
			t.Errorf("IsUniversityEmail(%v) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestRowStatus(t *testing.T) {
	assigned := tptr(time.Date(2024, 3, 5, 7, 9, 0, 0, time.UTC))
	tests := []struct {
		name string
		row  ParticipantRow
		want string
	}{
		{
			"valid participant with assignment",
			ParticipantRow{
				Affiliation:              sptr("University of Ljubljana"),
				Email:                    "a@uni-lj.si",
				Country:                  sptr("Slovenia"),
				DateMostRecentAssignment: assigned,
			},
			StatusOK,
		},
		{
			"valid participant without assignment",
			ParticipantRow{
				Affiliation: sptr("University of Vienna"),
				Email:       "b@univie.ac.at",
				Country:     sptr("Austria"),
			},
			StatusNeedsAssignment,
		},
		{
			"unknown affiliation wins over everything",
			ParticipantRow{
				Affiliation:              sptr("MIT"),
				Email:                    "c@uni-lj.si",
				Country:                  sptr("Slovenia"),
				DateMostRecentAssignment: assigned,
			},
			StatusInvalid,
		},
		{
			"non-university email",
			ParticipantRow{
				Affiliation:              sptr("University of Ljubljana"),
				Email:                    "d@gmail.com",
				Country:                  sptr("Slovenia"),
				DateMostRecentAssignment: assigned,
			},
			StatusInvalid,
		},
		{
			"missing country",
			ParticipantRow{
				Affiliation:              sptr("University of Ljubljana"),
				Email:                    "e@uni-lj.si",
				Country:                  sptr(""),
				DateMostRecentAssignment: assigned,
			},
			StatusInvalid,
		},
		{
			"null country",
			ParticipantRow{
				Affiliation:              sptr("University of Ljubljana"),
				Email:                    "f@uni-lj.si",
				DateMostRecentAssignment: assigned,
			},
			StatusInvalid,
		},
	}
	for _, tt := range tests {
		if got := tt.row.RowStatus(); got != tt.want {
			t.Errorf("%s: RowStatus() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(nil); got != "" {
		t.Errorf("FormatDate(nil) = %q, want empty", got)
	}
	ts := time.Date(2024, 3, 5, 7, 9, 0, 0, time.UTC)
	if got := FormatDate(&ts); got != "5. 3. 2024 07:09" {
		t.Errorf("FormatDate = %q, want %q", got, "5. 3. 2024 07:09")
	}
}

func TestExportCSV(t *testing.T) {
	registered := time.Date(2023, 11, 2, 13, 45, 0, 0, time.UTC)
	rows := []ParticipantRow{
		{
			ID:             12,
			Email:          "ada@uni-lj.si",
			GivenName:      sptr("Ada"),
			FamilyName:     sptr("Lovelace"),
			Affiliation:    sptr("University of Ljubljana"),
			Country:        sptr("Slovenia"),
			DateRegistered: tptr(registered),
		},
		{
			ID:    34,
			Email: "anon@gmail.com",
		},
	}
	out, err := ExportCSV(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "id,givenName,familyName,email,affiliation,country,dateRegistered,dateValidated,dateMostRecentAssignment\n" +
		"12,Ada,Lovelace,ada@uni-lj.si,University of Ljubljana,Slovenia,2. 11. 2023 13:45,,\n" +
		"34,,,anon@gmail.com,,,,,\n"
	if string(out) != want {
		t.Errorf("csv output mismatch\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestExportCSVEmptyStillHasHeader(t *testing.T) {
	out, err := ExportCSV(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(out), "id,givenName,") {
		t.Errorf("missing header row: %q", out)
	}
	if strings.Count(string(out), "\n") != 1 {
		t.Errorf("expected header only, got %q", out)
	}
}
