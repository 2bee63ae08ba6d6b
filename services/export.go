package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

var exportHeader = []string{
	"id",
	"givenName",
	"familyName",
	"email",
	"affiliation",
	"country",
	"dateRegistered",
	"dateValidated",
	"dateMostRecentAssignment",
}

// ExportCSV renders participant rows as CSV with a header row, dates in the
// same display format the table uses.
func ExportCSV(rows []ParticipantRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		rec := []string{
			strconv.FormatUint(r.ID, 10),
			orEmpty(r.GivenName),
			orEmpty(r.FamilyName),
			r.Email,
			orEmpty(r.Affiliation),
			orEmpty(r.Country),
			FormatDate(r.DateRegistered),
			FormatDate(r.DateValidated),
			FormatDate(r.DateMostRecentAssignment),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
