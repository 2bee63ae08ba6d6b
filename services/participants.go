package services

import (
	"strings"
	"time"

	"github.com/DavidK276/ojs-dashboard/database"
	"github.com/DavidK276/ojs-dashboard/models"

	"gorm.io/gorm"
)

// DisplayDateFormat is how all dates are rendered in the table and the export.
const DisplayDateFormat = "2. 1. 2006 15:04"

// Affiliations considered legitimate for conference participants.
var ValidUniversities = []string{
	"University of Ljubljana",
	"Comenius University Bratislava",
	"Comenius University in Bratislava",
	"University of Vienna",
	"Eötvös Loránd University",
}

// Email domains of the valid universities.
var ValidEmailDomains = []string{
	"uni-lj.si",
	"uniba.sk",
	"univie.ac.at",
	"elte.hu",
}

// Row status categories driving the row color in the UI.
const (
	StatusInvalid         = "invalid"
	StatusNeedsAssignment = "needsAssignment"
	StatusOK              = "ok"
)

// ParticipantRow is one row of the composed participant query. Pointer
// fields come from left joins or nullable columns.
type ParticipantRow struct {
	ID                       uint64 `gorm:"column:user_id"`
	Username                 string
	Email                    string
	Country                  *string
	DateRegistered           *time.Time
	DateValidated            *time.Time
	DateLastLogin            *time.Time
	GivenName                *string
	FamilyName               *string
	Affiliation              *string
	GroupNames               *string
	DateMostRecentAssignment *time.Time
	HasReviewAssignment      bool
}

const participantSelect = "u.user_id, u.username, u.email, u.country, " +
	"u.date_registered, u.date_validated, u.date_last_login, " +
	"gn.given_name, fn.family_name, af.affiliation, ug.group_names, " +
	"mra.date_most_recent_assignment, " +
	"EXISTS (SELECT 1 FROM review_assignments ra WHERE ra.reviewer_id = u.user_id) AS has_review_assignment"

// applySpec adds the filter conjunction to a participant query. Disabled
// participants are excluded from every filtered view.
func applySpec(q *gorm.DB, spec QuerySpec) *gorm.DB {
	q = q.Where("u.disabled = ?", false)
	for _, p := range spec.Predicates {
		q = q.Where(p.SQL, p.Args...)
	}
	return q
}

// ListParticipants returns one page of the filtered participant table.
func ListParticipants(spec QuerySpec) ([]ParticipantRow, error) {
	var rows []ParticipantRow
	q := applySpec(ParticipantQuery(database.DB), spec).Select(participantSelect)
	if spec.OrderExpr != "" {
		q = q.Order(spec.OrderExpr)
	}
	err := q.Limit(spec.Limit).Offset(spec.Offset).Scan(&rows).Error
	return rows, err
}

// CountParticipants returns the size of the same filtered set, unpaged.
func CountParticipants(spec QuerySpec) (int64, error) {
	var count int64
	err := applySpec(ParticipantQuery(database.DB), spec).Count(&count).Error
	return count, err
}

// ExportParticipants returns the rows for a CSV export. With selectAll the
// parsed filters apply; otherwise only the explicitly selected ids do.
func ExportParticipants(spec QuerySpec, ids []uint64, selectAll bool) ([]ParticipantRow, error) {
	q := ParticipantQuery(database.DB).Select(participantSelect)
	if selectAll {
		q = applySpec(q, spec)
	} else {
		q = q.Where("u.user_id IN ?", ids)
	}
	if spec.OrderExpr != "" {
		q = q.Order(spec.OrderExpr)
	}
	var rows []ParticipantRow
	err := q.Scan(&rows).Error
	return rows, err
}

// MatchingIDs resolves a filter spec to the matching participant ids.
func MatchingIDs(spec QuerySpec) ([]uint64, error) {
	var ids []uint64
	err := applySpec(ParticipantQuery(database.DB), spec).Pluck("u.user_id", &ids).Error
	return ids, err
}

// DeleteParticipants removes the given participants and their review
// assignments in one transaction. Already-deleted ids are a no-op.
func DeleteParticipants(ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reviewer_id IN ?", ids).Delete(&models.ReviewAssignment{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id IN ?", ids).Delete(&models.Participant{}).Error
	})
}

// AllEmails returns the addresses of every non-disabled participant.
func AllEmails() ([]string, error) {
	emails := []string{}
	err := database.DB.Model(&models.Participant{}).
		Where("disabled = ?", false).
		Pluck("email", &emails).Error
	return emails, err
}

func IsAffiliationValid(affiliation *string) bool {
	if affiliation == nil {
		return false
	}
	for _, university := range ValidUniversities {
		if *affiliation == university {
			return true
		}
	}
	return false
}

func IsUniversityEmail(email *string) bool {
	if email == nil {
		return false
	}
	lowered := strings.ToLower(*email)
	for _, domain := range ValidEmailDomains {
		if strings.HasSuffix(lowered, domain) {
			return true
		}
	}
	return false
}

// RowStatus classifies a participant row for display: suspect affiliation,
// email or missing country wins over everything, then a missing group
// assignment, then ok.
func (r ParticipantRow) RowStatus() string {
	if !IsAffiliationValid(r.Affiliation) || !IsUniversityEmail(&r.Email) || r.Country == nil || *r.Country == "" {
		return StatusInvalid
	}
	if r.DateMostRecentAssignment == nil {
		return StatusNeedsAssignment
	}
	return StatusOK
}

// FormatDate renders a nullable timestamp in the display format.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DisplayDateFormat)
}
