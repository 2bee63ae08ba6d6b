package models

import (
	"time"
)

// Participant mirrors the users table of the OJS installation. The dashboard
// never creates these rows, it only reads and bulk-deletes them.
type Participant struct {
	ID       uint64 `gorm:"primaryKey;column:user_id"`
	Username string `gorm:"size:32;not null;unique;column:username"`
	Password string `gorm:"size:255;not null;column:password"`
	Email    string `gorm:"size:32;not null;unique;column:email"`

	URL            string `gorm:"size:2047;column:url"`
	Phone          string `gorm:"size:32;column:phone"`
	MailingAddress string `gorm:"size:255;column:mailing_address"`
	BillingAddress string `gorm:"size:255;column:billing_address"`
	Country        string `gorm:"size:90;column:country"`
	Locales        string `gorm:"size:255;not null;default:'[]';column:locales"`

	DateLastEmail  *time.Time `gorm:"column:date_last_email"`
	DateRegistered time.Time  `gorm:"not null;column:date_registered"`
	DateValidated  *time.Time `gorm:"column:date_validated"`
	DateLastLogin  *time.Time `gorm:"column:date_last_login"`

	MustChangePassword bool   `gorm:"column:must_change_password"`
	Disabled           bool   `gorm:"not null;column:disabled"`
	DisabledReason     string `gorm:"type:text;column:disabled_reason"`
	InlineHelp         bool   `gorm:"column:inline_help"`
}

func (Participant) TableName() string { return "users" }

// UserSetting is a locale-scoped key/value attribute of a participant.
// Display name and affiliation live here, not on the users table.
type UserSetting struct {
	ID           uint64 `gorm:"primaryKey;column:user_setting_id"`
	UserID       uint64 `gorm:"not null;column:user_id"`
	Locale       string `gorm:"size:14;not null;column:locale"`
	SettingName  string `gorm:"size:255;not null;column:setting_name"`
	SettingValue string `gorm:"type:text;column:setting_value"`
}

func (UserSetting) TableName() string { return "user_settings" }

// GroupSetting holds the locale-scoped attributes of a user group,
// including its display name.
type GroupSetting struct {
	ID           uint64 `gorm:"primaryKey;column:user_group_setting_id"`
	GroupID      uint64 `gorm:"not null;column:user_group_id"`
	Locale       string `gorm:"size:14;not null;column:locale"`
	SettingName  string `gorm:"size:255;not null;column:setting_name"`
	SettingValue string `gorm:"type:text;column:setting_value"`
}

func (GroupSetting) TableName() string { return "user_group_settings" }

// StageAssignment links a participant to a user group with the date the
// assignment was made. A participant may belong to many groups.
type StageAssignment struct {
	ID           uint64    `gorm:"primaryKey;column:stage_assignment_id"`
	UserID       uint64    `gorm:"not null;column:user_id"`
	GroupID      uint64    `gorm:"not null;column:user_group_id"`
	DateAssigned time.Time `gorm:"not null;column:date_assigned"`
}

func (StageAssignment) TableName() string { return "stage_assignments" }

// ReviewAssignment links a participant, as reviewer, to a review task.
// Only its existence matters to the dashboard.
type ReviewAssignment struct {
	ID         uint64 `gorm:"primaryKey;column:review_id"`
	ReviewerID uint64 `gorm:"not null;column:reviewer_id"`
}

func (ReviewAssignment) TableName() string { return "review_assignments" }
