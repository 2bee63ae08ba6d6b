package services

import (
	"gorm.io/gorm"
)

// Settings are locale-scoped; the dashboard reads the English values only.
const settingLocale = "en"

func givenNames(db *gorm.DB) *gorm.DB {
	return db.Table("user_settings").
		Select("user_id, setting_value AS given_name").
		Where("setting_name = ? AND locale = ?", "givenName", settingLocale)
}

func familyNames(db *gorm.DB) *gorm.DB {
	return db.Table("user_settings").
		Select("user_id, setting_value AS family_name").
		Where("setting_name = ? AND locale = ?", "familyName", settingLocale)
}

func affiliations(db *gorm.DB) *gorm.DB {
	return db.Table("user_settings").
		Select("user_id, setting_value AS affiliation").
		Where("setting_name = ? AND locale = ?", "affiliation", settingLocale)
}

func groupDisplayNames(db *gorm.DB) *gorm.DB {
	return db.Table("user_group_settings").
		Select("user_group_id, setting_value AS name").
		Where("setting_name = ? AND locale = ?", "name", settingLocale)
}

// participantGroups aggregates the names of all groups a participant belongs
// to into one sorted, comma-joined value per participant.
func participantGroups(db *gorm.DB) *gorm.DB {
	return db.Table("stage_assignments AS sa").
		Select("sa.user_id, string_agg(DISTINCT g.name, ', ' ORDER BY g.name) AS group_names").
		Joins("LEFT JOIN (?) AS g ON g.user_group_id = sa.user_group_id", groupDisplayNames(db)).
		Group("sa.user_id")
}

func mostRecentAssignments(db *gorm.DB) *gorm.DB {
	return db.Table("stage_assignments").
		Select("user_id, MAX(date_assigned) AS date_most_recent_assignment").
		Group("user_id")
}

// ParticipantQuery is the shared base of every participant query: the users
// table with the five derived views left-joined on. Filters and sorting only
// resolve against the aliases established here, so the list, count, export
// and delete variants all have to start from this.
func ParticipantQuery(db *gorm.DB) *gorm.DB {
	return db.Table("users AS u").
		Joins("LEFT JOIN (?) AS gn ON gn.user_id = u.user_id", givenNames(db)).
		Joins("LEFT JOIN (?) AS fn ON fn.user_id = u.user_id", familyNames(db)).
		Joins("LEFT JOIN (?) AS af ON af.user_id = u.user_id", affiliations(db)).
		Joins("LEFT JOIN (?) AS ug ON ug.user_id = u.user_id", participantGroups(db)).
		Joins("LEFT JOIN (?) AS mra ON mra.user_id = u.user_id", mostRecentAssignments(db))
}
