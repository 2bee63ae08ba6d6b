package controllers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/DavidK276/ojs-dashboard/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionStore is set from main and keeps the operator's last search so the
// table can be reopened with the same filters.
var SessionStore *session.Store

const lastSearchKey = "lastSearch"

// ParticipantsPage returns the dashboard page (pages/participants/index.html)
func ParticipantsPage(c *fiber.Ctx) error {
	return services.Render(c, "participants/index.html", fiber.Map{
		"path": c.Path(),
	})
}

// ParticipantList returns one page of the filtered participant table, the
// total count of the same filtered set and all non-disabled emails.
func ParticipantList(c *fiber.Ctx) error {
	params := url.Values{}
	for key, value := range c.Queries() {
		params.Set(key, value)
	}

	spec, err := services.ParseSearchParams(params)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	rows, err := services.ListParticipants(spec)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to load participants"})
	}
	count, err := services.CountParticipants(spec)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to count participants"})
	}
	emails, err := services.AllEmails()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to load emails"})
	}

	saveLastSearch(c)

	type UserItem struct {
		ID                       uint64 `json:"id"`
		Username                 string `json:"username"`
		GivenName                string `json:"givenName"`
		FamilyName               string `json:"familyName"`
		Email                    string `json:"email"`
		Affiliation              string `json:"affiliation"`
		Country                  string `json:"country"`
		Groups                   string `json:"groups"`
		DateRegistered           string `json:"dateRegistered"`
		DateValidated            string `json:"dateValidated"`
		DateLastLogin            string `json:"dateLastLogin"`
		DateMostRecentAssignment string `json:"dateMostRecentAssignment"`
		HasReviewAssignment      bool   `json:"hasReviewAssignment"`
		Status                   string `json:"status"`
	}

	list := make([]UserItem, 0, len(rows))
	for _, r := range rows {
		list = append(list, UserItem{
			ID:                       r.ID,
			Username:                 r.Username,
			GivenName:                strOrEmpty(r.GivenName),
			FamilyName:               strOrEmpty(r.FamilyName),
			Email:                    r.Email,
			Affiliation:              strOrEmpty(r.Affiliation),
			Country:                  strOrEmpty(r.Country),
			Groups:                   strOrEmpty(r.GroupNames),
			DateRegistered:           services.FormatDate(r.DateRegistered),
			DateValidated:            services.FormatDate(r.DateValidated),
			DateLastLogin:            services.FormatDate(r.DateLastLogin),
			DateMostRecentAssignment: services.FormatDate(r.DateMostRecentAssignment),
			HasReviewAssignment:      r.HasReviewAssignment,
			Status:                   r.RowStatus(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"users":   list,
		"count":   count,
		"emails":  emails,
	})
}

// ParticipantEmails returns all non-disabled participant emails, unfiltered.
func ParticipantEmails(c *fiber.Ctx) error {
	emails, err := services.AllEmails()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to load emails"})
	}
	return c.JSON(fiber.Map{"emails": emails})
}

// ExportParticipants renders the selected participants as CSV. Selection is
// either selectAll=1 with the serialized search parameters, or an explicit
// comma-separated id list.
func ExportParticipants(c *fiber.Ctx) error {
	spec, ids, selectAll, err := selectionFromForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	rows, err := services.ExportParticipants(spec, ids, selectAll)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "export query failed"})
	}
	csvBytes, err := services.ExportCSV(rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "csv serialization failed"})
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="participants.csv"`)
	c.Type("csv")
	return c.Send(csvBytes)
}

// DeleteParticipants removes the selected participants together with their
// review assignments. Deleting already-deleted ids is a no-op.
func DeleteParticipants(c *fiber.Ctx) error {
	spec, ids, selectAll, err := selectionFromForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if selectAll {
		ids, err = services.MatchingIDs(spec)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to resolve matching participants"})
		}
	}
	if err := services.DeleteParticipants(ids); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "deleted": len(ids)})
}

// RestoreSearch reopens the participant table with the operator's last
// saved search parameters.
func RestoreSearch(c *fiber.Ctx) error {
	if SessionStore != nil {
		if sess, err := SessionStore.Get(c); err == nil {
			if saved, ok := sess.Get(lastSearchKey).(string); ok && saved != "" {
				return c.Redirect("/participants?" + saved)
			}
		}
	}
	return c.Redirect("/participants")
}

// selectionFromForm reads the two selection modes shared by export and
// delete. With selectAll the search parameters are re-parsed exactly like
// the list path parses them, so the selection matches what the table shows.
func selectionFromForm(c *fiber.Ctx) (services.QuerySpec, []uint64, bool, error) {
	var spec services.QuerySpec

	if c.FormValue("selectAll") == "1" {
		params, err := url.ParseQuery(c.FormValue("searchParams"))
		if err != nil {
			return spec, nil, false, err
		}
		spec, err = services.ParseSearchParams(params)
		if err != nil {
			return spec, nil, false, err
		}
		return spec, nil, true, nil
	}

	raw := c.FormValue("userIds")
	if raw == "" {
		return spec, nil, false, fiber.NewError(fiber.StatusBadRequest, "userIds is required")
	}
	// keep the table's sort order for explicit selections too
	if search := c.FormValue("searchParams"); search != "" {
		if params, err := url.ParseQuery(search); err == nil {
			if parsed, err := services.ParseSearchParams(params); err == nil {
				spec.OrderExpr = parsed.OrderExpr
			}
		}
	}
	var ids []uint64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return spec, nil, false, err
		}
		ids = append(ids, id)
	}
	return spec, ids, false, nil
}

func saveLastSearch(c *fiber.Ctx) {
	if SessionStore == nil {
		return
	}
	query := string(c.Request().URI().QueryString())
	if query == "" {
		return
	}
	sess, err := SessionStore.Get(c)
	if err != nil {
		return
	}
	sess.Set(lastSearchKey, query)
	_ = sess.Save()
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
