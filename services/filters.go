package services

import (
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
)

// Predicate is one WHERE condition, ready to be passed to gorm's Where.
type Predicate struct {
	SQL  string
	Args []interface{}
}

// QuerySpec is the parsed representation of one request: pagination window,
// resolved ORDER BY expression and the filter conjunction. It is rebuilt
// identically for the list, count, export and delete paths.
type QuerySpec struct {
	Limit      int
	Offset     int
	OrderExpr  string
	Predicates []Predicate
}

// Column expressions resolvable by _sort_id. Pseudo-columns come from the
// derived views joined in views.go.
var sortColumns = map[string]string{
	"id":                       "u.user_id",
	"username":                 "u.username",
	"email":                    "u.email",
	"country":                  "u.country",
	"dateRegistered":           "u.date_registered",
	"dateValidated":            "u.date_validated",
	"dateLastLogin":            "u.date_last_login",
	"givenName":                "gn.given_name",
	"familyName":               "fn.family_name",
	"affiliation":              "af.affiliation",
	"dateMostRecentAssignment": "mra.date_most_recent_assignment",
}

// Filterable parameters in a fixed order so the assembled conjunction is
// deterministic. Date columns are cast to text so substring filters apply.
var filterColumns = []struct {
	Param string
	Expr  string
}{
	{"givenName", "gn.given_name"},
	{"familyName", "fn.family_name"},
	{"affiliation", "af.affiliation"},
	{"email", "u.email"},
	{"country", "u.country"},
	{"dateRegistered", "u.date_registered::text"},
	{"dateValidated", "u.date_validated::text"},
	{"groups", "ug.group_names"},
	{"dateMostRecentAssignment", "mra.date_most_recent_assignment::text"},
}

// nullTokens are filter values meaning "the column has no value".
var nullTokens = map[string]bool{
	"null":  true,
	"none":  true,
	"nil":   true,
	"blank": true,
}

// BuildPredicate turns one raw filter value into a condition on expr.
// A leading '!' or '~' negates the match. The null tokens match NULL or
// empty columns; negated they match any present value, empty included.
// Everything else is a case-insensitive substring match.
func BuildPredicate(expr, raw string) Predicate {
	value := strings.ToLower(raw)
	negated := false
	if strings.HasPrefix(value, "!") || strings.HasPrefix(value, "~") {
		negated = true
		value = value[1:]
	}
	if nullTokens[value] {
		if negated {
			return Predicate{SQL: expr + " IS NOT NULL"}
		}
		return Predicate{SQL: "(" + expr + " IS NULL OR " + expr + " = '')"}
	}
	if negated {
		return Predicate{SQL: expr + " NOT ILIKE ?", Args: []interface{}{"%" + value + "%"}}
	}
	return Predicate{SQL: expr + " ILIKE ?", Args: []interface{}{"%" + value + "%"}}
}

// ParseSearchParams builds a QuerySpec from the request query parameters.
// Unknown _sort_id values fall back to id (logged); non-numeric paging
// parameters are an error rather than silently coerced.
func ParseSearchParams(params url.Values) (QuerySpec, error) {
	var spec QuerySpec

	page, err := parsePositiveInt(params.Get("_page"), 1)
	if err != nil {
		return spec, fmt.Errorf("invalid _page: %w", err)
	}
	pageSize, err := parsePositiveInt(params.Get("_pageSize"), 20)
	if err != nil {
		return spec, fmt.Errorf("invalid _pageSize: %w", err)
	}
	spec.Limit = pageSize
	spec.Offset = (page - 1) * pageSize

	sortID := params.Get("_sort_id")
	if sortID == "" {
		sortID = "id"
	}
	orderExpr, ok := sortColumns[sortID]
	if !ok {
		log.Printf("unknown sort column %q, ordering by id", sortID)
		orderExpr = sortColumns["id"]
	}
	if params.Get("_sort_direction") == "asc" {
		spec.OrderExpr = orderExpr + " ASC"
	} else {
		spec.OrderExpr = orderExpr + " DESC"
	}

	for _, fc := range filterColumns {
		if value := params.Get(fc.Param); value != "" {
			spec.Predicates = append(spec.Predicates, BuildPredicate(fc.Expr, value))
		}
	}

	// Quick filters: a conjunction of exclusions, one per known-good value,
	// surfacing rows that match none of them.
	if params.Get("_spValidAf") == "1" {
		for _, university := range ValidUniversities {
			spec.Predicates = append(spec.Predicates, Predicate{
				SQL:  "af.affiliation <> ?",
				Args: []interface{}{university},
			})
		}
	}
	if params.Get("_spValidEmail") == "1" {
		for _, domain := range ValidEmailDomains {
			spec.Predicates = append(spec.Predicates, Predicate{
				SQL:  "u.email NOT ILIKE ?",
				Args: []interface{}{"%" + domain},
			})
		}
	}

	return spec, nil
}

func parsePositiveInt(raw string, defaultValue int) (int, error) {
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		n = 1
	}
	return n, nil
}
