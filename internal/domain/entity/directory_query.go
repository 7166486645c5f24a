package entity

import (
	"strconv"
	"strings"
)

const (
	DirectoryFieldSpecialty = "specialty"
	DirectoryFieldCity      = "city"
	DirectoryFieldName      = "name"
)

// Predicate is a single exact, case-sensitive equality match on a directory field
type Predicate struct {
	Field string
	Value string
}

// DirectoryQuery is a domain-level predicate list for querying the doctor directory.
// Used by repository backends to avoid coupling with request DTOs.
type DirectoryQuery struct {
	Predicates []Predicate
}

func NewDirectoryQuery() *DirectoryQuery {
	return &DirectoryQuery{}
}

// Where appends an equality predicate and returns the query for chaining
func (q *DirectoryQuery) Where(field, value string) *DirectoryQuery {
	q.Predicates = append(q.Predicates, Predicate{Field: field, Value: value})
	return q
}

// Matches evaluates the predicates against a doctor record
func (q *DirectoryQuery) Matches(doctor *Doctor) bool {
	for _, p := range q.Predicates {
		var actual string
		switch p.Field {
		case DirectoryFieldSpecialty:
			actual = doctor.Specialty
		case DirectoryFieldCity:
			actual = doctor.City
		case DirectoryFieldName:
			actual = doctor.Name
		default:
			return false
		}
		if actual != p.Value {
			return false
		}
	}
	return true
}

// String renders the predicates in order, e.g. specialty=="Cardiology"&city=="Springfield"
func (q *DirectoryQuery) String() string {
	parts := make([]string, len(q.Predicates))
	for i, p := range q.Predicates {
		parts[i] = p.Field + "==" + strconv.Quote(p.Value)
	}
	return strings.Join(parts, "&")
}

