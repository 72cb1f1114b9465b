// Package security decides who may do what to which resource. The
// voter answers single ownership-level checks; the grant helpers in
// grants.go combine voter verdicts with role checks per route.
package security

import (
	"inkwell/internal/models"
)

// Attribute is a single permission being checked on a subject.
type Attribute string

const (
	View   Attribute = "VIEW"
	Edit   Attribute = "EDIT"
	Delete Attribute = "DELETE"
	Block  Attribute = "BLOCK"
)

// Decide runs one access check for the principal on a subject.
//
// An anonymous principal is always denied. For articles and comments
// ownership alone decides VIEW/EDIT/DELETE; role-based grants are
// layered on top by the callers in grants.go. For user subjects EDIT
// means self-service or admin, and BLOCK additionally requires the
// principal's highest role to outrank the subject's, so an admin can
// never block a peer or a superior. Unsupported attribute/subject
// combinations are denied.
func Decide(attr Attribute, subject interface{}, principal *models.User) bool {
	if principal == nil {
		return false
	}

	switch s := subject.(type) {
	case *models.Article:
		switch attr {
		case View, Edit, Delete:
			return s.AuthorID == principal.ID
		}
	case *models.Comment:
		switch attr {
		case View, Edit, Delete:
			return s.AuthorID == principal.ID
		}
	case *models.User:
		switch attr {
		case Edit:
			return s.ID == principal.ID || principal.IsAdmin()
		case Block:
			return principal.IsAdmin() &&
				principal.HighestRole().Rank() > s.HighestRole().Rank()
		}
	}

	return false
}
