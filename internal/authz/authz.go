// Package authz holds the role and action enumerations and the single
// capability table every authorization check consults.
package authz

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// permissions is immutable after init. There is no role hierarchy: a role may
// perform exactly the actions listed here.
var permissions = map[Role][]Action{
	RoleAdmin:  {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
	RoleViewer: {ActionRead},
}

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleViewer:
		return Role(s), true
	}
	return "", false
}

// Can reports whether role is allowed to perform action.
func Can(role Role, action Action) bool {
	for _, a := range permissions[role] {
		if a == action {
			return true
		}
	}
	return false
}
