// Package permissions holds the static role/feature/permission matrix.
package permissions

import (
	"sort"

	"github.com/fleetdeck-dev/fleetdeck/internal/models"
)

type Feature string

const (
	FeatureShips      Feature = "ships"
	FeatureComponents Feature = "components"
	FeatureJobs       Feature = "jobs"
	FeatureUsers      Feature = "users"
	FeatureDashboard  Feature = "dashboard"
	FeatureCalendar   Feature = "calendar"
)

type Permission string

const (
	PermissionView   Permission = "view"
	PermissionCreate Permission = "create"
	PermissionUpdate Permission = "update"
	PermissionDelete Permission = "delete"
)

var rolePermissions = map[models.Role]map[Feature][]Permission{
	models.RoleAdmin: {
		FeatureShips:      {PermissionView, PermissionCreate, PermissionUpdate, PermissionDelete},
		FeatureComponents: {PermissionView, PermissionCreate, PermissionUpdate, PermissionDelete},
		FeatureJobs:       {PermissionView, PermissionCreate, PermissionUpdate, PermissionDelete},
		FeatureUsers:      {PermissionView, PermissionCreate, PermissionUpdate, PermissionDelete},
		FeatureDashboard:  {PermissionView},
		FeatureCalendar:   {PermissionView},
	},
	models.RoleInspector: {
		FeatureShips:      {PermissionView},
		FeatureComponents: {PermissionView, PermissionCreate, PermissionUpdate},
		FeatureJobs:       {PermissionView, PermissionCreate, PermissionUpdate},
		FeatureDashboard:  {PermissionView},
		FeatureCalendar:   {PermissionView},
	},
	models.RoleEngineer: {
		FeatureShips:      {PermissionView},
		FeatureComponents: {PermissionView},
		FeatureJobs:       {PermissionView, PermissionUpdate},
		FeatureDashboard:  {PermissionView},
		FeatureCalendar:   {PermissionView},
	},
}

// HasPermission reports whether the role may perform the permission on the
// feature. Unknown roles have no permissions.
func HasPermission(role models.Role, feature Feature, permission Permission) bool {
	perms, ok := rolePermissions[role][feature]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}

// FeaturesFor returns the features the role can access at all.
func FeaturesFor(role models.Role) []Feature {
	entries, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	features := make([]Feature, 0, len(entries))
	for feature, perms := range entries {
		if len(perms) > 0 {
			features = append(features, feature)
		}
	}
	sort.Slice(features, func(i, j int) bool { return features[i] < features[j] })
	return features
}

// FormatRole expands a role into its display name.
func FormatRole(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "Administrator"
	case models.RoleInspector:
		return "Ship Inspector"
	case models.RoleEngineer:
		return "Marine Engineer"
	}
	return string(role)
}
