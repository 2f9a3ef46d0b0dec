// Package entity contains the core business objects of the project.
package entity

import "beacon/internal/domain/constants"

// NotificationPreferences holds a member's per-category opt-outs.
// Every flag defaults to true; a member without a stored preference
// record receives everything.
type NotificationPreferences struct {
	Events   bool `json:"events"`   // Event announcements and RSVP reminders.
	Projects bool `json:"projects"` // Project interest and approval updates.
	Admin    bool `json:"admin"`    // Administrative announcements.
	Email    bool `json:"email"`    // Email digests (not consulted by push dispatch).
}

// DefaultPreferences returns the all-enabled preference set used when a
// member has never stored preferences.
func DefaultPreferences() NotificationPreferences {
	return NotificationPreferences{
		Events:   true,
		Projects: true,
		Admin:    true,
		Email:    true,
	}
}

// Allows reports whether a push in the given category may be delivered.
// Unknown or empty categories are always allowed.
func (p NotificationPreferences) Allows(category string) bool {
	switch category {
	case constants.CategoryEvents:
		return p.Events
	case constants.CategoryProjects:
		return p.Projects
	case constants.CategoryAdmin:
		return p.Admin
	default:
		return true
	}
}
