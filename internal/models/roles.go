package models

import (
	"errors"
	"strings"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleCitizen   Role = "citizen"
	RoleVolunteer Role = "volunteer"
	RoleOfficial  Role = "official"
	RoleAdmin     Role = "admin"
)

// NormalizeRole lowercases and trims an input role, defaulting the empty
// string to citizen and rejecting anything outside the closed set.
func NormalizeRole(input string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(input)))
	if role == "" {
		role = RoleCitizen
	}
	switch role {
	case RoleCitizen, RoleVolunteer, RoleOfficial, RoleAdmin:
		return role, nil
	default:
		return "", errors.New("invalid role")
	}
}

// CanModifyReport reports whether requester may update or delete a report
// owned by ownerID. Only the owner and admins may.
func CanModifyReport(requesterID uint, role Role, ownerID uint) bool {
	return requesterID == ownerID || role == RoleAdmin
}
