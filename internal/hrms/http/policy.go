package http

import (
	"fmt"
	"sort"

	"github.com/aussiebroadwan/hrms/internal/hrms/domain"
	"github.com/aussiebroadwan/hrms/pkg/httpx"
)

// Access groups. Every protected route belongs to one group, or to none when
// any authenticated employee may call it.
const (
	GroupEmployeesRead    = "employees.read"
	GroupEmployeesWrite   = "employees.write"
	GroupEmployeesDelete  = "employees.delete"
	GroupAttendanceManage = "attendance.manage"
	GroupEventsWrite      = "events.write"
	GroupPayrollManage    = "payroll.manage"
	GroupAppraisalsManage = "appraisals.manage"
	GroupDashboardAdmin   = "dashboard.admin"
	GroupDashboardHR      = "dashboard.hr"
)

// AccessPolicy maps an access group to the roles allowed into it.
type AccessPolicy map[string]httpx.RoleSet

// DefaultAccessPolicy returns the built in role assignment.
func DefaultAccessPolicy() AccessPolicy {
	staff := []string{domain.RoleAdmin, domain.RoleHR}
	return AccessPolicy{
		GroupEmployeesRead:    httpx.NewRoleSet(staff...),
		GroupEmployeesWrite:   httpx.NewRoleSet(staff...),
		GroupEmployeesDelete:  httpx.NewRoleSet(domain.RoleAdmin),
		GroupAttendanceManage: httpx.NewRoleSet(staff...),
		GroupEventsWrite:      httpx.NewRoleSet(staff...),
		GroupPayrollManage:    httpx.NewRoleSet(staff...),
		GroupAppraisalsManage: httpx.NewRoleSet(staff...),
		GroupDashboardAdmin:   httpx.NewRoleSet(domain.RoleAdmin),
		GroupDashboardHR:      httpx.NewRoleSet(staff...),
	}
}

// Groups lists every known access group in order.
func Groups() []string {
	groups := make([]string, 0, len(DefaultAccessPolicy()))
	for g := range DefaultAccessPolicy() {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Merge returns the defaults overridden by the groups set in p. Unknown
// groups and unknown roles are errors so a typo in config cannot silently
// open or close a route.
func (p AccessPolicy) Merge() (AccessPolicy, error) {
	out := DefaultAccessPolicy()
	for group, roles := range p {
		if _, ok := out[group]; !ok {
			return nil, fmt.Errorf("access policy: unknown group %q", group)
		}
		for _, role := range roles.Roles() {
			if !domain.ValidRole(role) {
				return nil, fmt.Errorf("access policy: group %q: unknown role %q", group, role)
			}
		}
		out[group] = roles
	}
	return out, nil
}

// Roles returns the set for group. A group missing from p falls back to
// its default; only the empty group "" admits any role.
func (p AccessPolicy) Roles(group string) httpx.RoleSet {
	if group == "" {
		return httpx.NewRoleSet()
	}
	if rs, ok := p[group]; ok {
		return rs
	}
	return DefaultAccessPolicy()[group]
}
