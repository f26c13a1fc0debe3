package httpx

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// RoleSet is the set of role labels a route accepts. The zero value is the
// empty set, which accepts any authenticated identity. Membership is exact
// and case sensitive; roles carry no hierarchy.
type RoleSet map[string]struct{}

// ErrRoleSet reports a role configuration that cannot be normalized.
var ErrRoleSet = errors.New("httpx: invalid role set")

// NewRoleSet builds a RoleSet from role labels. Blank labels are ignored.
func NewRoleSet(roles ...string) RoleSet {
	rs := make(RoleSet, len(roles))
	for _, r := range roles {
		if r == "" {
			continue
		}
		rs[r] = struct{}{}
	}
	return rs
}

// ParseRoleSet normalizes a configured value into a RoleSet. It accepts a
// single role string, a list of role strings ([]string or []any as decoded
// from YAML/JSON), a RoleSet, or nil for the empty set.
func ParseRoleSet(v any) (RoleSet, error) {
	switch t := v.(type) {
	case nil:
		return RoleSet{}, nil
	case RoleSet:
		return NewRoleSet(t.Roles()...), nil
	case string:
		// viper hands comma separated env values over as one string
		if strings.Contains(t, ",") {
			return ParseRoleSet(strings.Split(t, ","))
		}
		role := strings.TrimSpace(t)
		if role == "" {
			return nil, fmt.Errorf("%w: blank role", ErrRoleSet)
		}
		return NewRoleSet(role), nil
	case []string:
		rs := make(RoleSet, len(t))
		for _, r := range t {
			r = strings.TrimSpace(r)
			if r == "" {
				return nil, fmt.Errorf("%w: blank role", ErrRoleSet)
			}
			rs[r] = struct{}{}
		}
		return rs, nil
	case []any:
		roles := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%w: role %v is %T, want string", ErrRoleSet, e, e)
			}
			roles = append(roles, s)
		}
		return ParseRoleSet(roles)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrRoleSet, v)
	}
}

// Allows reports whether role satisfies the set.
func (rs RoleSet) Allows(role string) bool {
	if len(rs) == 0 {
		return true
	}
	_, ok := rs[role]
	return ok
}

// Roles returns the members in sorted order.
func (rs RoleSet) Roles() []string {
	out := make([]string, 0, len(rs))
	for r := range rs {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

func (rs RoleSet) String() string {
	if len(rs) == 0 {
		return "*"
	}
	return strings.Join(rs.Roles(), ",")
}
