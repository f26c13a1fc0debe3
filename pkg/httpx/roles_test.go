package httpx_test

import (
	"testing"

	"github.com/aussiebroadwan/hrms/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestRoleSetAllows(t *testing.T) {
	var empty httpx.RoleSet
	require.True(t, empty.Allows("employee"))
	require.True(t, httpx.NewRoleSet().Allows("anything"))

	rs := httpx.NewRoleSet("admin", "hr")
	require.True(t, rs.Allows("admin"))
	require.True(t, rs.Allows("hr"))
	require.False(t, rs.Allows("employee"))
	require.False(t, rs.Allows("HR"))
	require.False(t, rs.Allows(""))
}

func TestParseRoleSet(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, []string{}},
		{"single string", "admin", []string{"admin"}},
		{"padded string", "  hr ", []string{"hr"}},
		{"comma string", "admin,hr", []string{"admin", "hr"}},
		{"string slice", []string{"hr", "admin", "hr"}, []string{"admin", "hr"}},
		{"any slice", []any{"employee", "hr"}, []string{"employee", "hr"}},
		{"role set", httpx.NewRoleSet("admin"), []string{"admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := httpx.ParseRoleSet(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, rs.Roles())
		})
	}
}

func TestParseRoleSetSingleAndListAgree(t *testing.T) {
	single, err := httpx.ParseRoleSet("admin")
	require.NoError(t, err)
	list, err := httpx.ParseRoleSet([]string{"admin"})
	require.NoError(t, err)

	require.Equal(t, single, list)
	for _, role := range []string{"admin", "hr", "employee"} {
		require.Equal(t, single.Allows(role), list.Allows(role), role)
	}
}

func TestParseRoleSetErrors(t *testing.T) {
	for name, in := range map[string]any{
		"blank string":   "  ",
		"blank element":  []string{"admin", ""},
		"non string any": []any{"admin", 7},
		"int":            42,
		"map":            map[string]any{"admin": true},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := httpx.ParseRoleSet(in)
			require.ErrorIs(t, err, httpx.ErrRoleSet)
		})
	}
}

func TestRoleSetString(t *testing.T) {
	require.Equal(t, "*", httpx.RoleSet(nil).String())
	require.Equal(t, "admin,hr", httpx.NewRoleSet("hr", "admin").String())
}
