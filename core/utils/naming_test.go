package utils_test

import (
	"testing"

	"dirsync/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestDeriveAccountName(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     string
		wantOK   bool
	}{
		{"FirstLast", "jane.doe", "Jane Doe", true},
		{"SingleToken", "admin", "Admin", true},
		{"MixedCase", "jANE.DOE", "Jane Doe", true},
		{"ThreeParts", "jane.q.doe", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := utils.DeriveAccountName(tt.username)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeServerURL(t *testing.T) {
	tests := []struct {
		name   string
		server string
		want   string
	}{
		{"BareHost", "dc01.yourorg.corp", "ldaps://dc01.yourorg.corp"},
		{"HostPort", "dc01:636", "ldaps://dc01:636"},
		{"AlreadySecure", "ldaps://dc01", "ldaps://dc01"},
		{"ExplicitPlain", "ldap://dc01:389", "ldap://dc01:389"},
		{"Trimmed", "  dc01 ", "ldaps://dc01"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.NormalizeServerURL(tt.server))
		})
	}
}
