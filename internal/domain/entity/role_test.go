package entity

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		input    string
		expected Role
	}{
		{"STUDENT", RoleStudent},
		{"student", RoleStudent},
		{"Student", RoleStudent},
		{" teacher ", RoleTeacher},
		{"ADMIN", RoleAdmin},
		{"aDmIn", RoleAdmin},
	}

	for _, tc := range testCases {
		role, err := ParseRole(tc.input)
		assert.NoError(t, err, "Expected no error for role: %q", tc.input)
		assert.Equal(t, tc.expected, role)
	}
}

func TestParseRole_Unknown(t *testing.T) {
	for _, input := range []string{"", "headmaster", "superadmin", "STUDENTS"} {
		_, err := ParseRole(input)
		assert.Error(t, err, "Expected error for role: %q", input)
		assert.True(t, errors.Is(err, ErrUnknownRole))
	}
}

func TestRole_Lower(t *testing.T) {
	assert.Equal(t, "student", RoleStudent.Lower())
	assert.Equal(t, "teacher", RoleTeacher.Lower())
	assert.Equal(t, "admin", RoleAdmin.Lower())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleStudent.IsValid())
	assert.True(t, RoleTeacher.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("GUEST").IsValid())
	assert.False(t, Role("").IsValid())
}
