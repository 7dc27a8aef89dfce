package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"a+tag@company.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"user@",
		"user @example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP-1024"))
	assert.True(t, IsValidEmployeeCode("HR-001"))
	assert.True(t, IsValidEmployeeCode("SALE-123456"))

	assert.False(t, IsValidEmployeeCode(""))
	assert.False(t, IsValidEmployeeCode("emp-1024"))
	assert.False(t, IsValidEmployeeCode("EMP1024"))
	assert.False(t, IsValidEmployeeCode("E-123"))
	assert.False(t, IsValidEmployeeCode("EMP-12"))
	assert.False(t, IsValidEmployeeCode("TOOLONG-123"))
}

func TestIsValidDepartmentCode(t *testing.T) {
	assert.True(t, IsValidDepartmentCode("ENG"))
	assert.True(t, IsValidDepartmentCode("HR"))
	assert.True(t, IsValidDepartmentCode("SALES01"))

	assert.False(t, IsValidDepartmentCode(""))
	assert.False(t, IsValidDepartmentCode("E"))
	assert.False(t, IsValidDepartmentCode("eng"))
	assert.False(t, IsValidDepartmentCode("WAYTOOLONGCODE"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2026-03-15")
	assert.True(t, ok)
	assert.Equal(t, 2026, d.Year())

	for _, s := range []string{"", "15-03-2026", "2026/03/15", "2026-13-01", "not a date"} {
		_, ok := IsValidDate(s)
		assert.False(t, ok, s)
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "Valid email is required"},
		{Field: "password", Message: "Password must be at least 6 characters"},
	}

	assert.Contains(t, errs.Error(), "email")

	m := errs.ToMap()
	assert.Equal(t, "Valid email is required", m["email"])
	assert.Equal(t, "Password must be at least 6 characters", m["password"])
}
