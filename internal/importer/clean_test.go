package importer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	assert.Equal(t, 1234.56, ParseMoney("1.234,56"))
	assert.Equal(t, 0.0, ParseMoney("0,00"))
	assert.Equal(t, 0.0, ParseMoney(""))
	assert.Equal(t, 0.0, ParseMoney("abc"))
	assert.Equal(t, 1234567.89, ParseMoney("1.234.567,89"))
	assert.Equal(t, 150.0, ParseMoney(" 150,00 "))
}

func TestParseDate(t *testing.T) {
	d := ParseDate("15/03/2023")
	if assert.NotNil(t, d) {
		assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), *d)
	}

	assert.Nil(t, ParseDate("2023-03-15"))
	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("32/13/2023"))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("123456"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("12a34"))
	assert.False(t, IsDigits("12.34"))
	assert.False(t, IsDigits("-123"))
}

func TestCleanCategory(t *testing.T) {
	v := CleanCategory("  ESTATUTARIO  ")
	if assert.NotNil(t, v) {
		assert.Equal(t, "ESTATUTARIO", *v)
	}

	assert.Nil(t, CleanCategory(""))
	assert.Nil(t, CleanCategory("-1"))
	assert.Nil(t, CleanCategory("Sem informação"))
	assert.Nil(t, CleanCategory("sem informaç"))
}

func TestParseRoleNumber(t *testing.T) {
	n := ParseRoleNumber("205")
	if assert.NotNil(t, n) {
		assert.Equal(t, int64(205), *n)
	}

	assert.Nil(t, ParseRoleNumber("-1"))
	assert.Nil(t, ParseRoleNumber("0"))
	assert.Nil(t, ParseRoleNumber("abc"))
	assert.Nil(t, ParseRoleNumber(""))
	assert.Nil(t, ParseRoleNumber("1e300"))
}

func TestParseRoleNumber_Int64Boundary(t *testing.T) {
	// Both parse to the float64 2^63, one float past int64 range; converting
	// would overflow, so they are absent rather than garbage.
	assert.Nil(t, ParseRoleNumber("9223372036854775807"))
	assert.Nil(t, ParseRoleNumber("9223372036854775808"))
	assert.Nil(t, ParseRoleNumber("-1e300"))

	n := ParseRoleNumber("-9223372036854775808")
	if assert.NotNil(t, n) {
		assert.Equal(t, int64(math.MinInt64), *n)
	}
}

func TestCleanUpper(t *testing.T) {
	assert.Equal(t, "MINISTERIO DA SAUDE", CleanUpper("  ministerio da saude "))
}
