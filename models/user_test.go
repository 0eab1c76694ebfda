package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserFullName(t *testing.T) {
	u := User{Username: "jdoe", FirstName: "John", LastName: "Doe"}
	assert.Equal(t, "John Doe", u.FullName())

	u = User{Username: "jdoe", FirstName: "John"}
	assert.Equal(t, "John", u.FullName())

	u = User{Username: "jdoe"}
	assert.Equal(t, "jdoe", u.FullName())
}
