// internal/models/user_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	user := &User{}
	require.NoError(t, user.SetPassword("hunter22"))

	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.NoError(t, user.CheckPassword("hunter22"))
	assert.Error(t, user.CheckPassword("wrong"))
}

func TestUserJSONNeverExposesPassword(t *testing.T) {
	user := &User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, user.SetPassword("hunter22"))

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), user.PasswordHash)
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: UserRoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: UserRoleCustomer}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}
