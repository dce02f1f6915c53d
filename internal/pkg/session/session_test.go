package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueParse_Roundtrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	value, err := m.Issue(Session{
		UserID:    7,
		Email:     "amina@example.com",
		FirstName: "Amina",
		APIToken:  "backend-token",
	})
	require.NoError(t, err)

	sess, err := m.Parse(value)
	require.NoError(t, err)
	assert.Equal(t, int64(7), sess.UserID)
	assert.Equal(t, "amina@example.com", sess.Email)
	assert.Equal(t, "Amina", sess.FirstName)
	assert.Equal(t, "backend-token", sess.APIToken)
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	value, err := NewManager("secret-a", time.Hour).Issue(Session{UserID: 1, APIToken: "t"})
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Parse(value)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParse_RejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)
	value, err := m.Issue(Session{UserID: 1, APIToken: "t"})
	require.NoError(t, err)

	_, err = m.Parse(value)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParse_RejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParse_RejectsMissingAPIToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	value, err := m.Issue(Session{UserID: 1})
	require.NoError(t, err)

	_, err = m.Parse(value)
	assert.ErrorIs(t, err, ErrInvalid)
}
