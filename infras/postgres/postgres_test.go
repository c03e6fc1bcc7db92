package postgres_test

import (
	"net/url"
	"shareit/infras/postgres"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor(t *testing.T) {
	descriptor := postgres.Descriptor("share", "p@ss:word", "localhost", "5432", "shareit", "disable", "UTC")

	parsed, err := url.Parse(descriptor)
	require.NoError(t, err)

	password, _ := parsed.User.Password()

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "share", parsed.User.Username())
	assert.Equal(t, "p@ss:word", password)
	assert.Equal(t, "localhost:5432", parsed.Host)
	assert.Equal(t, "/shareit", parsed.Path)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "UTC", parsed.Query().Get("timezone"))
}

func TestDescriptor_OmitsEmptyOptions(t *testing.T) {
	descriptor := postgres.Descriptor("share", "secret", "db", "5432", "shareit", "", "")

	parsed, err := url.Parse(descriptor)
	require.NoError(t, err)

	assert.Empty(t, parsed.RawQuery)
}
