package database

import (
	"io/fs"
	"strings"
	"testing"

	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnString(t *testing.T) {
	got := ConnString(utils.DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		Name:     "hotel",
		User:     "app",
		Password: "pw",
	})

	assert.Equal(t, "host=db port=5433 user=app password=pw dbname=hotel sslmode=disable", got)
}

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(migrations, files[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "-- +goose Up"))
	assert.Contains(t, string(body), "CREATE TABLE bookings")
}
