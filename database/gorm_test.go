package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamdb-api/models"
)

func TestOpen_SQLiteAndMigrate(t *testing.T) {
	db, err := Open(Options{Driver: DriverSQLite})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))

	for _, m := range Models() {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.True(t, db.Migrator().HasTable("title_genres"))

	u := models.User{Username: "alice", Email: "a@x.com"}
	require.NoError(t, db.Create(&u).Error)

	var got models.User
	require.NoError(t, db.First(&got, u.ID).Error)
	assert.Equal(t, models.RoleUser, got.Role)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(Options{Driver: "oracle"})
	require.Error(t, err)
}

func TestOpen_PostgresRequiresURL(t *testing.T) {
	_, err := Open(Options{Driver: DriverPostgres})
	require.Error(t, err)
}
