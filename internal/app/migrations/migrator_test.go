package migrations

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionOf(t *testing.T) {
	assert.Equal(t, "001", versionOf("migrations/001_init.sql"))
	assert.Equal(t, "002", versionOf("002_add_index_on_events.sql"))
}

func TestMigrateFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "002_second.sql"), []byte("CREATE TABLE b (id INT);"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_first.sql"), []byte("CREATE TABLE a (id INT);"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o600))

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// 001 is already applied
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("001").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("002").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE b").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("INSERT INTO schema_migrations").WithArgs("002").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	m := NewMigrator(mock, zerolog.Nop())
	require.NoError(t, m.MigrateFromDirectory(context.Background(), dir))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateFromFile_FailureRollsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "001_bad.sql")
	require.NoError(t, os.WriteFile(path, []byte("CREATE TABLE"), 0o600))

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("001").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = NewMigrator(mock, zerolog.Nop()).MigrateFromFile(context.Background(), path)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
