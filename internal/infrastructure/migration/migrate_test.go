package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cloudvault/internal/app/server/config"
)

type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.DB.DatabaseURI = "postgres://localhost/test"
	cfg.DB.Migrations = "migrations"
	return cfg
}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		assert.Equal(t, "file://migrations", source)
		return mockM, nil
	}

	mg := NewMigration(testConfig(), engine)

	assert.NoError(t, mg.Up())
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)
	// An already-migrated schema is not an error.
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(testConfig(), engine)

	assert.NoError(t, mg.Up())
}

func TestMigration_Up_EngineError(t *testing.T) {
	engine := func(source, db string) (Migrator, error) {
		return nil, errors.New("bad source url")
	}

	mg := NewMigration(testConfig(), engine)

	assert.Error(t, mg.Up())
}

func TestMigration_Up_MigrateError(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(errors.New("dirty database"))
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(testConfig(), engine)

	err := mg.Up()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dirty database")
}

func TestMigration_Up_CloseErrorSurfaces(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(errors.New("source close failed"), nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	mg := NewMigration(testConfig(), engine)

	err := mg.Up()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "source close failed")
}
