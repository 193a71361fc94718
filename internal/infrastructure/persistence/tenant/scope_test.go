package tenant

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type scopedRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string
}

func newScopeTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&scopedRecord{}))
	return db
}

func TestCompanyScopeFiltersRows(t *testing.T) {
	db := newScopeTestDB(t)

	companyA := uuid.New()
	companyB := uuid.New()
	require.NoError(t, db.Create(&scopedRecord{ID: uuid.New(), CompanyID: companyA, Name: "a"}).Error)
	require.NoError(t, db.Create(&scopedRecord{ID: uuid.New(), CompanyID: companyB, Name: "b"}).Error)

	var records []scopedRecord
	err := db.Scopes(CompanyScope(companyA)).Find(&records).Error
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].Name)
}

func TestCompanyScopeRejectsNilCompany(t *testing.T) {
	db := newScopeTestDB(t)

	var records []scopedRecord
	err := db.Scopes(CompanyScope(uuid.Nil)).Find(&records).Error
	assert.ErrorIs(t, err, ErrCompanyIDRequired)
}
