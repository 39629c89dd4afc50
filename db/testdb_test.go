package db_test

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dining-server/model"
)

// openTestDB opens a per-test in-memory sqlite database with the full
// schema. cache=shared keeps every pooled connection on the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = gdb.AutoMigrate(
		&model.Restaurant{},
		&model.Like{},
		&model.Review{},
		&model.Image{},
		&model.Station{},
		&model.User{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return gdb
}

func mustCreate(t *testing.T, gdb *gorm.DB, value interface{}) {
	t.Helper()
	result := gdb.Create(value)
	if result.Error != nil {
		t.Fatalf("create fixture %T: %v", value, result.Error)
	}
}
