package database

import (
	"errors"
	"os"

	"swastik-storefront/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Connect opens the key-value store backing the persisted cart. By default
// it is a local sqlite file; setting DATABASE_URL switches to PostgreSQL for
// deployments that want the blob held off-box.
func Connect() (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	path := os.Getenv("CART_DB_PATH")
	if path == "" {
		path = "swastik.db"
	}
	return gorm.Open(sqlite.Open(path), cfg)
}

// Migrate creates the key-value table. This is the only persistence in the
// system; the catalog is never written.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.KVEntry{})
}

// KV is a flat key-value view over the database: string keys, serialized
// string blobs, last writer wins.
type KV struct {
	DB *gorm.DB
}

// Load returns the blob under key. The second result is false when the key
// has never been written or has been deleted.
func (kv *KV) Load(key string) (string, bool, error) {
	var entry models.KVEntry
	err := kv.DB.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Save writes the blob under key, replacing any previous value.
func (kv *KV) Save(key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return kv.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error
}

// Delete removes the key. Deleting an absent key is a no-op.
func (kv *KV) Delete(key string) error {
	return kv.DB.Delete(&models.KVEntry{}, "key = ?", key).Error
}
