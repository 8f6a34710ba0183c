package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fixed blob keys. The names are the ones the mobile client has always
// used for its local storage, kept stable so exported data stays portable.
const (
	GoalsKey         = "kawaii-goals"
	JournalKey       = "journal-entries"
	UserDataKey      = "kawaii-user-data"
	NotificationsKey = "kawaii-notifications"
	ThemeKey         = "kawaii-theme"
)

// Store is the durable key-value boundary. Load returns (nil, nil) when the
// key has never been written. Save replaces the whole value; there are no
// partial writes and the last writer wins.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}

// Blob is a named JSON document. Durability only; the owning repository
// decides what the bytes mean.
type Blob struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (Blob) TableName() string {
	return "blobs"
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(key string) ([]byte, error) {
	var blob Blob
	if err := s.db.First(&blob, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(blob.Value), nil
}

func (s *GormStore) Save(key string, value []byte) error {
	blob := Blob{Key: key, Value: string(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&blob).Error
}
