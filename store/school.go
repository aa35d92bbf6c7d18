package store

import (
	"github.com/jinzhu/gorm"

	"github.com/schoolhealth/monitor-api/schema"
)

// school health main datastore
type SchoolCore interface {
	Ping() error

	// Account
	CreateAccount(accountNumber, password string, role schema.AccountRole, metadata map[string]interface{}) (*schema.Account, error)
	GetAccount(string) (*schema.Account, error)
	ValidateAccount(accountNumber, password string) (*schema.Account, error)
	UpdateAccountMetadata(string, map[string]interface{}) error
	DeleteAccount(string) error
}

// SchoolStore is an implementation of SchoolCore
type SchoolStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewSchoolStore(ormDB *gorm.DB, mongo MongoStore) *SchoolStore {
	return &SchoolStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *SchoolStore) Ping() error {
	return s.ormDB.DB().Ping()
}
