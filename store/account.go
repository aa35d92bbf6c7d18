package store

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/schoolhealth/monitor-api/schema"
)

var (
	ErrInvalidCredential = fmt.Errorf("account number and password do not match")
)

// CreateAccount registers a student or administrator login.
func (s *SchoolStore) CreateAccount(accountNumber, password string, role schema.AccountRole, metadata map[string]interface{}) (*schema.Account, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := schema.Account{
		AccountNumber:  accountNumber,
		Role:           role,
		PasswordDigest: string(digest),
		Profile: schema.AccountProfile{
			AccountNumber: accountNumber,
			State: schema.ActivityState{
				LastActiveTime: time.Now(),
			},
			Metadata: schema.AccountMetadata(metadata),
		},
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account number
func (s *SchoolStore) GetAccount(accountNumber string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ValidateAccount checks a password against the stored digest and refreshes
// the last active time on success.
func (s *SchoolStore) ValidateAccount(accountNumber, password string) (*schema.Account, error) {
	a, err := s.GetAccount(accountNumber)
	if err != nil {
		return nil, ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordDigest), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	a.Profile.State.LastActiveTime = time.Now()
	if err := s.ormDB.Save(&a.Profile).Error; err != nil {
		return nil, err
	}

	return a, nil
}

// UpdateAccountMetadata is to update metadata for a specific account
func (s *SchoolStore) UpdateAccountMetadata(accountNumber string, metadata map[string]interface{}) error {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return err
	}

	if a.Profile.Metadata == nil {
		a.Profile.Metadata = schema.AccountMetadata{}
	}
	for k, v := range metadata {
		a.Profile.Metadata[k] = v
	}

	return s.ormDB.Save(&a.Profile).Error
}

// DeleteAccount removes an account from our system permanently
func (s *SchoolStore) DeleteAccount(accountNumber string) error {
	if err := s.ormDB.Delete(schema.Account{}, "account_number = ?", accountNumber).Error; err != nil {
		return err
	}

	if err := s.ormDB.Delete(schema.AccountProfile{}, "account_number = ?", accountNumber).Error; err != nil {
		return err
	}

	return nil
}
