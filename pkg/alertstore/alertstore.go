// Package alertstore persists which STGE status-register transitions have
// already been reported, so a long-running agent can alert once per
// transition instead of once per frame. The dedup scheme is adapted from
// the vehicle-bus agent's DTC store: a bbolt bucket keyed by a composite
// string, IsNew/ClearAll semantics carried over unchanged.
package alertstore

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketKey = "stge_alerts"

// OpenDB opens (or creates) the bbolt database backing the alert store and
// ensures its bucket exists.
func OpenDB(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketKey))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// IsNew reports whether this (register field, value) pair has not yet been
// recorded, and records it if so. field is the Stge struct field name
// (e.g. "CutOffCause"); value is its rendered string/bool form.
func IsNew(db *bolt.DB, field, value string) (bool, error) {
	key := []byte(fmt.Sprintf("%s:%s", field, value))
	var isNew bool

	err := db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketKey))
		if b.Get(key) == nil {
			isNew = true
			return b.Put(key, []byte{1})
		}
		isNew = false
		return nil
	})
	return isNew, err
}

// ClearAll resets the store, forcing every transition to alert again on
// next sight.
func ClearAll(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketKey)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(bucketKey))
		return err
	})
}
