// Package store keeps the set of works the grabber has already
// mirrored, so runs are incremental across restarts.
package store

import (
	"strconv"

	bolt "go.etcd.io/bbolt"
)

var worksBucket = []byte("works")

type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the bolt file at path and ensures the works
// bucket exists.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(worksBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Seen reports whether the work id has been marked.
func (s *Store) Seen(id int) (bool, error) {
	var seen bool

	err := s.db.View(func(tx *bolt.Tx) error {
		seen = tx.Bucket(worksBucket).Get(key(id)) != nil
		return nil
	})

	return seen, err
}

// MarkSeen records a work id as mirrored.
func (s *Store) MarkSeen(id int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(worksBucket).Put(key(id), []byte{1})
	})
}

func key(id int) []byte {
	return []byte(strconv.Itoa(id))
}
