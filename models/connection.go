package models

import (
	"github.com/CPU-commits/LMS_Backend/db"
)

var DbConnect = db.NewDBConnection()

// SetUpCollections creates the collections with their schema validators and
// ensures the unique indexes. Must run before the router starts serving.
func SetUpCollections() error {
	collections, err := DbConnect.GetCollections()
	if err != nil {
		return err
	}
	if err := initUsers(collections); err != nil {
		return err
	}
	if err := initCourses(collections); err != nil {
		return err
	}
	if err := initProgress(collections); err != nil {
		return err
	}
	return nil
}
