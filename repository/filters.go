package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// containsFilter builds a case-insensitive substring match for user-supplied
// search input. The input is quoted so regex metacharacters match literally.
func containsFilter(needle string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(needle), "$options": "i"}
}
