// Copyright (c) 2026 Ciaan
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexModels declares every index per collection. The unique email index on
// users backs the immutable, lowercase-normalized email constraint.
func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		CollectionUsers: {
			{
				Keys:    bson.D{{Key: "emailId", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollectionPosts: {
			{Keys: bson.D{{Key: "author", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "likedBy", Value: 1}}},
		},
		CollectionComments: {
			{Keys: bson.D{{Key: "post", Value: 1}}},
		},
	}
}
