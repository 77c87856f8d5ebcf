package dto

import "go.mongodb.org/mongo-driver/bson"

// UpdateItemRequest is the Extended JSON body of a PATCH on a document.
//
//	{"update": {"$set": {"title": "x"}}, "upsert": false}
type UpdateItemRequest struct {
	Update bson.M `bson:"update"`
	Upsert bool   `bson:"upsert"`
}

// CallMethodRequest is the Extended JSON body of a bound method call.
//
//	{"args": [{"$oid": "5f1d7a3b9c8e4f0012345678"}]}
type CallMethodRequest struct {
	Args bson.A `bson:"args"`
}
