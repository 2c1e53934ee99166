package validators

import "go.mongodb.org/mongo-driver/bson"

var ClientValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"_id", "name", "rfc", "phone", "email", "created_at", "seq"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":        bson.M{"bsonType": "string", "pattern": "^c[0-9]+$"},
			"name":       bson.M{"bsonType": "string", "minLength": 2, "maxLength": 200},
			"rfc":        bson.M{"bsonType": "string", "pattern": "^[A-ZÑ&]{3,4}[0-9]{6}[A-Z0-9]{3}$"},
			"phone":      bson.M{"bsonType": "string"},
			"email":      bson.M{"bsonType": "string", "maxLength": 254},
			"created_at": bson.M{"bsonType": "date"},
			"seq":        bson.M{"bsonType": "long"},
		},
	},
}
