package validators

import "go.mongodb.org/mongo-driver/bson"

var integer = bson.A{"int", "long"}

var ReservationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"client_id",
			"space_ids",
			"start_date",
			"end_date",
			"total_days",
			"price_per_day",
			"handling_fee",
			"subtotal",
			"tax",
			"total",
			"status",
			"seq",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
				"pattern":  "^r[0-9]+$",
			},

			"client_id": bson.M{
				"bsonType": "string",
			},

			"space_ids": bson.M{
				"bsonType":    "array",
				"minItems":    1,
				"maxItems":    100,
				"uniqueItems": true,
				"items": bson.M{
					"bsonType": integer,
					"minimum":  1,
					"maximum":  100,
				},
			},

			"start_date": bson.M{"bsonType": "date"},
			"end_date":   bson.M{"bsonType": "date"},

			"total_days": bson.M{
				"bsonType": integer,
				"minimum":  1,
			},

			"price_per_day": bson.M{"bsonType": "double"},
			"handling_fee":  bson.M{"bsonType": "double"},
			"tax_rate":      bson.M{"bsonType": "double"},
			"subtotal":      bson.M{"bsonType": "double"},
			"tax":           bson.M{"bsonType": "double"},
			"total":         bson.M{"bsonType": "double"},

			"status": bson.M{
				"enum": []string{"active", "expired", "completed"},
			},

			"seq": bson.M{"bsonType": "long"},
		},
	},
}
