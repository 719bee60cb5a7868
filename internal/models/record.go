package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Record is one emotion observation collected by the mobile client.
// Required fields are pointers so a missing field is distinguishable from a
// zero value; empty strings for sentiment/videoPath are accepted as sent.
type Record struct {
	ID             *int       `json:"id" validate:"required"`
	Sentiment      *string    `json:"sentiment" validate:"required"`
	SentimentValue *int       `json:"sentimentValue" validate:"required"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	Timestamp      *time.Time `json:"timestamp" validate:"required"`
	VideoPath      *string    `json:"videoPath" validate:"required"`
}

// ExportBatch is one submission from the mobile client.
// RecordCount is the sender's declared count; it is informational only and
// never checked against len(Records).
type ExportBatch struct {
	ExportDate  *time.Time `json:"exportDate" validate:"required"`
	RecordCount *int       `json:"recordCount" validate:"required"`
	Records     []Record   `json:"records" validate:"dive"`
}

// Validate checks the batch and every record in it. The returned error is a
// validator.ValidationErrors naming the field path and the failed constraint;
// any failure rejects the whole batch.
func (b *ExportBatch) Validate() error {
	return validate.Struct(b)
}

// StoredRecord is the persisted form: every Record field plus the exportDate
// of the batch it arrived in. One document per record; documents are never
// updated or deleted, and Mongo's _id stays internal to the collection.
type StoredRecord struct {
	ID             int       `bson:"id" json:"id"`
	Sentiment      string    `bson:"sentiment" json:"sentiment"`
	SentimentValue int       `bson:"sentimentValue" json:"sentimentValue"`
	Latitude       *float64  `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude      *float64  `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Timestamp      time.Time `bson:"timestamp" json:"timestamp"`
	ExportDate     time.Time `bson:"exportDate" json:"exportDate"`
	VideoPath      string    `bson:"videoPath" json:"videoPath"`
}

// Stored returns the persisted form of r stamped with its batch's exportDate.
// Nil required fields (possible only on an unvalidated record) become zero
// values rather than panicking.
func (r Record) Stored(exportDate time.Time) StoredRecord {
	s := StoredRecord{
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		ExportDate: exportDate,
	}
	if r.ID != nil {
		s.ID = *r.ID
	}
	if r.Sentiment != nil {
		s.Sentiment = *r.Sentiment
	}
	if r.SentimentValue != nil {
		s.SentimentValue = *r.SentimentValue
	}
	if r.Timestamp != nil {
		s.Timestamp = *r.Timestamp
	}
	if r.VideoPath != nil {
		s.VideoPath = *r.VideoPath
	}
	return s
}
