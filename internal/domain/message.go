package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Sender      primitive.ObjectID `bson:"sender" json:"sender"`
	Receiver    primitive.ObjectID `bson:"receiver" json:"receiver"`
	Message     string             `bson:"message" json:"message"`
	MessageDate time.Time          `bson:"messageDate" json:"messageDate"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
