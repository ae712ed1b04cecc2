package ctdf

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
)

type UserProfile struct {
	Username      string `groups:"basic" json:"username" gorm:"primaryKey" bson:"username"`
	TimetableLink string `groups:"basic" json:"timetable_link" bson:"timetablelink"`
	HomeStopID    string `groups:"basic" json:"home_stop_id" bson:"homestopid"`
	HomeStopName  string `groups:"basic" json:"home_stop_name" bson:"homestopname"`
	BufferTime    *int   `groups:"basic" json:"buffer_time" bson:"buffertime"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// FavouriteConnection is a Journey a user has saved
type FavouriteConnection struct {
	ID       int64  `groups:"basic" json:"id" gorm:"primaryKey" bson:"id"`
	Username string `groups:"internal" json:"username" gorm:"index" bson:"username"`

	Departure    string    `groups:"basic" json:"dep_time" gorm:"column:dep_time" bson:"deptime"`
	Arrival      string    `groups:"basic" json:"arr_time" gorm:"column:arr_time" bson:"arrtime"`
	Duration     int       `groups:"basic" json:"duration" bson:"duration"`
	Interchanges int       `groups:"basic" json:"interchanges" bson:"interchanges"`
	Sections     []Section `groups:"basic" json:"sections_json" gorm:"column:sections_json;serializer:json" bson:"sections"`

	CreatedAt time.Time `groups:"basic" json:"created_at" bson:"createdat"`
}

func (FavouriteConnection) TableName() string {
	return "fav_connections"
}

// NewFavouriteConnection reduces a Journey down to what gets stored for a favourite
func NewFavouriteConnection(username string, journey *Journey) (*FavouriteConnection, error) {
	favourite := &FavouriteConnection{
		Username: username,
	}

	if err := copier.Copy(favourite, journey); err != nil {
		return nil, fmt.Errorf("copy journey into favourite: %w", err)
	}

	return favourite, nil
}
