package models

import "time"

// Advertisement is a user-submitted listing record. Fields are write-once:
// no update operation exists, only creation and hard deletion.
type Advertisement struct {
	// AdID is the unique identifier of the listing, assigned by the database.
	AdID int64 `json:"id"`

	// Title is the required short headline of the listing.
	Title string `json:"title"`

	// Description is the required body text of the listing.
	Description string `json:"description"`

	// CreationDate is set once at creation to the current UTC time and is
	// immutable thereafter. Serialized in ISO-8601 / RFC 3339 form.
	CreationDate time.Time `json:"creation_date"`

	// OwnerID references the user that created the listing and holds
	// exclusive delete rights over it. Internal only, never serialized.
	OwnerID int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Advertisement model.
func (a Advertisement) TableName() string {
	return "advertisements"
}
