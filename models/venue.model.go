package models

// Venue is a merchant record owned by the venue profile service. Read-only
// here. Identity and banking fields must never reach an API response; use
// Public() before embedding a venue anywhere client-facing.
type Venue struct {
	ID            string `bson:"id" json:"id"`
	CognitoID     string `bson:"cognitoId" json:"cognitoId,omitempty"`
	VenueName     string `bson:"venueName" json:"venueName"`
	VenueEmail    string `bson:"venueEmail" json:"venueEmail,omitempty"`
	Address       string `bson:"address,omitempty" json:"address,omitempty"`
	Phone         string `bson:"phone,omitempty" json:"phone,omitempty"`
	BankBSB       string `bson:"bankBSB" json:"bankBSB,omitempty"`
	BankName      string `bson:"bankName" json:"bankName,omitempty"`
	BankAccountNo string `bson:"bankAccountNo" json:"bankAccountNo,omitempty"`
}

// VenuePublic is the client-facing view of a venue.
type VenuePublic struct {
	ID        string `json:"id"`
	VenueName string `json:"venueName"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Public copies the venue into its client-facing view, leaving the cognito
// id, venue email and banking details behind.
func (v Venue) Public() VenuePublic {
	return VenuePublic{
		ID:        v.ID,
		VenueName: v.VenueName,
		Address:   v.Address,
		Phone:     v.Phone,
	}
}
