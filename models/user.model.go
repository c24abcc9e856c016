package models

// User is a profile record owned by the external identity service.
// It is read-only in this service; the cognito id never leaves it.
type User struct {
	ID        string `bson:"id" json:"id"`
	CognitoID string `bson:"cognitoId" json:"-"`
	Email     string `bson:"email" json:"email"`
	Name      string `bson:"name,omitempty" json:"name,omitempty"`
}
