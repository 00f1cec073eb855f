package models

// User is the root document of the users collection. Every interview
// attempt the user ever made lives in the embedded Interviews slice, in
// insertion order.
type User struct {
	Name         string      `bson:"name" json:"name"`
	Email        string      `bson:"email" json:"email"`
	PasswordHash string      `bson:"password" json:"-"`
	PhoneNum     string      `bson:"phoneNum" json:"phone_num"`
	Interviews   []Interview `bson:"interviews" json:"interviews"`
}

// Sanitize returns a copy safe to hand to request handlers: the stored
// credential hash is stripped so no downstream code can leak it.
func (u *User) Sanitize() *User {
	clean := *u
	clean.PasswordHash = ""
	return &clean
}
