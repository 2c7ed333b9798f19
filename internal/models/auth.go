package models

// AuthResult is returned by register, login and refresh: a fresh token pair
// plus the public projection of the subject.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         UserPublic
}
