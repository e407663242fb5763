package entity

// ChallengePurpose distinguishes which flow issued a one-time code, so
// a code generated for one flow can never complete another.
type ChallengePurpose string

const (
	// ChallengePurposeRegister gates account creation.
	ChallengePurposeRegister ChallengePurpose = "register"
	// ChallengePurposeLogin gates token issuance.
	ChallengePurposeLogin ChallengePurpose = "login"
	// ChallengePurposePasswordReset gates password replacement.
	ChallengePurposePasswordReset ChallengePurpose = "password_reset"
)

// String returns the purpose as stored and logged.
func (p ChallengePurpose) String() string {
	return string(p)
}
