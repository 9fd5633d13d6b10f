package auth

// CredentialVerifier abstracts how a stored credential is produced and
// checked. The default is bcrypt. A plaintext verifier exists only
// because legacy data was stored with exact string equality; storing
// credentials in clear text is a known security defect and must never be
// enabled outside of compatibility scenarios.
type CredentialVerifier interface {
	// Store converts a raw password into its stored representation.
	Store(password string) (string, error)
	// Verify reports whether the raw password matches the stored value.
	Verify(password, stored string) bool
}

type BcryptVerifier struct{}

func (BcryptVerifier) Store(password string) (string, error) {
	return HashPassword(password)
}

func (BcryptVerifier) Verify(password, stored string) bool {
	return CheckPasswordHash(password, stored)
}

// PlaintextVerifier preserves the exact string-equality semantics of the
// legacy data set. Security defect by construction; see DESIGN.md.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Store(password string) (string, error) {
	return password, nil
}

func (PlaintextVerifier) Verify(password, stored string) bool {
	return password == stored
}

// NewVerifier selects a verifier by config name. Unknown names fall back
// to bcrypt.
func NewVerifier(name string) CredentialVerifier {
	if name == "plaintext" {
		return PlaintextVerifier{}
	}
	return BcryptVerifier{}
}
