package models

// PermissionLevel is the two-tier authorization level of an account.
// The wire representation is the bare string "User" or "Admin".
type PermissionLevel string

const (
	// PermissionUser is the ordinary, non-privileged permission level.
	PermissionUser PermissionLevel = "User"

	// PermissionAdmin grants administrative access: account management and
	// mutation of resources owned by other accounts.
	PermissionAdmin PermissionLevel = "Admin"
)

// Valid reports whether p is one of the known permission levels.
// Unknown values arriving in request bodies must be rejected before storage.
func (p PermissionLevel) Valid() bool {
	return p == PermissionUser || p == PermissionAdmin
}

// Account is the persistent account record held by the credential store.
// Name doubles as the login handle and is unique across all accounts;
// ID never changes once assigned.
type Account struct {
	// ID is the stable unique identifier of the account (UUID string).
	ID string `json:"_id"`

	// Name is the unique display name, used as the login handle and as the
	// owner reference target for ownership checks.
	Name string `json:"name"`

	// PasswordHash is the keyed one-way digest of the account password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// Permissions is the account's authorization tier.
	Permissions PermissionLevel `json:"permissions"`

	// Bio is optional free-form profile text.
	Bio string `json:"bio,omitempty"`
}

// AccountWrite is the inbound payload for creating or replacing an account.
// Password arrives in plaintext and is hashed before it reaches the store.
type AccountWrite struct {
	Name        string          `json:"name"`
	Password    string          `json:"password"`
	Permissions PermissionLevel `json:"permissions"`
	Bio         string          `json:"bio,omitempty"`
}

// AccountRead is the full outbound representation of an account.
// The password hash is deliberately absent.
type AccountRead struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Permissions PermissionLevel `json:"permissions"`
	Bio         string          `json:"bio,omitempty"`
}

// AccountBrief is the short outbound representation used in listings and
// embedded author references.
type AccountBrief struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Credentials is the payload of a token request.
type Credentials struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Read converts the stored account into its full read model.
func (a Account) Read() AccountRead {
	return AccountRead{
		ID:          a.ID,
		Name:        a.Name,
		Permissions: a.Permissions,
		Bio:         a.Bio,
	}
}

// Brief converts the stored account into its listing/reference model.
func (a Account) Brief() AccountBrief {
	return AccountBrief{
		ID:   a.ID,
		Name: a.Name,
	}
}

// TableName returns the name of the database table associated with Account.
func (a Account) TableName() string {
	return "accounts"
}
