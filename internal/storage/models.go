package storage

// User is the account row consumed by the authentication flow. The table is
// owned by the wider clinic system; this service only reads it.
type User struct {
	ID           int64
	TenantID     int64
	Email        string
	CPF          *string
	PasswordHash string
	IsActive     bool
	IsSuperuser  bool
}
