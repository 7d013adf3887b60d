package models

// Identity provider identifiers stored in AuthProvider.Provider.
const (
	ProviderCredentials = "credentials"
	ProviderGoogle      = "google"
)

// AuthProvider links a user to one identity method. ProviderID is the email
// address for credentials accounts and the external subject id for OAuth.
type AuthProvider struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"not null;index" json:"userId"`
	Provider   string `gorm:"size:32;not null;uniqueIndex:idx_provider_subject" json:"provider"`
	ProviderID string `gorm:"size:255;not null;uniqueIndex:idx_provider_subject;column:provider_id" json:"providerId"`
}
