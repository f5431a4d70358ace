package storage

import "time"

// TargetDurationModel is the GORM model for the target_durations table.
// Rows are keyed by the server's session id.
type TargetDurationModel struct {
	CreatedAt time.Time
	Minutes   int `gorm:"not null;check:minutes > 0"`
	SessionID int `gorm:"primaryKey;autoIncrement:false"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (TargetDurationModel) TableName() string { return "target_durations" }

// CredentialModel is the GORM model for the credentials table. Only one row
// (id 1) is ever written.
type CredentialModel struct {
	AccessToken string `gorm:"not null"`
	CreatedAt   time.Time
	Email       string `gorm:"not null;default:''"`
	ID          int    `gorm:"primaryKey;autoIncrement:false"`
	TokenType   string `gorm:"not null;default:'bearer'"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (CredentialModel) TableName() string { return "credentials" }

// PreferenceModel is the GORM model for the preferences table
type PreferenceModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey;column:pref_key"`
	UpdatedAt time.Time
	Value     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (PreferenceModel) TableName() string { return "preferences" }

const credentialRowID = 1
