package storage

import (
	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// credentialModelToDomain converts a CredentialModel (GORM) to domain.Credential
func credentialModelToDomain(m CredentialModel) domain.Credential {
	return domain.Credential{
		Email: m.Email,
		Token: domain.Token{
			AccessToken: m.AccessToken,
			TokenType:   m.TokenType,
		},
	}
}

// domainToCredentialModel converts a domain.Credential to CredentialModel (GORM)
func domainToCredentialModel(c domain.Credential) CredentialModel {
	tokenType := c.Token.TokenType
	if tokenType == "" {
		tokenType = "bearer"
	}
	return CredentialModel{
		AccessToken: c.Token.AccessToken,
		Email:       c.Email,
		ID:          credentialRowID,
		TokenType:   tokenType,
	}
}
