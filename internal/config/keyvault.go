package config

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
)

// Ensure KeyVaultStore implements SecretStore
var _ SecretStore = (*KeyVaultStore)(nil)

// KeyVaultStore reads secrets from Azure Key Vault using the default Azure
// credential chain (environment, managed identity, Azure CLI).
type KeyVaultStore struct {
	client *azsecrets.Client
}

// NewKeyVaultStore creates a store for the vault at vaultURI.
func NewKeyVaultStore(vaultURI string) (*KeyVaultStore, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure credential: %w", err)
	}

	client, err := azsecrets.NewClient(vaultURI, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create key vault client: %w", err)
	}

	return &KeyVaultStore{client: client}, nil
}

// GetSecret returns the latest version of the named secret.
func (s *KeyVaultStore) GetSecret(ctx context.Context, name string) (string, error) {
	resp, err := s.client.GetSecret(ctx, name, "", nil)
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", name, err)
	}
	if resp.Value == nil {
		return "", fmt.Errorf("secret %s has no value", name)
	}
	return *resp.Value, nil
}
