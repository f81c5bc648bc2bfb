package apikey

import (
	"fmt"
	"time"

	"managesalary/internal/infrastructure/api"
)

// PermissionCreateRecords lets programmatic callers append records without a
// session token.
const PermissionCreateRecords = "create_records"

// Key is a long-lived API key as the account sees it. The secret itself is
// only ever surfaced once, at creation.
type Key struct {
	ID          string
	Name        string
	Permissions []string
	ExpiresAt   time.Time
	CreatedAt   time.Time
	Active      bool
}

// Created is the one-time creation result carrying the secret.
type Created struct {
	Secret      string
	Name        string
	Permissions []string
	ExpiresAt   time.Time
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

const expiryLayout = "2006-01-02"

// CreateParams describes a new key. ExpiresAt is a YYYY-MM-DD date or empty
// for a non-expiring key.
type CreateParams struct {
	Name        string
	Permissions []string
	ExpiresAt   string
}

func (p CreateParams) Validate() (api.CreateAPIKeyRequest, error) {
	if p.Name == "" {
		return api.CreateAPIKeyRequest{}, &ValidationError{Field: "name", Reason: "name is required"}
	}
	req := api.CreateAPIKeyRequest{
		Name:        p.Name,
		Permissions: p.Permissions,
	}
	if p.ExpiresAt != "" {
		parsed, err := time.Parse(expiryLayout, p.ExpiresAt)
		if err != nil {
			return api.CreateAPIKeyRequest{}, &ValidationError{Field: "expiresAt", Reason: "expected YYYY-MM-DD"}
		}
		req.ExpiresAt = parsed.UTC().Format(time.RFC3339)
	}
	return req, nil
}

// UpdateParams is a partial key update; nil fields are left untouched.
type UpdateParams struct {
	Permissions []string
	ExpiresAt   *string
	Active      *bool
}

func (p UpdateParams) Validate() (api.UpdateAPIKeyRequest, error) {
	req := api.UpdateAPIKeyRequest{
		Permissions: p.Permissions,
		Active:      p.Active,
	}
	if p.ExpiresAt != nil {
		if *p.ExpiresAt == "" {
			return api.UpdateAPIKeyRequest{}, &ValidationError{Field: "expiresAt", Reason: "expected YYYY-MM-DD"}
		}
		parsed, err := time.Parse(expiryLayout, *p.ExpiresAt)
		if err != nil {
			return api.UpdateAPIKeyRequest{}, &ValidationError{Field: "expiresAt", Reason: "expected YYYY-MM-DD"}
		}
		req.ExpiresAt = parsed.UTC().Format(time.RFC3339)
	}
	if req.Permissions == nil && req.ExpiresAt == "" && req.Active == nil {
		return api.UpdateAPIKeyRequest{}, &ValidationError{Field: "update", Reason: "no fields to update"}
	}
	return req, nil
}
