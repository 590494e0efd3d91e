// quillsign/models.go
package quillsign

import "time"

// Template represents a reusable document template.
type Template struct {
	TemplateID   string `json:"template_id"`
	TemplateName string `json:"template_name"`
	PageCount    int    `json:"page_count,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// TemplateList is the response envelope of the list-templates operation.
type TemplateList struct {
	Templates []Template `json:"templates"`
}

// Recipient is a signer attached to a document.
type Recipient struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RoleName  string `json:"role_name"`
	Locale    string `json:"locale,omitempty"`
}

// Document represents a document in the signing workflow.
type Document struct {
	DocumentID   string      `json:"document_id"`
	DocumentName string      `json:"document_name,omitempty"`
	TemplateID   string      `json:"template_id,omitempty"`
	Status       string      `json:"status,omitempty"`
	Recipients   []Recipient `json:"recipients,omitempty"`
	CreatedAt    string      `json:"created_at,omitempty"`
}

// DocumentList is the response envelope of the list-documents operation.
type DocumentList struct {
	Documents []Document `json:"documents"`
	Limit     int        `json:"limit,omitempty"`
	Offset    int        `json:"offset,omitempty"`
	Total     int        `json:"total,omitempty"`
}

// CreateDocumentRequest describes a document to create from a template.
// ExpirationDate is optional; when set it is serialized as ISO-8601.
type CreateDocumentRequest struct {
	Name                string
	TemplateID          string
	Recipients          []Recipient
	UserDefinedMetadata string
	ExpirationDate      *time.Time
}

// createDocumentPayload is the wire shape of the create-document body.
type createDocumentPayload struct {
	Name                string      `json:"name"`
	TemplateID          string      `json:"template_id"`
	Recipients          []Recipient `json:"recipients"`
	UserDefinedMetadata string      `json:"user_defined_metadata,omitempty"`
	ExpirationDate      string      `json:"expiration_date,omitempty"`
}

// Credits reports the account's remaining balances.
type Credits struct {
	DocumentCredits int `json:"document_credits"`
	APICredits      int `json:"api_credits,omitempty"`
}
