package services

import (
	"shipping/internal/core/domain/model/document"
)

// DefaultRequiredTypes is the standard checklist a booking must satisfy
// before it is considered documentation-complete.
func DefaultRequiredTypes() []document.Type {
	return []document.Type{
		document.TypePassport,
		document.TypeInvoice,
		document.TypeInsurance,
		document.TypeCustoms,
	}
}

// ChecklistItem reports one required document type and whether at least one
// approved document of that type exists for the booking.
type ChecklistItem struct {
	Type      document.Type
	Satisfied bool
}

// Checklist is the completeness view over a booking's documents. Complete is
// true only when every required type is satisfied.
type Checklist struct {
	Items    []ChecklistItem
	Complete bool
}

// DocumentChecklist is a domain service deriving booking-level documentation
// completeness from a fixed required-type list. A type is satisfied when at
// least one document of that type is approved; pending, rejected, and
// revision documents never count. Expired approved documents still count,
// expiry stays an advisory signal surfaced separately.
type DocumentChecklist struct {
	requiredTypes []document.Type
}

// NewDocumentChecklist creates a checklist service over the given required
// types. An empty list falls back to the default checklist.
func NewDocumentChecklist(requiredTypes []document.Type) (DocumentChecklist, error) {
	if len(requiredTypes) == 0 {
		requiredTypes = DefaultRequiredTypes()
	}
	for _, docType := range requiredTypes {
		if err := docType.Validate(); err != nil {
			return DocumentChecklist{}, err
		}
	}
	return DocumentChecklist{requiredTypes: requiredTypes}, nil
}

// RequiredTypes returns the configured checklist.
func (c DocumentChecklist) RequiredTypes() []document.Type {
	return c.requiredTypes
}

// Completeness evaluates a booking's documents against the required types.
// The documents must all belong to the same booking; the caller loads them.
func (c DocumentChecklist) Completeness(documents []*document.Document) (Checklist, error) {
	approved := make(map[document.Type]bool, len(documents))
	for _, doc := range documents {
		if err := doc.Validate(); err != nil {
			return Checklist{}, err
		}
		if doc.Status() == document.StatusApproved {
			approved[doc.Type()] = true
		}
	}

	result := Checklist{
		Items:    make([]ChecklistItem, 0, len(c.requiredTypes)),
		Complete: true,
	}
	for _, docType := range c.requiredTypes {
		satisfied := approved[docType]
		result.Items = append(result.Items, ChecklistItem{Type: docType, Satisfied: satisfied})
		if !satisfied {
			result.Complete = false
		}
	}

	return result, nil
}
