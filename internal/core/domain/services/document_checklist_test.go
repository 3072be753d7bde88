package services_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocument(t *testing.T, bookingID kernel.UUID, docType document.Type, approved bool) *document.Document {
	t.Helper()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	file, err := document.NewFileMeta("scan.pdf", "documents/scan.pdf", 1024, "application/pdf")
	require.NoError(t, err)

	d, err := document.NewDocument(kernel.NewUUID(), bookingID, kernel.NewUUID(), docType, file, nil, now)
	require.NoError(t, err)

	if approved {
		require.NoError(t, d.Approve(kernel.NewOperatorActor(kernel.NewUUID()), "", now))
	}
	return d
}

func TestDocumentChecklist_Completeness(t *testing.T) {
	checklist, err := services.NewDocumentChecklist(nil)
	require.NoError(t, err)
	bookingID := kernel.NewUUID()

	t.Run("incomplete until every required type approves", func(t *testing.T) {
		docs := []*document.Document{
			newDocument(t, bookingID, document.TypePassport, true),
			newDocument(t, bookingID, document.TypeInvoice, true),
			newDocument(t, bookingID, document.TypeCustoms, true),
			newDocument(t, bookingID, document.TypeInsurance, false),
		}

		result, err := checklist.Completeness(docs)
		require.NoError(t, err)
		assert.False(t, result.Complete)

		for _, item := range result.Items {
			if item.Type == document.TypeInsurance {
				assert.False(t, item.Satisfied)
			} else {
				assert.True(t, item.Satisfied)
			}
		}
	})

	t.Run("complete once the last type approves", func(t *testing.T) {
		docs := []*document.Document{
			newDocument(t, bookingID, document.TypePassport, true),
			newDocument(t, bookingID, document.TypeInvoice, true),
			newDocument(t, bookingID, document.TypeCustoms, true),
			newDocument(t, bookingID, document.TypeInsurance, true),
		}

		result, err := checklist.Completeness(docs)
		require.NoError(t, err)
		assert.True(t, result.Complete)
	})

	t.Run("rejected documents never satisfy", func(t *testing.T) {
		now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		rejected := newDocument(t, bookingID, document.TypePassport, false)
		require.NoError(t, rejected.Reject(kernel.NewOperatorActor(kernel.NewUUID()), "photo unreadable", now))

		result, err := checklist.Completeness([]*document.Document{rejected})
		require.NoError(t, err)
		assert.False(t, result.Complete)
	})

	t.Run("extra types are ignored", func(t *testing.T) {
		narrow, err := services.NewDocumentChecklist([]document.Type{document.TypePassport})
		require.NoError(t, err)

		docs := []*document.Document{
			newDocument(t, bookingID, document.TypePassport, true),
			newDocument(t, bookingID, document.TypeOther, false),
		}

		result, err := narrow.Completeness(docs)
		require.NoError(t, err)
		assert.True(t, result.Complete)
		assert.Len(t, result.Items, 1)
	})
}

func TestNewDocumentChecklist(t *testing.T) {
	t.Run("empty list falls back to the default checklist", func(t *testing.T) {
		checklist, err := services.NewDocumentChecklist(nil)
		require.NoError(t, err)
		assert.Equal(t, services.DefaultRequiredTypes(), checklist.RequiredTypes())
	})

	t.Run("rejects invalid types", func(t *testing.T) {
		_, err := services.NewDocumentChecklist([]document.Type{document.TypeUnknown})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
