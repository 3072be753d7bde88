package document_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFile(t *testing.T) document.FileMeta {
	t.Helper()
	f, err := document.NewFileMeta("passport.pdf", "documents/2026/09/passport.pdf", 204800, "application/pdf")
	require.NoError(t, err)
	return f
}

func newPendingDocument(t *testing.T, docType document.Type, now time.Time) *document.Document {
	t.Helper()
	d, err := document.NewDocument(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		docType,
		testFile(t),
		nil,
		now,
	)
	require.NoError(t, err)
	return d
}

func TestNewDocument(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("starts pending", func(t *testing.T) {
		d := newPendingDocument(t, document.TypePassport, now)
		assert.Equal(t, document.StatusPending, d.Status())
		assert.Nil(t, d.VerifiedBy())
		assert.Nil(t, d.VerifiedAt())
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		_, err := document.NewDocument(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			document.TypeUnknown, testFile(t), nil, now,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d document.Document
		require.ErrorIs(t, d.Validate(), document.ErrDocumentIsNotConstructed)
	})
}

func TestDocument_Approve(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("records the reviewer", func(t *testing.T) {
		d := newPendingDocument(t, document.TypeInvoice, now)
		operator := kernel.NewOperatorActor(kernel.NewUUID())

		require.NoError(t, d.Approve(operator, "matches booking details", now))
		assert.Equal(t, document.StatusApproved, d.Status())
		assert.Equal(t, "matches booking details", d.VerificationNote())
		require.NotNil(t, d.VerifiedBy())
		assert.True(t, d.VerifiedBy().IsEqual(operator))
	})

	t.Run("cannot approve twice", func(t *testing.T) {
		d := newPendingDocument(t, document.TypeInvoice, now)
		operator := kernel.NewOperatorActor(kernel.NewUUID())
		require.NoError(t, d.Approve(operator, "", now))

		require.ErrorIs(t, d.Approve(operator, "", now), errs.ErrInvalidTransition)
	})
}

func TestDocument_Reject(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("requires a reason", func(t *testing.T) {
		d := newPendingDocument(t, document.TypeInsurance, now)
		err := d.Reject(kernel.NewOperatorActor(kernel.NewUUID()), "", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, document.StatusPending, d.Status())
	})

	t.Run("stores the reason", func(t *testing.T) {
		d := newPendingDocument(t, document.TypeInsurance, now)
		require.NoError(t, d.Reject(kernel.NewOperatorActor(kernel.NewUUID()), "policy lapsed", now))
		assert.Equal(t, document.StatusRejected, d.Status())
		assert.Equal(t, "policy lapsed", d.RejectionReason())
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		d := newPendingDocument(t, document.TypeInsurance, now)
		operator := kernel.NewOperatorActor(kernel.NewUUID())
		require.NoError(t, d.Reject(operator, "policy lapsed", now))

		require.ErrorIs(t, d.Approve(operator, "", now), errs.ErrInvalidTransition)
	})
}

func TestDocument_RevisionLoop(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("revision then resubmission reopens review", func(t *testing.T) {
		d := newPendingDocument(t, document.TypeCustoms, now)
		operator := kernel.NewOperatorActor(kernel.NewUUID())

		require.NoError(t, d.RequestRevision(operator, "stamp page missing", now))
		assert.Equal(t, document.StatusRequiresRevision, d.Status())
		assert.Equal(t, "stamp page missing", d.RejectionReason())

		corrected, err := document.NewFileMeta("customs-v2.pdf", "documents/2026/09/customs-v2.pdf", 312000, "application/pdf")
		require.NoError(t, err)

		later := now.AddDate(0, 0, 2)
		require.NoError(t, d.Resubmit(corrected, later))
		assert.Equal(t, document.StatusPending, d.Status())
		assert.Equal(t, "customs-v2.pdf", d.File().FileName())
		assert.Equal(t, later, d.UploadedAt())
		assert.Empty(t, d.RejectionReason())
		assert.Nil(t, d.VerifiedBy())
	})

	t.Run("revision requires a reason", func(t *testing.T) {
		d := newPendingDocument(t, document.TypeCustoms, now)
		err := d.RequestRevision(kernel.NewOperatorActor(kernel.NewUUID()), "", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("pending documents cannot be resubmitted", func(t *testing.T) {
		d := newPendingDocument(t, document.TypeCustoms, now)
		require.ErrorIs(t, d.Resubmit(testFile(t), now), errs.ErrInvalidTransition)
	})
}

func TestDocument_Expiry(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("advisory flags over an approved document", func(t *testing.T) {
		expiry := now.AddDate(0, 0, 10)
		d, err := document.NewDocument(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			document.TypePassport, testFile(t), &expiry, now,
		)
		require.NoError(t, err)
		require.NoError(t, d.Approve(kernel.NewOperatorActor(kernel.NewUUID()), "", now))

		assert.False(t, d.IsExpired(now))
		assert.True(t, d.ExpiresWithin(now, 30))
		assert.False(t, d.ExpiresWithin(now, 5))

		past := now.AddDate(0, 0, 11)
		assert.True(t, d.IsExpired(past))
		assert.True(t, d.ExpiresWithin(past, 0))
		assert.Equal(t, document.StatusApproved, d.Status())
	})

	t.Run("non-expiring documents never flag", func(t *testing.T) {
		d := newPendingDocument(t, document.TypeInvoice, now)
		assert.False(t, d.IsExpired(now.AddDate(10, 0, 0)))
		assert.False(t, d.ExpiresWithin(now, 365))
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    document.Status
		to      document.Status
		allowed bool
	}{
		{"pending to approved", document.StatusPending, document.StatusApproved, true},
		{"pending to rejected", document.StatusPending, document.StatusRejected, true},
		{"pending to requires_revision", document.StatusPending, document.StatusRequiresRevision, true},
		{"requires_revision to pending", document.StatusRequiresRevision, document.StatusPending, true},
		{"requires_revision to approved", document.StatusRequiresRevision, document.StatusApproved, false},
		{"approved is terminal", document.StatusApproved, document.StatusRejected, false},
		{"rejected is terminal", document.StatusRejected, document.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.TransitionTo(tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, got)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
			}
		})
	}
}

func TestTypeFromString(t *testing.T) {
	got, err := document.TypeFromString("insurance")
	require.NoError(t, err)
	assert.Equal(t, document.TypeInsurance, got)

	_, err = document.TypeFromString("visa")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
