// Package document contains the Document aggregate, the uploaded compliance
// or identity file verified by operators before a booking is complete.
//
// Verification is one-shot from pending to approved or rejected, with a
// requires_revision loop back through pending on resubmission. Expiry of an
// approved document is advisory: IsExpired and ExpiresWithin are derived on
// read and never change the stored status.
package document
