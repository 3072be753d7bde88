package commands

import (
	"errors"
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrExpireQuotesCommandIsNotConstructed = errors.New(
	"ExpireQuotesCommand must be created via NewExpireQuotesCommand constructor",
)

// ExpireQuotesCommand represents the periodic sweep that expires pending
// quotes whose validity lapsed before the given instant.
type ExpireQuotesCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireQuotesCommand creates a sweep command pinned to the given instant.
func NewExpireQuotesCommand(now time.Time) (ExpireQuotesCommand, error) {
	cmd := ExpireQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNow(now); err != nil {
		return ExpireQuotesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireQuotesCommand) Validate() error {
	return c.guard.Validate(ErrExpireQuotesCommandIsNotConstructed)
}

// Now returns the sweep's reference instant.
func (c ExpireQuotesCommand) Now() time.Time {
	return c.now
}

func (c *ExpireQuotesCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("sweep time")
	}
	c.now = now
	return nil
}
