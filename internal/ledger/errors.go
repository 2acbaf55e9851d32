package ledger

import "errors"

var (
	// ErrBelowMinimum rejects a contribution whose converted value is under
	// the minimum threshold.
	ErrBelowMinimum = errors.New("ledger: contribution below minimum")
	// ErrNotOwner rejects a withdrawal by anyone other than the owner.
	ErrNotOwner = errors.New("ledger: caller is not the owner")
	// ErrTransferFailed reports that the value release step could not complete.
	ErrTransferFailed = errors.New("ledger: transfer failed")
	// ErrIndexOutOfRange reports a contributor lookup past the sequence bounds.
	ErrIndexOutOfRange = errors.New("ledger: contributor index out of range")
)
