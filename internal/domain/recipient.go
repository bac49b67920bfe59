package domain

import (
	"context"
	"fmt"
)

// RecipientRef names the user a command refers to: either a bare handle
// still to be resolved or an already known id.
type RecipientRef interface {
	recipientRef()
}

// HandleRef is an @handle typed in a command
type HandleRef struct {
	Handle string
}

// ResolvedRef is a user picked through a text mention
type ResolvedRef struct {
	UserID int64
}

func (HandleRef) recipientRef()   {}
func (ResolvedRef) recipientRef() {}

// ResolveRecipient returns the numeric id behind ref
func ResolveRecipient(ctx context.Context, resolver UsernameResolver, ref RecipientRef) (int64, error) {
	switch r := ref.(type) {
	case ResolvedRef:
		return r.UserID, nil
	case HandleRef:
		id, err := resolver.Resolve(ctx, r.Handle)
		if err != nil {
			return 0, err
		}
		if id == 0 {
			return 0, ErrUserNotFound
		}
		return id, nil
	default:
		return 0, fmt.Errorf("unsupported recipient %T", ref)
	}
}
