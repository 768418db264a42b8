package service

// authorizeOwner is the single ownership guard used by every task-mutating
// operation. The existence of a resource is checked before calling it, so an
// ownership mismatch deliberately yields ErrAccessDenied (403) rather than a
// not-found.
func authorizeOwner(authenticatedUserID, resourceOwnerID string) error {
	if authenticatedUserID != resourceOwnerID {
		return ErrAccessDenied
	}
	return nil
}
