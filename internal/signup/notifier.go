package signup

import "context"

// Notifier dispatches the activation message for a newly created user. The
// token must reach the recipient verbatim so the external activation flow
// can redeem it.
type Notifier interface {
	SendActivation(ctx context.Context, email, token, locale string) error
}
