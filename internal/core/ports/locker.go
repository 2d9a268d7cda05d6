package ports

import "context"

// TenderLocker serializes mutations scoped to a single tender: a concurrent
// close and bid submission, or an award racing a bid delete, must not
// interleave. The mongo writes themselves are single-document atomic; the
// lock orders the read-check-write sequences built on top of them.
type TenderLocker interface {
	// Lock acquires the tender-scoped lock and returns its release function.
	Lock(ctx context.Context, tenderID string) (func(), error)
}
