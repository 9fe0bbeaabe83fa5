package engine

import orderbookv1 "github.com/NassimBoussaid/Matching-Engine/internal/domain/orderbook/v1"

// Stats holds per-status event counts for one engine run.
type Stats struct {
	Executed          int
	PartiallyExecuted int
	Pending           int
	Canceled          int
	Rejected          int
}

func (s *Stats) count(status orderbookv1.Status) {
	switch status {
	case orderbookv1.StatusExecuted:
		s.Executed++
	case orderbookv1.StatusPartiallyExecuted:
		s.PartiallyExecuted++
	case orderbookv1.StatusPending:
		s.Pending++
	case orderbookv1.StatusCanceled:
		s.Canceled++
	case orderbookv1.StatusRejected:
		s.Rejected++
	}
}

// Total returns the number of counted events.
func (s Stats) Total() int {
	return s.Executed + s.PartiallyExecuted + s.Pending + s.Canceled + s.Rejected
}
