package orderbookv1

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Ladder is one side of the book: price levels kept sorted best-first.
// The buy side sorts by descending price, the sell side by ascending price,
// so the best level is always at index zero.
type Ladder struct {
	descending bool
	levels     []*Level
}

// NewBidLadder creates a ladder sorted by descending price.
func NewBidLadder() *Ladder {
	return &Ladder{descending: true}
}

// NewAskLadder creates a ladder sorted by ascending price.
func NewAskLadder() *Ladder {
	return &Ladder{descending: false}
}

// search returns the index at which price sorts into the ladder. If a level
// with that exact price exists, it is at the returned index.
func (l *Ladder) search(price decimal.Decimal) int {
	return sort.Search(len(l.levels), func(i int) bool {
		cmp := l.levels[i].Price.Cmp(price)
		if l.descending {
			return cmp <= 0
		}
		return cmp >= 0
	})
}

// Best returns the level with price priority, or nil if the side is empty.
func (l *Ladder) Best() *Level {
	if len(l.levels) == 0 {
		return nil
	}
	return l.levels[0]
}

// Find returns the level resting at exactly price, or nil.
func (l *Ladder) Find(price decimal.Decimal) *Level {
	i := l.search(price)
	if i < len(l.levels) && l.levels[i].Price.Equal(price) {
		return l.levels[i]
	}
	return nil
}

// Upsert returns the level at price, creating and inserting it if absent.
func (l *Ladder) Upsert(price decimal.Decimal) *Level {
	i := l.search(price)
	if i < len(l.levels) && l.levels[i].Price.Equal(price) {
		return l.levels[i]
	}

	level := NewLevel(price)
	l.levels = append(l.levels, nil)
	copy(l.levels[i+1:], l.levels[i:])
	l.levels[i] = level
	return level
}

// Remove deletes the level resting at price, if any.
func (l *Ladder) Remove(price decimal.Decimal) {
	i := l.search(price)
	if i < len(l.levels) && l.levels[i].Price.Equal(price) {
		l.levels = append(l.levels[:i], l.levels[i+1:]...)
	}
}

// RemoveBest deletes the level at index zero.
func (l *Ladder) RemoveBest() {
	if len(l.levels) > 0 {
		l.levels = l.levels[1:]
	}
}

// Len returns the number of price levels on this side.
func (l *Ladder) Len() int {
	return len(l.levels)
}

// Levels returns the underlying slice, best level first.
func (l *Ladder) Levels() []*Level {
	return l.levels
}
