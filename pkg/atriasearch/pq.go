package atriasearch

import "github.com/orneryd/atria/internal/atriaerr"

// searchPQ is a fixed-capacity min-heap of SearchItem ordered by ascending
// DMin, hand-rolled for the same reason as atrianeighbor.NeighborHeap:
// container/heap's interface{}-based Push/Pop would box every SearchItem.
// Unlike the neighbor heap, searchPQ never evicts — once full, Push
// reports ErrCapacityExceeded instead of growing or dropping an item,
// since either would silently corrupt the best-first guarantee.
type searchPQ struct {
	items []SearchItem
}

func newSearchPQ(capacity int) *searchPQ {
	return &searchPQ{items: make([]SearchItem, 0, capacity)}
}

func (pq *searchPQ) reset() { pq.items = pq.items[:0] }

func (pq *searchPQ) len() int { return len(pq.items) }

func (pq *searchPQ) capacity() int { return cap(pq.items) }

func (pq *searchPQ) push(item SearchItem) error {
	if len(pq.items) == cap(pq.items) {
		return errorf(atriaerr.CapacityExceeded, ErrCapacityExceeded, "atriasearch: capacity %d", cap(pq.items))
	}
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
	return nil
}

func (pq *searchPQ) pop() (SearchItem, bool) {
	if len(pq.items) == 0 {
		return SearchItem{}, false
	}
	top := pq.items[0]
	last := len(pq.items) - 1
	pq.items[0] = pq.items[last]
	pq.items = pq.items[:last]
	if len(pq.items) > 0 {
		pq.siftDown(0)
	}
	return top, true
}

func (pq *searchPQ) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if pq.items[parent].DMin <= pq.items[i].DMin {
			break
		}
		pq.items[parent], pq.items[i] = pq.items[i], pq.items[parent]
		i = parent
	}
}

func (pq *searchPQ) siftDown(i int) {
	n := len(pq.items)
	for {
		left := 2*i + 1
		right := 2*i + 2
		smallest := i
		if left < n && pq.items[left].DMin < pq.items[smallest].DMin {
			smallest = left
		}
		if right < n && pq.items[right].DMin < pq.items[smallest].DMin {
			smallest = right
		}
		if smallest == i {
			return
		}
		pq.items[i], pq.items[smallest] = pq.items[smallest], pq.items[i]
		i = smallest
	}
}
