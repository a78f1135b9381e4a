package repository

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/okian/lineup/internal/domain/types"
)

// Treap-based, in-memory Store implementation.
//
// Ordering: score DESC, then first-put sequence ASC. "less" means ranks
// earlier, so in-order traversal yields the ranking from best to worst.

// scoreScale fixes scores to 1e-9 so equal floats compare equal after
// arithmetic noise.
const scoreScale = 1_000_000_000

type scoreFP int64

func toFixedPoint(x float64) scoreFP {
	if math.IsNaN(x) {
		return 0
	}
	scaled := math.Round(x * scoreScale)
	if scaled >= math.MaxInt64 {
		return scoreFP(math.MaxInt64)
	}
	if scaled <= math.MinInt64 {
		return scoreFP(math.MinInt64)
	}
	return scoreFP(scaled)
}

func toFloat(x scoreFP) float64 {
	return float64(x) / scoreScale
}

// record is the current best for one player.
type record struct {
	name  string
	score scoreFP
	seq   uint64
}

type node struct {
	id    string
	score scoreFP
	seq   uint64
	prio  uint64
	left  *node
	right *node
	size  int
}

func nsize(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func fix(n *node) {
	if n != nil {
		n.size = 1 + nsize(n.left) + nsize(n.right)
	}
}

func less(aScore scoreFP, aSeq uint64, bScore scoreFP, bSeq uint64) bool {
	if aScore != bScore {
		return aScore > bScore
	}
	return aSeq < bSeq
}

// priority scrambles the sequence number (splitmix64) so insertion order
// does not degrade the tree.
func priority(seq uint64) uint64 {
	z := seq + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y
	fix(y)
	fix(x)
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x
	fix(x)
	fix(y)
	return y
}

func insert(n *node, id string, score scoreFP, seq uint64) *node {
	if n == nil {
		return &node{id: id, score: score, seq: seq, prio: priority(seq), size: 1}
	}
	if less(score, seq, n.score, n.seq) {
		n.left = insert(n.left, id, score, seq)
		if n.left.prio > n.prio {
			n = rotateRight(n)
		}
	} else {
		n.right = insert(n.right, id, score, seq)
		if n.right.prio > n.prio {
			n = rotateLeft(n)
		}
	}
	fix(n)
	return n
}

func deleteNode(n *node, score scoreFP, seq uint64) *node {
	if n == nil {
		return nil
	}
	switch {
	case score == n.score && seq == n.seq:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		if n.left.prio > n.right.prio {
			n = rotateRight(n)
			n.right = deleteNode(n.right, score, seq)
		} else {
			n = rotateLeft(n)
			n.left = deleteNode(n.left, score, seq)
		}
	case less(score, seq, n.score, n.seq):
		n.left = deleteNode(n.left, score, seq)
	default:
		n.right = deleteNode(n.right, score, seq)
	}
	fix(n)
	return n
}

// rankOf counts the nodes ordered before (score, seq), plus one.
func rankOf(n *node, score scoreFP, seq uint64) int {
	rank := 1
	for n != nil {
		if less(n.score, n.seq, score, seq) {
			rank += nsize(n.left) + 1
			n = n.right
		} else {
			n = n.left
		}
	}
	return rank
}

// collectTopN appends up to limit entries in rank order.
func collectTopN(n *node, limit int, records map[string]record, out *[]types.Entry) {
	if n == nil || len(*out) >= limit {
		return
	}
	collectTopN(n.left, limit, records, out)
	if len(*out) < limit {
		rec := records[n.id]
		*out = append(*out, types.Entry{Rank: len(*out) + 1, PlayerID: n.id, Name: rec.name, Score: toFloat(rec.score)})
	}
	if len(*out) < limit {
		collectTopN(n.right, limit, records, out)
	}
}

var _ Store = (*TreapStore)(nil)

// TreapStore is safe for concurrent use.
type TreapStore struct {
	mu       sync.RWMutex
	root     *node
	byID     map[string]record
	nextSeq  uint64
	capacity int
}

// NewTreapStore constructs a treap store with configuration options.
func NewTreapStore(opts ...Option) *TreapStore {
	s := &TreapStore{}
	for _, opt := range opts {
		opt(s)
	}
	s.byID = make(map[string]record, s.capacity)
	return s
}

// Put implements Store.Put in O(log n) expected time.
func (s *TreapStore) Put(_ context.Context, playerID, name string, score float64) (bool, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return false, ErrEmptyID
	}
	ns := toFixedPoint(score)

	s.mu.Lock()
	defer s.mu.Unlock()
	seq := s.nextSeq
	if old, ok := s.byID[playerID]; ok {
		if ns <= old.score {
			return false, nil
		}
		s.root = deleteNode(s.root, old.score, old.seq)
		seq = old.seq
	} else {
		s.nextSeq++
	}
	s.byID[playerID] = record{name: name, score: ns, seq: seq}
	s.root = insert(s.root, playerID, ns, seq)
	return true, nil
}

// Rank implements Store.Rank in O(log n) expected time.
func (s *TreapStore) Rank(_ context.Context, playerID string) (types.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byID[playerID]
	if !ok {
		return types.Entry{}, fmt.Errorf("%w: %q", ErrNotFound, playerID)
	}
	return types.Entry{
		Rank:     rankOf(s.root, rec.score, rec.seq),
		PlayerID: playerID,
		Name:     rec.name,
		Score:    toFloat(rec.score),
	}, nil
}

// TopN implements Store.TopN.
func (s *TreapStore) TopN(_ context.Context, n int) ([]types.Entry, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Entry, 0, min(n, len(s.byID)))
	collectTopN(s.root, n, s.byID, &out)
	return out, nil
}

// All implements Store.All.
func (s *TreapStore) All(_ context.Context) []types.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Entry, 0, len(s.byID))
	collectTopN(s.root, len(s.byID), s.byID, &out)
	return out
}

// Count implements Store.Count.
func (s *TreapStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
