// Package balance splits a scored pool into two teams: a priority-ordered
// greedy fill followed by a bounded same-position swap pass.
package balance

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/lineup/internal/domain/dedupe"
	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/position"
)

// gapEpsilon keeps float noise from counting as an improvement.
const gapEpsilon = 1e-9

var fingerprintSpace = uuid.MustParse("6f1c2a9e-4b7d-5e0f-9a3c-2d8b7e6f1a40")

// Balancer is stateless apart from its configuration and safe for
// concurrent use.
type Balancer struct {
	maxSwaps  int
	tolerance float64
	policy    OpenSlotPolicy
}

// New creates a balancer with configuration options.
func New(opts ...Option) *Balancer {
	b := &Balancer{
		maxSwaps:  DefaultMaxSwapIterations,
		tolerance: DefaultTolerance,
		policy:    LeaveOpen,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Tolerance returns the configured balance tolerance.
func (b *Balancer) Tolerance() float64 { return b.tolerance }

// run is the working state of one Balance call.
type run struct {
	cands  []Candidate
	caps   [2][position.Count]int
	open   [2][position.Count]int
	lines  [2][position.Count][]int
	totals [2]float64
	counts [2]int
}

// Balance assigns candidates to the slots of fa (team A) and fb (team B).
// The result depends only on the inputs and their order.
func (b *Balancer) Balance(ctx context.Context, cands []Candidate, fa, fb formation.Formation) (Assignment, error) {
	if len(cands) == 0 {
		return Assignment{}, ErrNoCandidates
	}
	for i, f := range []formation.Formation{fa, fb} {
		if err := f.Validate(); err != nil {
			return Assignment{}, fmt.Errorf("%w: team %s: %v", ErrInvalidFormation, Team(i), err)
		}
	}
	seen := dedupe.NewInMemoryDeduper(dedupe.WithCapacity(len(cands)))
	for _, c := range cands {
		if seen.SeenAndRecord(ctx, c.Player.ID) {
			return Assignment{}, fmt.Errorf("%w: %q", ErrDuplicatePlayer, c.Player.ID)
		}
	}

	r := &run{cands: cands}
	r.caps[TeamA] = fa.Slots
	r.caps[TeamB] = fb.Slots
	r.trim(len(cands))

	unplaced := r.fill()
	iterations, err := r.improve(ctx, b.maxSwaps)
	if err != nil {
		return Assignment{}, err
	}

	out := Assignment{SwapIterations: iterations}
	for i, f := range []formation.Formation{fa, fb} {
		out.Teams[i] = r.roster(Team(i), f, b.policy)
	}
	for _, idx := range unplaced {
		out.Unplaced = append(out.Unplaced, cands[idx].Player)
	}
	out.Gap = math.Abs(out.Teams[TeamA].Score - out.Teams[TeamB].Score)
	out.Balanced = out.Gap <= b.tolerance
	out.Fingerprint = fingerprint(out)
	return out, nil
}

func slotTotal(caps [position.Count]int) int {
	n := 0
	for _, c := range caps {
		n += c
	}
	return n
}

// trim removes slots until the formations need no more players than supply.
// The team holding more slots loses one from its least important position;
// on a tie team B gives one up.
func (r *run) trim(supply int) {
	order := position.ByPriority()
	for slotTotal(r.caps[TeamA])+slotTotal(r.caps[TeamB]) > supply {
		t := TeamB
		if slotTotal(r.caps[TeamA]) > slotTotal(r.caps[TeamB]) {
			t = TeamA
		}
		for i := len(order) - 1; i >= 0; i-- {
			p := order[i]
			if r.caps[t][p] > 0 {
				r.caps[t][p]--
				r.open[t][p]++
				break
			}
		}
	}
}

// fill places every candidate greedily and returns those left over, in input
// order.
func (r *run) fill() []int {
	var allowed []position.Position
	for _, p := range position.All() {
		if r.caps[TeamA][p]+r.caps[TeamB][p] > 0 {
			allowed = append(allowed, p)
		}
	}

	ranked := make([][]position.Position, len(r.cands))
	for i, c := range r.cands {
		for _, ps := range c.Zones.Ranked() {
			if r.caps[TeamA][ps.Position]+r.caps[TeamB][ps.Position] > 0 {
				ranked[i] = append(ranked[i], ps.Position)
			}
		}
	}

	order := make([]int, len(r.cands))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		i, j := order[x], order[y]
		pi, si := r.cands[i].Zones.BestAmong(allowed)
		pj, sj := r.cands[j].Zones.BestAmong(allowed)
		if a, b := pi.Meta().Priority, pj.Meta().Priority; a != b {
			return a < b
		}
		if si != sj {
			return si > sj
		}
		return i < j
	})

	var unplaced []int
	for _, idx := range order {
		placed := false
		for _, p := range ranked[idx] {
			t, ok := r.pick(p)
			if !ok {
				continue
			}
			r.lines[t][p] = append(r.lines[t][p], idx)
			r.totals[t] += r.cands[idx].Zones[p]
			r.counts[t]++
			placed = true
			break
		}
		if !placed {
			unplaced = append(unplaced, idx)
		}
	}
	sort.Ints(unplaced)
	return unplaced
}

// pick chooses the team for a slot at p: the one with the lower total, then
// fewer players, then team A.
func (r *run) pick(p position.Position) (Team, bool) {
	openA := len(r.lines[TeamA][p]) < r.caps[TeamA][p]
	openB := len(r.lines[TeamB][p]) < r.caps[TeamB][p]
	switch {
	case openA && openB:
		if r.totals[TeamA] != r.totals[TeamB] {
			if r.totals[TeamB] < r.totals[TeamA] {
				return TeamB, true
			}
			return TeamA, true
		}
		if r.counts[TeamB] < r.counts[TeamA] {
			return TeamB, true
		}
		return TeamA, true
	case openA:
		return TeamA, true
	case openB:
		return TeamB, true
	}
	return TeamA, false
}

// improve repeatedly applies the same-position swap that most reduces the
// gap, until none does or the budget runs out.
func (r *run) improve(ctx context.Context, budget int) (int, error) {
	iterations := 0
	for iterations < budget {
		if err := ctx.Err(); err != nil {
			return iterations, fmt.Errorf("balance cancelled: %w", err)
		}
		gap := math.Abs(r.totals[TeamA] - r.totals[TeamB])
		best := gap - gapEpsilon
		var (
			found  bool
			bp     position.Position
			bi, bj int
			ta, tb float64
		)
		for _, p := range position.All() {
			for i, ai := range r.lines[TeamA][p] {
				for j, bk := range r.lines[TeamB][p] {
					sa, sb := r.cands[ai].Zones[p], r.cands[bk].Zones[p]
					if sa == sb {
						continue
					}
					na := r.totals[TeamA] - sa + sb
					nb := r.totals[TeamB] - sb + sa
					if g := math.Abs(na - nb); g < best {
						best, found = g, true
						bp, bi, bj, ta, tb = p, i, j, na, nb
					}
				}
			}
		}
		if !found {
			break
		}
		la, lb := r.lines[TeamA][bp], r.lines[TeamB][bp]
		la[bi], lb[bj] = lb[bj], la[bi]
		r.totals[TeamA], r.totals[TeamB] = ta, tb
		iterations++
	}
	return iterations, nil
}

// roster builds the canonical roster of t: lines sorted by score then input
// order, open slots appended, score summed in pitch order.
func (r *run) roster(t Team, f formation.Formation, policy OpenSlotPolicy) Roster {
	out := Roster{Team: t, Formation: f}
	for _, p := range position.All() {
		idxs := append([]int(nil), r.lines[t][p]...)
		sort.SliceStable(idxs, func(x, y int) bool {
			sx, sy := r.cands[idxs[x]].Zones[p], r.cands[idxs[y]].Zones[p]
			if sx != sy {
				return sx > sy
			}
			return idxs[x] < idxs[y]
		})
		for k, idx := range idxs {
			c := r.cands[idx]
			out.Lines[p] = append(out.Lines[p], Slot{
				PlayerID:  c.Player.ID,
				Name:      c.Player.DisplayName(),
				Position:  p,
				SlotIndex: k,
				Score:     c.Zones[p],
			})
			out.Score += c.Zones[p]
		}
		for k := 0; k < r.open[t][p]; k++ {
			slot := len(idxs) + k
			out.Open = append(out.Open, OpenSlot{Position: p, SlotIndex: slot})
			if policy == FillPlaceholder {
				out.Lines[p] = append(out.Lines[p], Slot{
					PlayerID:    fmt.Sprintf("open-%s-%s-%d", t, p, slot),
					Name:        "Open",
					Position:    p,
					SlotIndex:   slot,
					Placeholder: true,
				})
			}
		}
	}
	return out
}

func fingerprint(a Assignment) string {
	var b strings.Builder
	for _, ro := range a.Teams {
		fmt.Fprintf(&b, "%s|%s", ro.Team, ro.Formation.Name)
		for _, p := range position.All() {
			if len(ro.Lines[p]) == 0 {
				continue
			}
			fmt.Fprintf(&b, "|%s:", p)
			for k, s := range ro.Lines[p] {
				if k > 0 {
					b.WriteByte(',')
				}
				b.WriteString(s.PlayerID)
			}
		}
		b.WriteByte(';')
	}
	b.WriteString("U:")
	for k, p := range a.Unplaced {
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.ID)
	}
	return uuid.NewSHA1(fingerprintSpace, []byte(b.String())).String()
}
