package balance_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/okian/lineup/internal/domain/balance"
	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/model"
	p "github.com/okian/lineup/internal/domain/position"
	"github.com/okian/lineup/internal/domain/scoring"
	"github.com/okian/lineup/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func candidate(id string, zones map[p.Position]float64) balance.Candidate {
	var z scoring.ZoneScores
	for pos, s := range zones {
		z[pos] = s
	}
	return balance.Candidate{Player: model.Player{ID: id, Name: "Player " + id}, Zones: z}
}

func mustFormation(name string) formation.Formation {
	f, err := formation.Default().ByName(name)
	if err != nil {
		panic(err)
	}
	return f
}

// cohortPool builds 8 attack-leaning and 8 defence-leaning players, each
// cohort split into a strong and a weak profile.
func cohortPool() []balance.Candidate {
	strongAtt := map[p.Position]float64{p.GK: 10, p.CB: 30, p.CM: 60, p.WM: 70, p.ST: 90}
	weakAtt := map[p.Position]float64{p.GK: 5, p.CB: 25, p.CM: 50, p.WM: 65, p.ST: 75}
	strongDef := map[p.Position]float64{p.GK: 50, p.CB: 90, p.CM: 55, p.WM: 40, p.ST: 25}
	weakDef := map[p.Position]float64{p.GK: 45, p.CB: 70, p.CM: 50, p.WM: 35, p.ST: 20}

	var out []balance.Candidate
	for i := 0; i < 8; i++ {
		z := strongAtt
		if i%2 == 1 {
			z = weakAtt
		}
		out = append(out, candidate(fmt.Sprintf("att-%d", i), z))
	}
	for i := 0; i < 8; i++ {
		z := strongDef
		if i%2 == 1 {
			z = weakDef
		}
		out = append(out, candidate(fmt.Sprintf("def-%d", i), z))
	}
	return out
}

func randomPool(rng *rand.Rand, n int) []balance.Candidate {
	s := scoring.NewScorer()
	out := make([]balance.Candidate, n)
	for i := range out {
		var v stats.Vector
		for _, st := range stats.All() {
			v = v.With(st, rng.Intn(101))
		}
		out[i] = balance.Candidate{
			Player: model.Player{ID: fmt.Sprintf("r-%02d", i), Stats: v},
			Zones:  s.Zones(v),
		}
	}
	return out
}

func idsOf(r balance.Roster) []string {
	var out []string
	for _, s := range r.Players() {
		out = append(out, s.PlayerID)
	}
	return out
}

func TestBalanceCohorts(t *testing.T) {
	Convey("Given 8 attackers and 8 defenders split 8 a side", t, func() {
		ctx := context.Background()
		f := mustFormation("3-3-1")
		a, err := balance.New().Balance(ctx, cohortPool(), f, f)
		So(err, ShouldBeNil)

		Convey("Then every player should be placed", func() {
			So(a.Unplaced, ShouldBeEmpty)
			So(a.Teams[balance.TeamA].Filled(), ShouldEqual, 8)
			So(a.Teams[balance.TeamB].Filled(), ShouldEqual, 8)
		})

		Convey("Then the aggregate gap should be within tolerance", func() {
			So(a.Gap, ShouldBeLessThanOrEqualTo, balance.DefaultTolerance)
			So(a.Balanced, ShouldBeTrue)
		})

		Convey("Then each cohort should be split evenly", func() {
			for _, ro := range a.Teams {
				attackers := 0
				for _, id := range idsOf(ro) {
					if id[:3] == "att" {
						attackers++
					}
				}
				So(attackers, ShouldEqual, 4)
			}
		})

		Convey("Then defenders should hold the centre-back slots", func() {
			for _, ro := range a.Teams {
				So(len(ro.Lines[p.CB]), ShouldEqual, 3)
				for _, s := range ro.Lines[p.CB] {
					So(s.PlayerID[:3], ShouldEqual, "def")
				}
			}
		})
	})
}

func TestBalanceInvariants(t *testing.T) {
	Convey("Given random pools", t, func() {
		ctx := context.Background()
		rng := rand.New(rand.NewSource(11)) //nolint:gosec // deterministic seed for reproducible testing
		b := balance.New()

		for round := 0; round < 20; round++ {
			n := 10 + rng.Intn(15)
			pool := randomPool(rng, n)
			fa, _ := formation.Default().Select((n + 1) / 2)
			fb, _ := formation.Default().Select(n / 2)

			first, err := b.Balance(ctx, pool, fa, fb)
			So(err, ShouldBeNil)
			second, err := b.Balance(ctx, pool, fa, fb)
			So(err, ShouldBeNil)

			// determinism
			So(second, ShouldResemble, first)

			// coverage: placed plus unplaced is exactly the pool, no repeats
			seen := map[string]int{}
			for _, ro := range first.Teams {
				for _, id := range idsOf(ro) {
					seen[id]++
				}
			}
			for _, pl := range first.Unplaced {
				seen[pl.ID]++
			}
			So(len(seen), ShouldEqual, n)
			for _, c := range seen {
				So(c, ShouldEqual, 1)
			}

			// slot capacity
			for i, ro := range first.Teams {
				f := []formation.Formation{fa, fb}[i]
				for _, pos := range p.All() {
					So(len(ro.Lines[pos]), ShouldBeLessThanOrEqualTo, f.Count(pos))
				}
			}

			// the swap pass never makes things worse
			greedy, err := balance.New(balance.WithMaxSwapIterations(0)).Balance(ctx, pool, fa, fb)
			So(err, ShouldBeNil)
			So(greedy.SwapIterations, ShouldEqual, 0)
			So(first.Gap, ShouldBeLessThanOrEqualTo, greedy.Gap+1e-9)
			So(first.SwapIterations, ShouldBeLessThanOrEqualTo, balance.DefaultMaxSwapIterations)
		}
	})
}

func TestBalanceIdenticalPlayers(t *testing.T) {
	Convey("Given 22 interchangeable players in two 4-3-3s", t, func() {
		zones := map[p.Position]float64{p.GK: 41.5, p.CB: 63.25, p.FB: 58, p.DM: 61, p.CM: 66.75, p.WR: 52, p.ST: 47.1}
		var pool []balance.Candidate
		for i := 0; i < 22; i++ {
			pool = append(pool, candidate(fmt.Sprintf("twin-%02d", i), zones))
		}
		f := mustFormation("4-3-3")
		a, err := balance.New().Balance(context.Background(), pool, f, f)

		Convey("Then the aggregates should be exactly equal", func() {
			So(err, ShouldBeNil)
			So(a.Gap, ShouldEqual, 0.0)
			So(a.Teams[balance.TeamA].Score, ShouldEqual, a.Teams[balance.TeamB].Score)
		})
	})
}

func TestBalanceShortAndLongPools(t *testing.T) {
	Convey("Given 10 players for two 6-a-side formations", t, func() {
		ctx := context.Background()
		rng := rand.New(rand.NewSource(3)) //nolint:gosec // deterministic seed for reproducible testing
		pool := randomPool(rng, 10)
		f := mustFormation("2-2-1")

		Convey("When slots are left open", func() {
			a, err := balance.New().Balance(ctx, pool, f, f)
			So(err, ShouldBeNil)

			Convey("Then each team should give up one central midfield slot", func() {
				So(a.Unplaced, ShouldBeEmpty)
				for _, ro := range a.Teams {
					So(ro.Open, ShouldResemble, []balance.OpenSlot{{Position: p.CM, SlotIndex: 1}})
					So(ro.Filled(), ShouldEqual, 5)
					So(len(ro.Lines[p.CM]), ShouldEqual, 1)
					So(len(ro.Lines[p.GK]), ShouldEqual, 1)
				}
			})
		})

		Convey("When placeholders are requested", func() {
			a, err := balance.New(balance.WithOpenSlotPolicy(balance.FillPlaceholder)).Balance(ctx, pool, f, f)
			So(err, ShouldBeNil)

			Convey("Then the open slot should carry a synthetic entry", func() {
				slot, ok := a.Teams[balance.TeamB].At(p.CM, 1)
				So(ok, ShouldBeTrue)
				So(slot.Placeholder, ShouldBeTrue)
				So(slot.PlayerID, ShouldEqual, "open-B-CM-1")
				So(slot.Score, ShouldEqual, 0.0)
				So(a.Teams[balance.TeamB].Filled(), ShouldEqual, 5)
			})
		})
	})

	Convey("Given 12 players for two 5-a-side formations", t, func() {
		rng := rand.New(rand.NewSource(5)) //nolint:gosec // deterministic seed for reproducible testing
		pool := randomPool(rng, 12)
		f := mustFormation("2-1-1")
		a, err := balance.New().Balance(context.Background(), pool, f, f)

		Convey("Then the two surplus players should be reported unplaced", func() {
			So(err, ShouldBeNil)
			So(len(a.Unplaced), ShouldEqual, 2)
			So(a.Teams[balance.TeamA].Filled()+a.Teams[balance.TeamB].Filled(), ShouldEqual, 10)
		})
	})
}

func TestBalanceErrors(t *testing.T) {
	Convey("Given bad input", t, func() {
		ctx := context.Background()
		f := mustFormation("2-1-1")
		b := balance.New()

		Convey("When the pool is empty", func() {
			_, err := b.Balance(ctx, nil, f, f)
			So(errors.Is(err, balance.ErrNoCandidates), ShouldBeTrue)
		})

		Convey("When a player appears twice", func() {
			pool := []balance.Candidate{candidate("x", nil), candidate("y", nil), candidate("x", nil)}
			_, err := b.Balance(ctx, pool, f, f)
			So(errors.Is(err, balance.ErrDuplicatePlayer), ShouldBeTrue)
		})

		Convey("When a formation is the zero value", func() {
			_, err := b.Balance(ctx, []balance.Candidate{candidate("x", nil)}, f, formation.Formation{})
			So(errors.Is(err, balance.ErrInvalidFormation), ShouldBeTrue)
		})

		Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			pool := randomPool(rand.New(rand.NewSource(1)), 10) //nolint:gosec // deterministic seed for reproducible testing
			_, err := b.Balance(cctx, pool, f, f)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestFingerprint(t *testing.T) {
	Convey("Given the same pool balanced twice", t, func() {
		ctx := context.Background()
		f := mustFormation("3-3-1")
		a1, _ := balance.New().Balance(ctx, cohortPool(), f, f)
		a2, _ := balance.New().Balance(ctx, cohortPool(), f, f)

		Convey("Then the fingerprints should match", func() {
			So(a1.Fingerprint, ShouldEqual, a2.Fingerprint)
			So(len(a1.Fingerprint), ShouldEqual, 36)
		})

		Convey("Then a different split should change the fingerprint", func() {
			pool := cohortPool()
			pool[0].Player.ID = "att-renamed"
			a3, _ := balance.New().Balance(ctx, pool, f, f)
			So(a3.Fingerprint, ShouldNotEqual, a1.Fingerprint)
		})
	})
}

func TestOpenSlotPolicy(t *testing.T) {
	Convey("Given policy names", t, func() {
		pol, err := balance.ParseOpenSlotPolicy("Placeholder")
		So(err, ShouldBeNil)
		So(pol, ShouldEqual, balance.FillPlaceholder)
		So(pol.String(), ShouldEqual, "placeholder")

		pol, err = balance.ParseOpenSlotPolicy("")
		So(err, ShouldBeNil)
		So(pol, ShouldEqual, balance.LeaveOpen)

		_, err = balance.ParseOpenSlotPolicy("ghost")
		So(errors.Is(err, balance.ErrUnknownPolicy), ShouldBeTrue)
	})
}
