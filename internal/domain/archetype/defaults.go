package archetype

import (
	p "github.com/okian/lineup/internal/domain/position"
	s "github.com/okian/lineup/internal/domain/stats"
)

// DefaultArchetypes returns a fresh copy of the built-in playstyles.
func DefaultArchetypes() []Archetype {
	return []Archetype{
		// Goalkeepers
		{ID: "gk_shot_stopper", Name: "Shot Stopper", Position: p.GK, Weights: map[s.Stat]float64{
			s.ShotStopping: 5, s.Handling: 4, s.Agility: 3, s.Positioning: 2, s.Bravery: 2, s.Anticipation: 1,
		}},
		{ID: "gk_sweeper_keeper", Name: "Sweeper Keeper", Position: p.GK, Weights: map[s.Stat]float64{
			s.ShotStopping: 3, s.Handling: 2, s.Passing: 3, s.Acceleration: 2, s.Anticipation: 2, s.Composure: 2, s.Decisions: 1,
		}},

		// Centre-backs
		{ID: "cb_stopper", Name: "Stopper", Position: p.CB, Weights: map[s.Stat]float64{
			s.Tackling: 5, s.Marking: 4, s.Strength: 4, s.Heading: 3, s.Jumping: 3, s.Bravery: 2, s.Leadership: 1,
		}},
		{ID: "cb_ball_playing", Name: "Ball-Playing Defender", Position: p.CB, Weights: map[s.Stat]float64{
			s.Tackling: 4, s.Marking: 3, s.Passing: 4, s.Interceptions: 3, s.BallControl: 2, s.Composure: 1,
		}},

		// Full-backs
		{ID: "fb_defensive", Name: "Defensive Full-Back", Position: p.FB, Weights: map[s.Stat]float64{
			s.Tackling: 4, s.Marking: 4, s.Pace: 3, s.Stamina: 3, s.Interceptions: 2,
		}},
		{ID: "fb_wing_back", Name: "Wing-Back", Position: p.FB, Weights: map[s.Stat]float64{
			s.Crossing: 4, s.Stamina: 4, s.Pace: 4, s.WorkRate: 3, s.Dribbling: 2, s.Tackling: 2,
		}},

		// Defensive midfielders
		{ID: "dm_anchor", Name: "Anchor", Position: p.DM, Weights: map[s.Stat]float64{
			s.Interceptions: 5, s.Tackling: 4, s.Marking: 3, s.Strength: 2, s.Decisions: 2, s.Leadership: 1,
		}},
		{ID: "dm_deep_playmaker", Name: "Deep-Lying Playmaker", Position: p.DM, Weights: map[s.Stat]float64{
			s.Passing: 5, s.Vision: 4, s.Composure: 3, s.BallControl: 2, s.Interceptions: 2,
		}},

		// Central midfielders
		{ID: "cm_box_to_box", Name: "Box-to-Box", Position: p.CM, Weights: map[s.Stat]float64{
			s.Stamina: 5, s.WorkRate: 4, s.Passing: 3, s.Tackling: 2, s.Strength: 2, s.OffTheBall: 2,
		}},
		{ID: "cm_playmaker", Name: "Playmaker", Position: p.CM, Weights: map[s.Stat]float64{
			s.Passing: 5, s.Vision: 5, s.FirstTouch: 3, s.Decisions: 3, s.BallControl: 2,
		}},

		// Wide midfielders
		{ID: "wm_wide_midfielder", Name: "Wide Midfielder", Position: p.WM, Weights: map[s.Stat]float64{
			s.Crossing: 4, s.Stamina: 4, s.Passing: 3, s.WorkRate: 3, s.Pace: 2,
		}},
		{ID: "wm_wide_playmaker", Name: "Wide Playmaker", Position: p.WM, Weights: map[s.Stat]float64{
			s.Passing: 4, s.Vision: 4, s.Dribbling: 3, s.FirstTouch: 3, s.Crossing: 2,
		}},

		// Attacking midfielders
		{ID: "am_advanced_playmaker", Name: "Advanced Playmaker", Position: p.AM, Weights: map[s.Stat]float64{
			s.Vision: 5, s.Passing: 4, s.FirstTouch: 3, s.Dribbling: 3, s.Decisions: 2,
		}},
		{ID: "am_shadow_striker", Name: "Shadow Striker", Position: p.AM, Weights: map[s.Stat]float64{
			s.OffTheBall: 4, s.Finishing: 3, s.LongShots: 3, s.Acceleration: 3, s.Dribbling: 2,
		}},

		// Wingers
		{ID: "wr_winger", Name: "Winger", Position: p.WR, Weights: map[s.Stat]float64{
			s.Pace: 5, s.Dribbling: 5, s.Crossing: 4, s.Acceleration: 3, s.Agility: 2,
		}},
		{ID: "wr_inside_forward", Name: "Inside Forward", Position: p.WR, Weights: map[s.Stat]float64{
			s.Dribbling: 4, s.Finishing: 4, s.OffTheBall: 3, s.Acceleration: 3, s.LongShots: 2,
		}},

		// Strikers
		{ID: "st_poacher", Name: "Poacher", Position: p.ST, Weights: map[s.Stat]float64{
			s.Finishing: 6, s.Positioning: 5, s.Composure: 4, s.OffTheBall: 1, s.Acceleration: 1,
		}},
		{ID: "st_target_man", Name: "Target Man", Position: p.ST, Weights: map[s.Stat]float64{
			s.Heading: 5, s.Strength: 5, s.Jumping: 4, s.FirstTouch: 2, s.Finishing: 2, s.Bravery: 2,
		}},
	}
}
