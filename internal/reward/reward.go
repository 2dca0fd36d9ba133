package reward

// Era is a contiguous block range paying a constant subsidy.
// End is exclusive; an End of 0 means the era has no upper bound.
type Era struct {
	Start  int64   `json:"start"`
	End    int64   `json:"end"`
	Reward float64 `json:"reward"`
}

// Schedule is an ordered list of non-overlapping eras.
type Schedule []Era

// DefaultSchedule covers the three halving eras since 2018-01-01.
var DefaultSchedule = Schedule{
	{Start: 499500, End: 630000, Reward: 12.5},
	{Start: 630000, End: 840000, Reward: 6.25},
	{Start: 840000, End: 0, Reward: 3.125},
}

// Blocks returns how many blocks of [start, current) fall inside the era.
func (e Era) Blocks(start, current int64) int64 {
	end := current
	if !e.Unbounded() && e.End < end {
		end = e.End
	}
	from := start
	if e.Start > from {
		from = e.Start
	}
	if end-from < 0 {
		return 0
	}
	return end - from
}

// MinedBTC sums the subsidy paid between start and current across every era.
// Inputs are not validated: current < start yields zero for each era.
func (s Schedule) MinedBTC(start, current int64) float64 {
	total := 0.0
	for _, era := range s {
		total += float64(era.Blocks(start, current)) * era.Reward
	}
	return total
}

// MinedBTC applies DefaultSchedule.
func MinedBTC(start, current int64) float64 {
	return DefaultSchedule.MinedBTC(start, current)
}

// Unbounded reports whether the era extends past any block height.
func (e Era) Unbounded() bool {
	return e.End == 0
}

