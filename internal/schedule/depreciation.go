package schedule

// DepreciationMethod selects the write-down curve.
type DepreciationMethod string

const (
	StraightLine     DepreciationMethod = "straight_line"
	DecliningBalance DepreciationMethod = "declining_balance"
)

// DepreciationEntry is one year of an asset's write-down.
type DepreciationEntry struct {
	Year         int     `json:"year"`
	Depreciation float64 `json:"depreciation"`
	Accumulated  float64 `json:"accumulated_depreciation"`
	BookValue    float64 `json:"book_value"`
}

// Depreciate produces the full schedule for an asset. Straight-line writes
// (cost-salvage)/life each year; declining balance applies rate 2/life to
// the book value, with the final year forced down to the salvage value.
// A non-positive life yields an empty schedule.
func Depreciate(cost, salvage float64, life int, method DepreciationMethod) []DepreciationEntry {
	if life <= 0 {
		return nil
	}

	schedule := make([]DepreciationEntry, 0, life)

	switch method {
	case DecliningBalance:
		rate := 2.0 / float64(life)
		book := cost
		var accumulated float64
		for year := 1; year <= life; year++ {
			dep := book * rate
			if year == life {
				dep = book - salvage
			}
			accumulated += dep
			book -= dep
			schedule = append(schedule, DepreciationEntry{
				Year:         year,
				Depreciation: dep,
				Accumulated:  accumulated,
				BookValue:    book,
			})
		}
	default:
		annual := (cost - salvage) / float64(life)
		for year := 1; year <= life; year++ {
			schedule = append(schedule, DepreciationEntry{
				Year:         year,
				Depreciation: annual,
				Accumulated:  annual * float64(year),
				BookValue:    cost - annual*float64(year),
			})
		}
	}
	return schedule
}
