package api

//PilotCost is the total cost of a pilot over a date range: daily rate times
//the inclusive day count. It is 0 when the duration is unknown; callers should
//present the daily rate alone in that case rather than a misleading total.
func PilotCost(dailyRate float64, start, end string) float64 {
	return dailyRate * float64(MissionDays(start, end))
}

//CostEstimate is the structured result of a pilot cost calculation
type CostEstimate struct {
	Pilot     *Pilot  `json:"pilot"`
	DailyRate float64 `json:"daily_rate_inr"`
	StartDate string  `json:"start_date,omitempty"`
	EndDate   string  `json:"end_date,omitempty"`
	Days      int     `json:"days"`
	Total     float64 `json:"total_inr"`
	Note      string  `json:"note,omitempty"`
}
