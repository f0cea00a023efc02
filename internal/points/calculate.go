package points

import (
	"math"

	"speak-byte/internal/domain"
)

type weight struct {
	activity domain.Activity
	perUnit  float64
	count    func(domain.ActivityCounts) float64
}

// weights is the fixed point table. Order is the display order of a breakdown.
var weights = []weight{
	{domain.ActivityVideoSeconds, 0.5, func(c domain.ActivityCounts) float64 { return c.VideoSeconds }},
	{domain.ActivityAudioAttempts, 1, func(c domain.ActivityCounts) float64 { return float64(c.AudioAttempts) }},
	{domain.ActivityRecordingAttempts, 20, func(c domain.ActivityCounts) float64 { return float64(c.RecordingAttempts) }},
	{domain.ActivityQuizAttempts, 3, func(c domain.ActivityCounts) float64 { return float64(c.QuizAttempts) }},
	{domain.ActivityQuizCorrect, 3, func(c domain.ActivityCounts) float64 { return float64(c.QuizCorrect) }},
	{domain.ActivityAttendanceDays, 50, func(c domain.ActivityCounts) float64 { return float64(c.AttendanceDays) }},
	{domain.ActivityVoiceOpenCount, 100, func(c domain.ActivityCounts) float64 { return float64(c.VoiceOpenCount) }},
	{domain.ActivityVoiceLikesReceived, 100, func(c domain.ActivityCounts) float64 { return float64(c.VoiceLikesReceived) }},
	{domain.ActivityVoiceLikesGiven, 20, func(c domain.ActivityCounts) float64 { return float64(c.VoiceLikesGiven) }},
}

// Calculate applies the weight table to counts. Line points are kept
// fractional and the total is rounded once, after summing. Negative counts
// are treated as zero.
func Calculate(counts domain.ActivityCounts) domain.PointBreakdown {
	lines := make([]domain.PointLine, 0, len(weights))
	var sum float64
	for _, w := range weights {
		raw := math.Max(w.count(counts), 0)
		pts := raw * w.perUnit
		sum += pts
		lines = append(lines, domain.PointLine{
			Activity: w.activity,
			RawCount: raw,
			Weight:   w.perUnit,
			Points:   pts,
		})
	}
	return domain.PointBreakdown{
		Lines:       lines,
		TotalPoints: int64(math.Round(sum)),
	}
}
