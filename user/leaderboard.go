package user

import (
	"fmt"
	"strconv"
	"time"
)

// Row is one leaderboard line, already formatted for display
type Row struct {
	Rank  string
	Name  string
	Time  string
	Kills string
}

// LeaderboardHeader names the leaderboard columns
var LeaderboardHeader = Row{Rank: "Rank", Name: "Name", Time: "Time", Kills: "Kills"}

// Leaderboard formats the unique-by-name ranking, at most limit rows (limit <= 0 for all)
// Users without a score show "-" in the time and kills columns
func Leaderboard(users []User, limit int) []Row {
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	rows := make([]Row, len(users))
	for i, u := range users {
		r := Row{Rank: strconv.Itoa(i + 1), Name: u.Name, Time: "-", Kills: "-"}
		if u.BestScore != nil {
			r.Time = FormatTime(u.BestScore.Duration())
			r.Kills = strconv.Itoa(u.BestScore.Kills)
		}
		rows[i] = r
	}
	return rows
}

// FormatTime renders a survival time as m:ss.t
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d / time.Minute)
	sec := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%04.1f", m, sec)
}
