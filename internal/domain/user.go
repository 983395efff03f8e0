package domain

import "time"

// PlatformDiscord is the only messaging platform the bot serves today.
const PlatformDiscord = "discord"

// UserRecord links one platform identity to one Codewars username and keeps
// the honor baseline used for delta reporting.
type UserRecord struct {
	ID                int64     `json:"id"`
	ExternalUsername  string    `json:"codewars_username"`
	PlatformID        int64     `json:"platform_id"`
	RegistrationHonor int       `json:"registration_honor"`
	LastUpdated       time.Time `json:"last_updated"`
	LastHonor         int       `json:"last_honor"`
	RegistrationDate  time.Time `json:"registration_date"`
}

// Profile is the subset of a Codewars user profile the bot reports on.
type Profile struct {
	Username            string `json:"username"`
	Name                string `json:"name"`
	Honor               int    `json:"honor"`
	Clan                string `json:"clan"`
	LeaderboardPosition *int   `json:"leaderboard_position,omitempty"`
	Rank                string `json:"rank"`
}
