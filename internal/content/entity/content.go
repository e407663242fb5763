// Package entity holds the portfolio content records served by the
// public site and managed by the authenticated admin.
package entity

import (
	"time"

	"github.com/shandysiswandi/gofolio/internal/pkg/valueobject"
)

// Profile is the site owner's bio. The site keeps a single profile;
// reads return the most recently updated row.
type Profile struct {
	ID        int64
	Name      string
	Title     string
	Summary   string
	Email     string
	Phone     string
	Website   string
	AvatarURL string
	Socials   valueobject.JSONMap
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Experience is a single work history entry. Dates and duration are
// display strings supplied by the admin, not parsed timestamps.
type Experience struct {
	ID          int64
	Role        string
	Company     string
	StartDate   string
	EndDate     string
	Duration    string
	Description string
	SortOrder   int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Education is a single education history entry.
type Education struct {
	ID          int64
	Institution string
	Degree      string
	Field       string
	StartYear   string
	EndYear     string
	Grade       string
	Description string
	SortOrder   int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Skill is a single skill with an optional proficiency percentage.
type Skill struct {
	ID        int64
	Name      string
	Level     string
	Percent   int16
	Category  string
	SortOrder int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Project is a portfolio project with uploaded media attachments.
type Project struct {
	ID          int64
	Title       string
	Description string
	Tech        []string
	Link        string
	ImageURL    string
	FileURLs    []string
	Featured    bool
	SortOrder   int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Achievement is a certification, award or similar recognition.
type Achievement struct {
	ID          int64
	Title       string
	Issuer      string
	Date        string
	Description string
	Link        string
	ImageURL    string
	SortOrder   int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
