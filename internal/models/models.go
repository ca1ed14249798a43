// Package models defines the domain entities for the trip workspace.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the default currency for new budgets and expenses.
const DefaultCurrency = "EUR"

// Trip status values.
const (
	TripStatusPlanning  = "planning"
	TripStatusUpcoming  = "upcoming"
	TripStatusOngoing   = "ongoing"
	TripStatusCompleted = "completed"
)

// Budget tiers index a destination's average daily cost.
const (
	TierBudget   = "budget"
	TierModerate = "moderate"
	TierLuxury   = "luxury"
)

// Budget breakdown and expense categories.
const (
	CategoryTransport     = "transport"
	CategoryAccommodation = "accommodation"
	CategoryFood          = "food"
	CategoryActivities    = "activities"
	CategoryShopping      = "shopping"
	CategoryOther         = "other"
)

// Checklist item categories.
const (
	ChecklistDocuments   = "documents"
	ChecklistHealth      = "health"
	ChecklistPacking     = "packing"
	ChecklistBooking     = "booking"
	ChecklistPreparation = "preparation"
	ChecklistOther       = "other"
)

// Checklist priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// User represents the device's signed-in traveler profile.
type User struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	EmailVerified      bool       `json:"emailVerified"`
	VerificationCode   string     `json:"verificationCode,omitempty"`
	VerificationExpiry *time.Time `json:"verificationExpiry,omitempty"`
	Nationality        string     `json:"nationality"`
	DepartureCity      string     `json:"departureCity,omitempty"`
	TravelStyles       []string   `json:"travelStyles,omitempty"`
	BudgetTier         string     `json:"budgetTier,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// Budget tracks planned versus spent money for a trip.
type Budget struct {
	Total     decimal.Decimal            `json:"total"`
	Spent     decimal.Decimal            `json:"spent"`
	Currency  string                     `json:"currency"`
	Breakdown map[string]decimal.Decimal `json:"breakdown,omitempty"`
}

// Location is a point of interest attached to a trip or saved place.
type Location struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	Country   string  `json:"country,omitempty"`
	City      string  `json:"city,omitempty"`
	Type      string  `json:"type,omitempty"`
}

// Trip represents a planned journey.
type Trip struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Destination string     `json:"destination"`
	Country     string     `json:"country"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Status      string     `json:"status"`
	Public      bool       `json:"public"`
	Travelers   int        `json:"travelers"`
	Notes       string     `json:"notes,omitempty"`
	Budget      Budget     `json:"budget"`
	Locations   []Location `json:"locations,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Expense is a logged cost against a trip. Append-only once recorded.
type Expense struct {
	ID        string          `json:"id"`
	TripID    string          `json:"tripId"`
	UserID    string          `json:"userId"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Category  string          `json:"category"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes,omitempty"`
	ReceiptID string          `json:"receiptId,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ChecklistItem is a preparation task, created by the user or by the
// visa/health advisory flows.
type ChecklistItem struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	TripID      string     `json:"tripId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	ReminderAt  *time.Time `json:"reminderAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Media is a photo or video reference owned by a user.
type Media struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	TripID    string     `json:"tripId,omitempty"`
	Type      string     `json:"type"`
	URL       string     `json:"url"`
	Caption   string     `json:"caption,omitempty"`
	TakenAt   *time.Time `json:"takenAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// SavedPlace is a bookmarked location.
type SavedPlace struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Location  Location  `json:"location"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TravelJournal is a dated journal entry, optionally attached to a trip.
type TravelJournal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TripID    string    `json:"tripId,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	Photos    []string  `json:"photos,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Playlist is a named list of track references.
type Playlist struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TrackIDs    []string  `json:"trackIds,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Post is a social feed entry.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	MediaIDs  []string  `json:"mediaIds,omitempty"`
	Likes     int       `json:"likes"`
	Public    bool      `json:"public"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notification is an in-app notification.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Destination is a read-only catalog entry. Never mutated at runtime.
type Destination struct {
	ID              string                     `json:"id"`
	Name            string                     `json:"name"`
	Country         string                     `json:"country"`
	Continent       string                     `json:"continent"`
	Categories      []string                   `json:"categories,omitempty"`
	AverageBudget   map[string]decimal.Decimal `json:"averageBudget"`
	RecommendedDays int                        `json:"recommendedDays"`
	BestTime        string                     `json:"bestTime,omitempty"`
	Languages       []string                   `json:"languages,omitempty"`
	Timezone        string                     `json:"timezone,omitempty"`
	Currency        string                     `json:"currency"`
}

// TravelRequest is the input to the preparation advisor. Zero dates mean
// the traveler has not picked a window yet.
type TravelRequest struct {
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Travelers     int       `json:"travelers"`
	BudgetLevel   string    `json:"budgetLevel"`
	DepartureCity string    `json:"departureCity,omitempty"`
	Nationality   string    `json:"nationality"`
}

// BudgetBreakdown is a derived spending plan. Total is always computed from
// the daily budget, never by summing the rounded category fields.
type BudgetBreakdown struct {
	Transport     decimal.Decimal `json:"transport"`
	Accommodation decimal.Decimal `json:"accommodation"`
	Food          decimal.Decimal `json:"food"`
	Activities    decimal.Decimal `json:"activities"`
	Shopping      decimal.Decimal `json:"shopping"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
	Days          int             `json:"days"`
}

// VisaRequirement describes what a traveler needs to enter a country.
type VisaRequirement struct {
	Required       bool            `json:"required"`
	Type           string          `json:"type"`
	Duration       string          `json:"duration"`
	Cost           decimal.Decimal `json:"cost"`
	ProcessingTime string          `json:"processingTime,omitempty"`
	Documents      []string        `json:"documents"`
}

// Vaccination is a single vaccination advisory entry.
type Vaccination struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// HealthInfo describes health preparation for a destination.
type HealthInfo struct {
	Vaccinations     []Vaccination `json:"vaccinations"`
	Risks            []string      `json:"risks,omitempty"`
	MedicalInsurance bool          `json:"medicalInsurance"`
}
