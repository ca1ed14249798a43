package workspace

// Storage keys, one per collection plus the onboarding flag. The workspace
// is the sole writer of these keys.
const (
	KeyUser          = "travelapp:user"
	KeyTrips         = "travelapp:trips"
	KeyExpenses      = "travelapp:expenses"
	KeyChecklist     = "travelapp:checklist"
	KeyMedia         = "travelapp:media"
	KeySavedPlaces   = "travelapp:saved_places"
	KeyJournals      = "travelapp:journals"
	KeyPlaylists     = "travelapp:playlists"
	KeyPosts         = "travelapp:posts"
	KeyNotifications = "travelapp:notifications"
	KeyOnboarding    = "travelapp:onboarding_complete"
)

// AllKeys returns every storage key the workspace owns.
func AllKeys() []string {
	return []string{
		KeyUser,
		KeyTrips,
		KeyExpenses,
		KeyChecklist,
		KeyMedia,
		KeySavedPlaces,
		KeyJournals,
		KeyPlaylists,
		KeyPosts,
		KeyNotifications,
		KeyOnboarding,
	}
}
