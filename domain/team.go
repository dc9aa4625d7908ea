package domain

// Team is a workspace-like grouping of users and channels within one
// provider.
type Team struct {
	ID   string
	Name string
}

// CurrentUser is the authenticated identity for one provider.
// TeamID stays empty until the user picks a team; when set it must
// reference a Team known to that provider's session.
type CurrentUser struct {
	ID     string
	Name   string
	TeamID string
	Teams  []Team
}
