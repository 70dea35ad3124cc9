package model

// Session references the single signed-in user of a store.
type Session struct {
	UserID string `json:"userId"`
}
