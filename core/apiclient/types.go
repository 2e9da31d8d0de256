package apiclient

import "time"

// Flashcard is a card the user owns or that was shared with them.
type Flashcard struct {
	ID         string `json:"id"`
	Front      string `json:"front"`
	Back       string `json:"back"`
	AuthorName string `json:"authorName"`
	Language   string `json:"language"`
	IsOwner    bool   `json:"isOwner"`
}

// Stats summarizes the user's study progress.
type Stats struct {
	TotalCards    int     `json:"totalCards"`
	CardsToReview int     `json:"cardsToReview"`
	AverageLevel  float64 `json:"averageLevel"`
	Streak        int     `json:"streak"`
}

// Catalog is a named collection of flashcards.
type Catalog struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"owner_id"`
}

// User is the API's representation of an account.
type User struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Username *string `json:"username"`
	IsAdmin  bool    `json:"is_admin"`
}

// WaitlistEntry is a pending signup request.
type WaitlistEntry struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Reason    *string    `json:"reason"`
	Approved  bool       `json:"approved"`
	CreatedAt *time.Time `json:"created_at"`
}

// ImportResult reports the outcome of a word import.
type ImportResult struct {
	Status        string   `json:"status"`
	ImportedCount int      `json:"imported_count"`
	ImportedWords []string `json:"imported_words"`
}

// DuplicateCheck reports which candidate words already exist as cards.
type DuplicateCheck struct {
	Duplicates    []string `json:"duplicates"`
	HasDuplicates bool     `json:"has_duplicates"`
}
