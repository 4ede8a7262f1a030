package domain

type BookCondition string

const (
	BookConditionLikeNew  BookCondition = "Like New"
	BookConditionVeryGood BookCondition = "Very Good"
	BookConditionGood     BookCondition = "Good"
	BookConditionFair     BookCondition = "Fair"
	BookConditionPoor     BookCondition = "Poor"
)

const (
	MinCreditValue int32 = 1
	MaxCreditValue int32 = 5
)

type Book struct {
	ID          int32         `json:"id"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	Genres      []string      `json:"genres"`
	Condition   BookCondition `json:"condition"`
	CreditValue int32         `json:"creditValue"`
	CoverURL    string        `json:"coverUrl"`
	Description string        `json:"description"`
	OwnerID     int32         `json:"ownerId"`
	Owner       *User         `json:"owner,omitempty"` // Populated when fetching book details
	IsAvailable bool          `json:"isAvailable"`
	ReadCount   int32         `json:"readCount"`
	CreatedOn   string        `json:"createdOn"`
}

// BookFilter narrows catalog listings. Zero values mean "no filter".
type BookFilter struct {
	Genre      string
	Condition  string
	MaxCredits int32
	Query      string
}

func ValidCondition(c BookCondition) bool {
	switch c {
	case BookConditionLikeNew, BookConditionVeryGood, BookConditionGood, BookConditionFair, BookConditionPoor:
		return true
	}
	return false
}
