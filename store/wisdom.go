package store

// Tip is one entry of daily Ayurvedic guidance.
type Tip struct {
	ID      int32
	Content string
	Lang    string
	Source  string
}

// Wisdom is seasonal guidance content.
type Wisdom struct {
	ID      int32
	Season  string
	Content string
	Lang    string
}

// Remedy is a knowledge-base entry used for recommendations.
type Remedy struct {
	ID      int32
	Name    string
	Dosha   string
	Content string
	Lang    string
}

type FindTip struct {
	Lang *string
}

type FindWisdom struct {
	Season *string
	Lang   *string
}

type FindRemedy struct {
	Query *string
	Dosha *string
	Limit *int
}
