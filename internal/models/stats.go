package models

// TypeWinnings holds the winnings for one question type.
type TypeWinnings struct {
	TotalAmountWon        float64 `bson:"totalAmountWon" json:"totalAmountWon"`
	TotalCorrectQuestions int64   `bson:"totalCorrectQuestions" json:"totalCorrectQuestions"`
}

// TypeLosses holds the losses for one question type.
type TypeLosses struct {
	TotalAmountLost     float64 `bson:"totalAmountLost" json:"totalAmountLost"`
	TotalWrongQuestions int64   `bson:"totalWrongQuestions" json:"totalWrongQuestions"`
}

// CodemixLoss is the amount lost to one distinct code-mix response.
type CodemixLoss struct {
	Response        string  `bson:"_id" json:"response"`
	TotalAmountLost float64 `bson:"totalAmountLost" json:"totalAmountLost"`
}

// CodemixResponseCount is how often one distinct code-mix response was given.
type CodemixResponseCount struct {
	Response string `bson:"_id" json:"response"`
	Count    int64  `bson:"count" json:"count"`
}

type PerformanceStats struct {
	TotalAmountWon        map[string]TypeWinnings `json:"totalAmountWon"`
	TotalAmountLost       map[string]TypeLosses   `json:"totalAmountLost"`
	TotalAskedQuestions   int64                   `json:"totalAskedQuestions"`
	CodemixWordLoss       []CodemixLoss           `json:"codemixWordLoss"`
	TotalCodemixResponses []CodemixResponseCount  `json:"totalCodemixResponses"`
}

// RequestPool is the set of participants awaiting scheduling.
type RequestPool struct {
	Total        int                  `json:"total"`
	Participants []ParticipantProfile `json:"participants"`
}

type ShowStats struct {
	TotalEpisodes       int           `json:"totalEpisodes"`
	EpisodeLinks        []EpisodeLink `json:"episodeLinks"`
	TotalAskedQuestions int64         `json:"totalAskedQuestions"`
	TotalCorrectAnswers int64         `json:"totalCorrectAnswers"`
	CorrectAnswers      []string      `json:"correctAnswers"`
	TotalAmountWon      float64       `json:"totalAmountWon"`
	RequestPool         RequestPool   `json:"requestPool"`
}
