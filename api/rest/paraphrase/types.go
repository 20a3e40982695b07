package paraphrase

// contains the text to rewrite and the requested style
type ParaphraseRequest struct {
	Text string `json:"text" binding:"required"`
	Mode string `json:"mode"`
}

// carries the rewritten text back with usage metadata
type ParaphraseResponse struct {
	Original    string `json:"original"`
	Paraphrased string `json:"paraphrased"`
	WordCount   int    `json:"word_count"`
	Mode        string `json:"mode"`
	Model       string `json:"model"`
}
