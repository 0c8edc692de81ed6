package http

// QAResult pairs a question with the generated answer for a single request.
type QAResult struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Greeting is the static payload served by the root endpoint.
type Greeting struct {
	Hello string `json:"Hello"`
}
