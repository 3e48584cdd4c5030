package handler

// statusResponse is the status/message pair every non-collection endpoint
// answers with, success or failure alike.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
