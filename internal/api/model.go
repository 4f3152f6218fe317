package api

type analyzeRequest struct {
	// No required binding: the empty password is valid input and simply
	// scores minimally.
	Password string   `json:"password"`
	Profiles []string `json:"profiles"`
	Breach   *bool    `json:"breach"`
}
