package userservice

// Vehicle is a registered vehicle from the user directory
type Vehicle struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Brand  string `json:"brand"`
	Plate  string `json:"plate"`
}

// RewardBalance is a user's reward point balance
type RewardBalance struct {
	UserID int64 `json:"user_id"`
	Points int   `json:"points"`
}

// adjustRequest is the body of a reward adjustment call
type adjustRequest struct {
	Delta int `json:"delta"`
}

// ErrorResponse is the error payload of the user directory
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
