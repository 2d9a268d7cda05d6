package handler

// errorResponse documents the standard error envelope returned on all
// 4xx/5xx responses.
type errorResponse struct {
	Message string `json:"message"`
}

// messageResponse is the success envelope for mutations that return no entity.
type messageResponse struct {
	Message string `json:"message"`
}

// tokenResponse carries the signed bearer token issued on register and login.
type tokenResponse struct {
	Token string `json:"token"`
}

// registerRequest accepts the account role under either "role" or
// "user_type"; older clients still send the latter.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	UserType string `json:"user_type"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// createTenderRequest carries the tender publication payload. The deadline is
// bound as a string so an empty or malformed value maps to the contractual
// validation errors instead of a bind failure.
type createTenderRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Deadline    string  `json:"deadline"    validate:"required"`
	Budget      float64 `json:"budget"      validate:"required"`
	Attachment  string  `json:"attachment"`
}

type updateTenderStatusRequest struct {
	Status string `json:"status"`
}

type submitBidRequest struct {
	Price        float64 `json:"price"`
	DeliveryTime int     `json:"delivery_time"`
	Comments     string  `json:"comments"`
}
