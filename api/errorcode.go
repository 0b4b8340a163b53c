package api

// ErrorResponse is the error body every endpoint returns. Internal detail is
// logged, never echoed back to the client. Validation failures enumerate
// every missing field at once instead of stopping at the first.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
}

// withMissing attaches the enumerated missing fields to a canned response
func (e ErrorResponse) withMissing(fields []string) ErrorResponse {
	e.Missing = fields
	return e
}

var (
	errorInternalServer     = ErrorResponse{Error: "internal server error"}
	errorCannotParseRequest = ErrorResponse{Error: "cannot parse request"}

	errorUserIDRequired    = ErrorResponse{Error: "UserId is required"}
	errorUserEmailRequired = ErrorResponse{Error: "User email is required"}
	errorUserNotFound      = ErrorResponse{Error: "User not found"}

	errorMissingTripFields = ErrorResponse{Error: "Missing required trip fields"}
	errorInvalidTripID     = ErrorResponse{Error: "Invalid trip id"}
	errorTripNotFound      = ErrorResponse{Error: "Trip not found"}
	errorNoTripFound       = ErrorResponse{Error: "No trip found"}

	errorPlaceNameRequired      = ErrorResponse{Error: "placeName required"}
	errorPlaceNotFound          = ErrorResponse{Error: "Place not found"}
	errorDateRequired           = ErrorResponse{Error: "Date is required"}
	errorPlaceReferenceRequired = ErrorResponse{Error: "Either placeName or placeData is required"}

	errorMissingExpenseFields = ErrorResponse{Error: "Missing required expense fields"}

	errorDestinationRequired  = ErrorResponse{Error: "destination required"}
	errorMalformedSuggestions = ErrorResponse{Error: "Failed to fetch AI recommendations"}
	errorEmailFieldsRequired  = ErrorResponse{Error: "Email subject and message is required"}

	errorCreateTripFailed   = ErrorResponse{Error: "Failed to create trip"}
	errorFetchTripsFailed   = ErrorResponse{Error: "Failed to fetch trips"}
	errorAddPlaceFailed     = ErrorResponse{Error: "Failed to add place to trip"}
	errorAddItineraryFailed = ErrorResponse{Error: "Failed to add itinerary"}
	errorAddExpenseFailed   = ErrorResponse{Error: "Failed to add expense"}
	errorPlaceDetailsFailed = ErrorResponse{Error: "Failed to fetch place details"}
	errorSendEmailFailed    = ErrorResponse{Error: "Failed to send email"}
)
