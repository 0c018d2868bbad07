package model

// ReasonCode identifies why a report was rejected. These are returned to the
// caller verbatim and are part of the API contract.
type ReasonCode string

const (
	REASON_NOT_AUTH       ReasonCode = "NOT_AUTH"
	REASON_NO_IDENTITY    ReasonCode = "NO_IDENTITY"
	REASON_NO_PLAYER_ID   ReasonCode = "NO_PLAYER_ID"
	REASON_BAD_SCENARIO   ReasonCode = "BAD_SCENARIO"
	REASON_BAD_SCORES     ReasonCode = "BAD_SCORES"
	REASON_BAD_LIST_LINK  ReasonCode = "BAD_LIST_LINK"
	REASON_ALREADY_FILLED ReasonCode = "ALREADY_FILLED"
	REASON_ROW_NOT_YOURS  ReasonCode = "ROW_NOT_YOURS"
	REASON_SERVER_ERROR   ReasonCode = "SERVER_ERROR"
)
