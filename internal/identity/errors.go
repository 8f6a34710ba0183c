package identity

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error carries the provider's own message, which is surfaced to the user
// verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// The provider answers with either {"code":N,"msg":"..."} or
// {"error":"...","error_description":"..."} depending on the endpoint.
type errorPayload struct {
	Code             int    `json:"code"`
	Msg              string `json:"msg"`
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
}

func parseError(resp *http.Response) error {
	var payload errorPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return &Error{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("identity provider returned status %d", resp.StatusCode),
		}
	}

	message := payload.Msg
	if message == "" {
		message = payload.ErrorDescription
	}
	if message == "" {
		message = payload.Message
	}
	if message == "" {
		message = payload.ErrorCode
	}
	if message == "" {
		message = fmt.Sprintf("identity provider returned status %d", resp.StatusCode)
	}

	return &Error{Status: resp.StatusCode, Message: message}
}
