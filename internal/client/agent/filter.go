package agent

import (
	"fmt"
	"strconv"

	md "github.com/Elias-Manica/push-notifications-poc/internal/models"
)

type Reason string

const (
	ReasonAdmitted        Reason = "admitted"
	ReasonNoSession       Reason = "no_session"
	ReasonUntargeted      Reason = "untargeted"
	ReasonSessionMismatch Reason = "session_mismatch"
	ReasonMalformed       Reason = "malformed"
)

type Decision struct {
	Show   bool
	Reason Reason
}

// Admit decides whether a push targeted by data belongs to sess. Identifiers are
// compared as strings, so a numeric 42 on the wire matches a stored "42".
func Admit(sess *md.Session, data map[string]any) Decision {
	if sess == nil {
		return Decision{Reason: ReasonNoSession}
	}

	userID, ok := coerce(data["user_id"])
	if !ok {
		return Decision{Reason: ReasonUntargeted}
	}
	accountID, ok := coerce(data["account_id"])
	if !ok {
		return Decision{Reason: ReasonUntargeted}
	}

	if userID != sess.UserID || accountID != sess.AccountID {
		return Decision{Reason: ReasonSessionMismatch}
	}
	return Decision{Show: true, Reason: ReasonAdmitted}
}

// coerce reports false for missing or empty values.
func coerce(v any) (string, bool) {
	var s string
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		s = val
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	case bool:
		s = strconv.FormatBool(val)
	default:
		s = fmt.Sprint(val)
	}
	return s, s != ""
}
