package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"
)

// SessionName is the cookie holding the browser's client id.
const SessionName = "acronym"

const clientKey = "client"

// ErrNoClient is returned when a request carries no client id.
var ErrNoClient = errors.New("request has no client session")

// EnsureClientID returns the browser's client id, issuing one when missing.
func EnsureClientID(store sessions.Store, w http.ResponseWriter, r *http.Request) (string, error) {
	session, _ := store.Get(r, SessionName)
	if id, ok := session.Values[clientKey].(string); ok && id != "" {
		return id, nil
	}
	id := uuid.NewString()
	session.Values[clientKey] = id
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}

// ClientID returns the browser's client id without issuing one.
func ClientID(store sessions.Store, r *http.Request) (string, error) {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return "", err
	}
	id, ok := session.Values[clientKey].(string)
	if !ok || id == "" {
		return "", ErrNoClient
	}
	return id, nil
}

// Signals is the client-side state datastar sends with every request.
type Signals struct {
	Tab    string `json:"tab"`
	Search string `json:"search"`
}

// ReadSignals decodes the datastar signals of r.
func ReadSignals(r *http.Request) (Signals, error) {
	var s Signals
	err := datastar.ReadSignals(r, &s)
	return s, err
}

// SignalsJSON renders the initial signals of a page.
func SignalsJSON(s Signals) string {
	b, _ := json.Marshal(s)
	return string(b)
}
