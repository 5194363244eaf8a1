package mailer

import (
	"errors"
	"net/smtp"
)

// xOAuth2 is the SASL XOAUTH2 mechanism used by Gmail-style relays that
// authenticate with a bearer token instead of a password.
type xOAuth2 struct {
	user  string
	token string
}

func (a *xOAuth2) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if !server.TLS {
		return "", nil, errors.New("xoauth2 requires a TLS connection")
	}
	resp := []byte("user=" + a.user + "\x01auth=Bearer " + a.token + "\x01\x01")
	return "XOAUTH2", resp, nil
}

func (a *xOAuth2) Next(fromServer []byte, more bool) ([]byte, error) {
	// On failure the server sends a JSON challenge; an empty line makes it
	// finish with the definitive error.
	if more {
		return []byte{}, nil
	}
	return nil, nil
}
